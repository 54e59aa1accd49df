package presenter

import (
	"os/exec"
	"runtime"
)

// Show opens the figure with the platform image viewer. On a headless
// machine with no opener available it does nothing and reports success;
// interactive display is a convenience, not part of the pipeline.
func Show(filename string) error {
	opener := "xdg-open"
	if runtime.GOOS == "darwin" {
		opener = "open"
	}
	path, err := exec.LookPath(opener)
	if err != nil {
		return nil
	}
	return exec.Command(path, filename).Start()
}
