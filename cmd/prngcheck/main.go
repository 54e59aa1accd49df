// prngcheck reads a file of pseudorandom samples (one float per line),
// prints their mean and population variance, and writes a two-panel
// diagnostic figure: a 50-bin histogram and a scatter of consecutive
// pairs. Skew in the histogram or banding in the scatter points at a
// weak generator.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"prngcheck/internal/analyze"
)

var showFlag bool

var rootCmd = &cobra.Command{
	Use:   "prngcheck <input-file>",
	Short: "Evaluate the statistical quality of a PRNG sample file",
	Long: `prngcheck loads a sequence of floating-point samples from a text file
(one value per line), prints the mean and the population variance, and
renders prng_quality.png with a frequency histogram next to a lag-1
scatter of each sample against its successor.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// the argument count is valid past this point; a failure now is
		// an analysis error, repeating the usage text would only bury it
		cmd.SilenceUsage = true
		return analyze.Run(args[0], viper.GetBool("show"))
	},
}

func init() {
	rootCmd.Flags().BoolVar(&showFlag, "show", false, "open the figure in the platform viewer after writing it")
	viper.BindPFlag("show", rootCmd.Flags().Lookup("show"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
