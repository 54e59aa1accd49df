// Package readsamples loads a sample sequence from a plain text file,
// one floating-point value per line.
package readsamples

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Read reads every line of the named file and returns the parsed values
// in file order. Blank lines are skipped; any other line that does not
// parse as a float is an error. A failure to open or read the file is
// reported before any value is returned.
func Read(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}
	defer file.Close()

	var samples []float64
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		val, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse float at line %d: %v", lineNo, err)
		}
		samples = append(samples, val)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %v", err)
	}

	return samples, nil
}
