package cmd

import (
	"io"
	"os"
)

// readInput reads the whole of inputFile, or stdin if inputFile is empty,
// mirroring hujson's own stdin/file dispatch in its CLI driver.
func readInput() (string, error) {
	var r io.Reader = os.Stdin
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
