package cmd

import (
	"fmt"

	"github.com/nwalsh/jsonmend"
	"github.com/spf13/cobra"
)

var largestCmd = &cobra.Command{
	Use:   "largest-json",
	Short: "Print the largest recovered JSON value found in the input",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput()
		if err != nil {
			return err
		}
		out := jsonmend.LargestJSON(input)
		log.WithField("found", out != "").Debug("largest-json scan complete")
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(largestCmd)
}
