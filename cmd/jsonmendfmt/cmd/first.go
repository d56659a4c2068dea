package cmd

import (
	"fmt"

	"github.com/nwalsh/jsonmend"
	"github.com/spf13/cobra"
)

var firstCmd = &cobra.Command{
	Use:   "first-json",
	Short: "Print the first recovered JSON value found in the input",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput()
		if err != nil {
			return err
		}
		out := jsonmend.FirstJSON(input)
		log.WithField("found", out != "").Debug("first-json scan complete")
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(firstCmd)
}
