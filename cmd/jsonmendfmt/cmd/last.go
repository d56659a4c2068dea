package cmd

import (
	"fmt"

	"github.com/nwalsh/jsonmend"
	"github.com/spf13/cobra"
)

var lastCmd = &cobra.Command{
	Use:   "last-json",
	Short: "Print the last recovered JSON value found in the input",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput()
		if err != nil {
			return err
		}
		out := jsonmend.LastJSON(input)
		log.WithField("found", out != "").Debug("last-json scan complete")
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lastCmd)
}
