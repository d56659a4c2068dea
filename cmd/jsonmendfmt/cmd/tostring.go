package cmd

import (
	"fmt"

	"github.com/nwalsh/jsonmend"
	"github.com/spf13/cobra"
)

var toStringCmd = &cobra.Command{
	Use:   "to-string",
	Short: "Recover a single JSON value, failing on malformed input",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput()
		if err != nil {
			return err
		}
		log.WithField("bytes", len(input)).Debug("scanning for a single top-level value")

		out, err := jsonmend.ToString(input)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toStringCmd)
}
