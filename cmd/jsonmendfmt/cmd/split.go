package cmd

import (
	"fmt"

	"github.com/nwalsh/jsonmend"
	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split mixed text into plain runs and recovered JSON segments",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput()
		if err != nil {
			return err
		}

		segments := jsonmend.ToSegments(input)
		log.WithField("segments", len(segments)).Debug("text split complete")
		for _, seg := range segments {
			fmt.Printf("%s\t%s\n", seg.Kind, seg.Text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)
}
