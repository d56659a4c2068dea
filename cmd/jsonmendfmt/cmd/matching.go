package cmd

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/nwalsh/jsonmend"
	"github.com/spf13/cobra"
)

var matchingPattern string

var matchingCmd = &cobra.Command{
	Use:   "json-matching",
	Short: "Print the first recovered JSON value matching a regular expression",
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := matchingPattern
		if pattern == "" {
			pattern = config.DefaultPattern
		}
		if pattern == "" {
			_ = cmd.Help()
			return errors.New("need --pattern, or a defaultPattern in --config")
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return err
		}

		input, err := readInput()
		if err != nil {
			return err
		}

		out := jsonmend.JSONMatching(input, re)
		log.WithField("found", out != "").Debug("json-matching scan complete")
		fmt.Println(out)
		return nil
	},
}

func init() {
	matchingCmd.Flags().StringVarP(&matchingPattern, "pattern", "p", "", "regular expression a recovered JSON segment must match")
	rootCmd.AddCommand(matchingCmd)
}
