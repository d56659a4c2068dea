package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "jsonmendfmt",
		Short:        "jsonmendfmt",
		SilenceUsage: true,
		Long:         `Recover strict JSON from JSON-like text: debug-printer dumps, logs with embedded objects, and other common malformations.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			config = cfg
			return nil
		},
	}

	log = logrus.New()

	verbose    bool
	configPath string
	inputFile  string
	config     Config
)

// Execute runs the CLI's root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each operation's decisions at debug level")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a jsonmendfmt.yaml config file")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "read input from this file instead of stdin")
	return rootCmd.Execute()
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{})
}
