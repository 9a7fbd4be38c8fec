package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/question"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Multiple-choice quizzes in the terminal",
	Long: "quizdeck walks you through a fixed set of multiple-choice questions, one at a time,\n" +
		"explains every answer, and shows your score and time at the end.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("questions", "", "Question file path or http(s) URL (overrides QUIZDECK_QUESTIONS; default: built-in set)")
	flags.String("config", "", "Path to a YAML config file (default: ./quizdeck.yaml or the user config dir)")
	flags.String("log-file", "", "Log file path (default: $XDG_STATE_HOME/quizdeck/quizdeck.log)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (default: info)")
	flags.Duration("timeout", 0, "Timeout for loading the questions (default: "+question.DefaultFetchTimeout.String()+")")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}
