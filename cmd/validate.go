package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/config"
	"github.com/abhisek/quizdeck/internal/question"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a question document without starting the quiz",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		src := question.NewSource(cfg.Questions)
		st := question.NewStore(src, question.WithTimeout(cfg.FetchTimeout))
		if err := st.Load(cmd.Context()); err != nil {
			var verr *question.ValidationError
			if errors.As(err, &verr) {
				for _, issue := range verr.Issues {
					fmt.Fprintln(cmd.ErrOrStderr(), "  -", issue)
				}
			}
			return fmt.Errorf("%s: %w", src, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d questions OK\n", src, len(st.Questions()))
		return nil
	},
}
