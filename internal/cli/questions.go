package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tradeready/portal/internal/core/domain"
)

func newQuestionsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print the readiness question catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printQuestions(cmd.OutOrStdout(), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func printQuestions(out io.Writer, asJSON bool) error {
	qs := domain.Questions()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(qs)
	}
	for _, q := range qs {
		fmt.Fprintf(out, "%2d. %s [%s]\n", q.ID, q.Prompt, strings.Join(q.Options, " / "))
	}
	fmt.Fprintf(out, "\npassing score: %d%%\n", domain.PassingScore)
	return nil
}
