package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/pkg/config"
)

func newCreateUserCmd() *cobra.Command {
	var in domain.RegisterInput
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a portal account directly in the configured user store",
		Long: "Creates an account without going through the assessment gate. " +
			"Only useful with STORE_DRIVER=mongo; the in-memory store is discarded on exit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}
			a, err := build(ctx, cfg, zerolog.Nop())
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			return createUser(ctx, a, in, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Email, "email", "", "account email")
	f.StringVar(&in.Password, "password", "", "account password")
	f.StringVar(&in.Name, "name", "", "contact name")
	f.StringVar(&in.Company, "company", "", "company name")
	f.StringVar(&in.Country, "country", "", "country")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func createUser(ctx context.Context, a *app, in domain.RegisterInput, out io.Writer) error {
	user, err := a.portal.Register(ctx, in)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	fmt.Fprintf(out, "created user %s (%s)\n", user.Email, user.ID)
	return nil
}
