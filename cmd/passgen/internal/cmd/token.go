package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/crypto"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a token for writing server presets",
		Long: heredoc.Doc(`
			Sign a bearer token accepted by PUT and DELETE /api/v1/presets/{name}.
			The signing secret is read from JWT_SECRET and must match the server's.
			Without --ttl the lifetime is JWT_EXPIRY, the same cap the server
			enforces.
		`),
		Example: heredoc.Doc(`
			$ JWT_SECRET=... passgen token --subject ops --ttl 1h
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := os.Getenv("JWT_SECRET")
			if secret == "" {
				return errors.New("JWT_SECRET is not set")
			}
			if !cmd.Flags().Changed("ttl") {
				var err error
				if ttl, err = config.JWTExpiry(); err != nil {
					return err
				}
			}
			if ttl <= 0 {
				return errors.New("ttl must be positive")
			}

			token, err := crypto.IssuePresetToken(subject, secret, ttl)
			if err != nil {
				return fmt.Errorf("signing token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "admin", "token subject recorded in server logs")
	cmd.Flags().DurationVar(&ttl, "ttl", config.DefaultJWTExpiry, "token lifetime (default from JWT_EXPIRY)")
	return cmd
}
