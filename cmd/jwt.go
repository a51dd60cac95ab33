package main

import (
	"catconnect/internal/auth"
	"catconnect/internal/config"
	"catconnect/pkg/domain"
	"catconnect/pkg/logger"
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that prints a signed RS256 bearer
// token for a user id and role using the configured private key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates a bearer token for given user ID and role",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			role, _ := cmd.Flags().GetString("role")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			userID, err := domain.ParseID[domain.UserID](subject)
			if err != nil {
				logger.Fatal(ctx, "subject must be a user id", zap.Error(err))
			}
			if !domain.Role(role).Valid() {
				logger.Fatal(ctx, "unknown role", zap.String("role", role))
			}

			issuer, err := auth.NewIssuer(cfg.JWT.PrivateKey, cfg.JWT.Issuer, cfg.JWT.TTL)
			if err != nil {
				logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
			}

			token, err := issuer.IssueWithTTL(domain.Principal{UserID: userID, Role: domain.Role(role)}, ttl)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(token.AccessToken) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (user ID)")
	cmd.Flags().String("role", string(domain.RoleAdmin), "Role claim (job_seeker, business_owner, service_provider, admin)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
