// Command draftctl is the operator CLI for wizard drafts and submitted campaigns.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unclebandit/creatorhub-backend/internal/config"
	"github.com/unclebandit/creatorhub-backend/internal/logger"
)

// cli carries state shared by every subcommand once the root has loaded config.
type cli struct {
	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "draftctl",
		Short:         "Inspect and manage campaign drafts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.LogLevel, "console")
			if err != nil {
				return err
			}
			c.cfg, c.log = cfg, log
			return nil
		},
	}
	root.AddCommand(c.migrateCmd(), c.draftCmd(), c.campaignCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
