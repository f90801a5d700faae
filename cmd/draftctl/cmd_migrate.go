package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unclebandit/creatorhub-backend/internal/db"
)

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.DBDriver != "postgres" {
				return errors.New("migrate requires DB_DRIVER=postgres")
			}
			conn, err := db.Open(cmd.Context(), c.cfg, c.log)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := db.Migrate(conn.DB); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✅ migrations applied")
			return nil
		},
	}
}
