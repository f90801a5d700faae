package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unclebandit/creatorhub-backend/internal/app"
	"github.com/unclebandit/creatorhub-backend/internal/service"
)

func (c *cli) draftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Inspect or clear a brand's stored draft",
	}

	var brand, id string

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the brand's most recent draft as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withDraftStore(cmd, func(store *service.DraftStore) error {
				d, err := store.Load(cmd.Context(), brand)
				if err != nil {
					return err
				}
				if d == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "no draft for %s\n", brand)
					return nil
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(d)
			})
		},
	}
	show.Flags().StringVar(&brand, "brand", "", "brand user id")
	show.MarkFlagRequired("brand")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the brand's draft (the most recent one unless --id is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withDraftStore(cmd, func(store *service.DraftStore) error {
				draftID := id
				if draftID == "" {
					d, err := store.Load(cmd.Context(), brand)
					if err != nil {
						return err
					}
					if d == nil {
						return errors.New("no draft to clear")
					}
					draftID = d.ID
				}
				if err := store.Clear(cmd.Context(), brand, draftID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "cleared draft %s for %s\n", draftID, brand)
				return nil
			})
		},
	}
	clearCmd.Flags().StringVar(&brand, "brand", "", "brand user id")
	clearCmd.Flags().StringVar(&id, "id", "", "draft id")
	clearCmd.MarkFlagRequired("brand")

	cmd.AddCommand(show, clearCmd)
	return cmd
}

func (c *cli) withDraftStore(cmd *cobra.Command, fn func(*service.DraftStore) error) error {
	stores, err := app.OpenStores(cmd.Context(), c.cfg, c.log)
	if err != nil {
		return err
	}
	defer stores.Close()
	return fn(service.NewDraftStore(stores.Drafts, stores.Cache, c.log))
}
