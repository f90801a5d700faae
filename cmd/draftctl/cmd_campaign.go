package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unclebandit/creatorhub-backend/internal/app"
	"github.com/unclebandit/creatorhub-backend/internal/service"
)

func (c *cli) campaignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaign",
		Short: "Manage submitted campaigns",
	}

	var (
		brand  string
		id     int
		status string
	)
	setStatus := &cobra.Command{
		Use:   "status",
		Short: "Move a campaign to pending_review, active or completed",
		RunE: func(cmd *cobra.Command, args []string) error {
			stores, err := app.OpenStores(cmd.Context(), c.cfg, c.log)
			if err != nil {
				return err
			}
			defer stores.Close()

			svc := &service.CampaignService{CampaignRepo: stores.Campaigns, Log: c.log}
			if err := svc.UpdateStatus(cmd.Context(), brand, id, status); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "campaign %d is now %s\n", id, status)
			return nil
		},
	}
	setStatus.Flags().StringVar(&brand, "brand", "", "brand user id")
	setStatus.Flags().IntVar(&id, "id", 0, "campaign id")
	setStatus.Flags().StringVar(&status, "status", "", "new status")
	setStatus.MarkFlagRequired("brand")
	setStatus.MarkFlagRequired("id")
	setStatus.MarkFlagRequired("status")

	cmd.AddCommand(setStatus)
	return cmd
}
