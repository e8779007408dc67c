package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/instagrowth/internal/workflow"
)

var discoverCmd = &cobra.Command{
	Use:   "discover <query>",
	Short: "Find public influencer accounts for a niche",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	s, err := newStore(cfg)
	if err != nil {
		return err
	}
	client := newInstagramClient(cfg, s)

	ctrl := workflow.NewDiscoveryController(client)
	users, err := ctrl.Search(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	printer().PrintDiscoveredUsers(users)
	return nil
}
