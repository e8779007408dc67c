package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/instagrowth/internal/store"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Store the RapidAPI credential for the Instagram data provider",
	Long:  "Store the RapidAPI credential used to authenticate against the Instagram data provider. The credential is kept in the local state directory and read by every data command.",
	RunE:  runConfigure,
}

var (
	configureKey   string
	configureClear bool
	configureShow  bool
)

func init() {
	configureCmd.Flags().StringVar(&configureKey, "key", "", "RapidAPI key to store (falls back to RAPIDAPI_KEY env var)")
	configureCmd.Flags().BoolVar(&configureClear, "clear", false, "Delete the stored credential")
	configureCmd.Flags().BoolVar(&configureShow, "show", false, "Report whether a credential is stored")

	rootCmd.AddCommand(configureCmd)
}

func runConfigure(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	s, err := newStore(cfg)
	if err != nil {
		return err
	}

	switch {
	case configureClear:
		if err := s.Delete(store.KeyCredential); err != nil {
			return fmt.Errorf("failed to delete credential: %w", err)
		}
		fmt.Println("Credential deleted.")
		return nil

	case configureShow:
		_, ok, err := s.Get(store.KeyCredential)
		if err != nil {
			return err
		}
		if ok {
			fmt.Println("A credential is stored.")
		} else {
			fmt.Println("No credential stored.")
		}
		return nil

	default:
		key := configureKey
		if key == "" {
			key = os.Getenv("RAPIDAPI_KEY")
		}
		if key == "" {
			return fmt.Errorf("no key given (use --key or set RAPIDAPI_KEY)")
		}
		if err := s.Set(store.KeyCredential, key); err != nil {
			return fmt.Errorf("failed to store credential: %w", err)
		}
		fmt.Println("Credential stored.")
		return nil
	}
}
