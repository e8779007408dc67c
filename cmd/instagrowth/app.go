package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/instagrowth/internal/analysis"
	"github.com/jonathan/instagrowth/internal/config"
	"github.com/jonathan/instagrowth/internal/instagram"
	"github.com/jonathan/instagrowth/internal/llm"
	"github.com/jonathan/instagrowth/internal/observability"
	"github.com/jonathan/instagrowth/internal/store"
)

// Global flags, registered on the root command.
var (
	flagConfig       string
	flagVerbose      bool
	flagStoreDir     string
	flagAPIKey       string
	flagModel        string
	flagProviderURL  string
	flagProviderHost string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.PersistentFlags().StringVar(&flagStoreDir, "store-dir", "", "Directory for local state (credential, calendar)")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "Gemini model identifier")
	rootCmd.PersistentFlags().StringVar(&flagProviderURL, "provider-url", "", "Instagram data provider base URL")
	rootCmd.PersistentFlags().StringVar(&flagProviderHost, "provider-host", "", "Instagram data provider host header")
}

// loadSettings merges flags over the config file over the environment.
func loadSettings() (config.Config, error) {
	var fileCfg config.Config
	if flagConfig != "" {
		loaded, err := config.LoadConfig(flagConfig)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	cfg := config.Config{
		GeminiAPIKey:    flagAPIKey,
		Model:           flagModel,
		StoreDir:        flagStoreDir,
		ProviderBaseURL: flagProviderURL,
		ProviderHost:    flagProviderHost,
		Verbose:         flagVerbose,
	}
	cfg = cfg.MergeWithDefaults(fileCfg)
	cfg.FromEnv()
	if cfg.Model == "" {
		cfg.Model = llm.DefaultModel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newStore(cfg config.Config) (store.Store, error) {
	dir := cfg.StoreDir
	if dir == "" {
		dir = store.DefaultDir()
	}
	return store.NewFileStore(dir)
}

func newInstagramClient(cfg config.Config, s store.Store) *instagram.Client {
	var opts []instagram.Option
	if cfg.ProviderBaseURL != "" {
		opts = append(opts, instagram.WithBaseURL(cfg.ProviderBaseURL))
	}
	if cfg.ProviderHost != "" {
		opts = append(opts, instagram.WithHost(cfg.ProviderHost))
	}
	return instagram.NewClient(s, opts...)
}

// newAnalyzer builds the generative analysis adapter. The caller must close
// the returned client when done.
func newAnalyzer(ctx context.Context, cfg config.Config) (*analysis.Analyzer, llm.Client, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, nil, fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY or use --api-key)")
	}
	client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.Model)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	return analysis.NewAnalyzer(client), client, nil
}

func printer() *observability.Printer {
	return observability.NewPrinter(os.Stdout)
}
