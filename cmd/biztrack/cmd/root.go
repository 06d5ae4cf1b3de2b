// Package cmd contains all CLI commands for biztrack.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	biztrack "github.com/biztrack/biztrack-go"
	"github.com/biztrack/biztrack-go/credstore"
)

var (
	baseURL   string
	storeKind string
	storeDir  string
	noColor   bool
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "biztrack",
	Short: "Invoicing backend CLI",
	Long: `biztrack talks to a BizTrack invoicing backend: log in once and the
session token is kept in an encrypted local store, so every later command
runs authenticated until you log out or the backend rejects the token.

Example usage:
  biztrack login --email ann@example.com
  biztrack dashboard
  biztrack invoices
  biztrack logout`,
	Version:       biztrack.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "backend base URL (default from BIZTRACK_API_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "file", "credential store backend (file, keyring, memory)")
	rootCmd.PersistentFlags().StringVar(&storeDir, "store-dir", "", "directory for the file credential store (default: user config dir)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// newSDKClient assembles a client from flags and environment. Called from
// each RunE rather than PersistentPreRunE so that help and completion never
// touch the credential store.
func newSDKClient() (*biztrack.Client, error) {
	cfg, err := biztrack.ConfigFromEnv()
	if err != nil && !errors.Is(err, biztrack.ErrMissingBaseURL) {
		return nil, err
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("no backend configured: set --base-url or BIZTRACK_API_BASE_URL")
	}

	store, err := newStore()
	if err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}

	return biztrack.New().
		WithConfig(cfg).
		WithCredentialStore(store).
		WithLogger(logger).
		Build()
}

func newStore() (credstore.Store, error) {
	switch storeKind {
	case "memory":
		return credstore.NewMemory(), nil
	case "keyring":
		dir, err := resolveStoreDir()
		if err != nil {
			return nil, err
		}
		return credstore.NewKeyring("biztrack", dir)
	case "file":
		dir, err := resolveStoreDir()
		if err != nil {
			return nil, err
		}
		passphrase := os.Getenv("BIZTRACK_PASSPHRASE")
		if passphrase == "" {
			return nil, fmt.Errorf("file store needs BIZTRACK_PASSPHRASE set")
		}
		return credstore.NewFile(dir, passphrase)
	default:
		return nil, fmt.Errorf("unknown store %q: must be file, keyring, or memory", storeKind)
	}
}

func resolveStoreDir() (string, error) {
	if storeDir != "" {
		return storeDir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(base, "biztrack"), nil
}
