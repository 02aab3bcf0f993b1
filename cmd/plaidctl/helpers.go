package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	plaid "github.com/Veraticus/go-plaid"
	"github.com/Veraticus/go-plaid/internal/linkstore"
	"github.com/spf13/viper"
)

// plaidEnvironment resolves the configured environment, defaulting to
// sandbox so that nobody hits production by accident.
func plaidEnvironment() plaid.Environment {
	env := viper.GetString("plaid.environment")
	if env == "" {
		env = os.Getenv("PLAID_ENV")
	}
	if env == "" {
		env = "sandbox"
	}
	return plaid.Environment(env)
}

// newPlaidClient builds a client from the viper config, falling back to the
// conventional PLAID_* environment variables.
func newPlaidClient() (*plaid.Client, error) {
	clientID := viper.GetString("plaid.client_id")
	secret := viper.GetString("plaid.secret")

	if clientID == "" {
		clientID = os.Getenv("PLAID_CLIENT_ID")
	}
	if secret == "" {
		secret = os.Getenv("PLAID_SECRET")
	}

	if clientID == "" || secret == "" {
		return nil, fmt.Errorf("plaid credentials missing. Add client_id and secret to the config file or set PLAID_CLIENT_ID and PLAID_SECRET environment variables")
	}

	return plaid.NewClient(plaid.Config{
		ClientID:    clientID,
		Secret:      secret,
		Environment: plaidEnvironment(),
	}), nil
}

// openStore opens the linked-item store at its configured location.
func openStore() (*linkstore.Store, error) {
	dbPath := viper.GetString("store.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".config", "plaidctl", "items.db")
	}
	return linkstore.Open(dbPath)
}

// resolveAccessToken maps an --item flag value (alias or item id) to a saved
// access token; with no value and exactly one linked item, that item wins.
func resolveAccessToken(ctx context.Context, key string) (linkstore.LinkedItem, error) {
	store, err := openStore()
	if err != nil {
		return linkstore.LinkedItem{}, err
	}
	defer func() { _ = store.Close() }()

	if key != "" {
		return store.Get(ctx, key)
	}

	items, err := store.List(ctx)
	if err != nil {
		return linkstore.LinkedItem{}, err
	}
	switch len(items) {
	case 0:
		return linkstore.LinkedItem{}, fmt.Errorf("no linked items; run 'plaidctl link' first")
	case 1:
		return items[0], nil
	default:
		return linkstore.LinkedItem{}, fmt.Errorf("%d items linked; pick one with --item", len(items))
	}
}
