package main

import (
	"fmt"
	"log/slog"

	plaid "github.com/Veraticus/go-plaid"
	"github.com/Veraticus/go-plaid/internal/cli"
	"github.com/spf13/cobra"
)

func sandboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Sandbox-only helpers",
	}

	cmd.AddCommand(sandboxLinkCmd())
	cmd.AddCommand(sandboxResetLoginCmd())
	cmd.AddCommand(sandboxFireWebhookCmd())

	return cmd
}

func sandboxLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Link a simulated sandbox institution without a browser",
		Long: `Link a simulated sandbox institution without going through the
Plaid Link UI. The default institution is First Platypus Bank
(ins_109508) with the standard user_good test credentials.`,
		RunE: runSandboxLink,
	}

	cmd.Flags().String("institution", "ins_109508", "sandbox institution id")
	cmd.Flags().String("alias", "", "friendly name to store for the linked item")
	cmd.Flags().StringSlice("products", []string{"transactions"}, "initial products for the item")

	return cmd
}

func runSandboxLink(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	institution, _ := cmd.Flags().GetString("institution")
	alias, _ := cmd.Flags().GetString("alias")
	products, _ := cmd.Flags().GetStringSlice("products")

	if plaidEnvironment() != plaid.Sandbox {
		return fmt.Errorf("sandbox link only works against the sandbox environment")
	}

	client, err := newPlaidClient()
	if err != nil {
		return err
	}

	slog.Info("Creating sandbox public token", "institution", institution)
	publicToken, err := client.CreatePublicToken(ctx, plaid.CreatePublicTokenRequest{
		InstitutionID:   institution,
		InitialProducts: products,
	})
	if err != nil {
		return fmt.Errorf("failed to create sandbox public token: %w", err)
	}

	exchange, err := client.ExchangePublicToken(ctx, publicToken)
	if err != nil {
		return fmt.Errorf("failed to exchange token: %w", err)
	}

	inst, err := client.GetInstitutionByID(ctx, plaid.InstitutionGetRequest{
		InstitutionID: institution,
		CountryCodes:  []string{"US"},
	})
	if err != nil {
		// Item is already linked at this point; a missing name is cosmetic.
		slog.Warn("Failed to look up institution name", "error", err)
		inst = plaid.Institution{InstitutionID: institution}
	}

	return saveLinkedItem(ctx, plaidLinkSuccess{
		AccessToken:     exchange.AccessToken,
		ItemID:          exchange.ItemID,
		InstitutionID:   institution,
		InstitutionName: inst.Name,
	}, alias)
}

func sandboxResetLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset-login",
		Short: "Force a linked item into the ITEM_LOGIN_REQUIRED state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			key, _ := cmd.Flags().GetString("item")

			item, err := resolveAccessToken(ctx, key)
			if err != nil {
				return err
			}
			client, err := newPlaidClient()
			if err != nil {
				return err
			}
			if err := client.ResetLogin(ctx, item.AccessToken); err != nil {
				return fmt.Errorf("failed to reset login: %w", err)
			}
			fmt.Println(cli.Success(fmt.Sprintf("✓ Reset login for %s", item.ItemID)))
			return nil
		},
	}

	cmd.Flags().String("item", "", "linked item alias or id")

	return cmd
}

func sandboxFireWebhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fire-webhook",
		Short: "Fire a DEFAULT_UPDATE transactions webhook for a linked item",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			key, _ := cmd.Flags().GetString("item")

			item, err := resolveAccessToken(ctx, key)
			if err != nil {
				return err
			}
			client, err := newPlaidClient()
			if err != nil {
				return err
			}
			resp, err := client.FireWebhook(ctx, plaid.FireWebhookRequest{
				AccessToken: item.AccessToken,
				WebhookCode: plaid.WebhookCodeDefaultUpdate,
			})
			if err != nil {
				return fmt.Errorf("failed to fire webhook: %w", err)
			}
			if !resp.WebhookFired {
				return fmt.Errorf("webhook was not fired (request %s)", resp.RequestID)
			}
			fmt.Println(cli.Success("✓ Webhook fired"))
			return nil
		},
	}

	cmd.Flags().String("item", "", "linked item alias or id")

	return cmd
}
