package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/Veraticus/go-plaid/internal/cli"
	"github.com/Veraticus/go-plaid/internal/linkstore"
	"github.com/spf13/cobra"
)

func itemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage linked items",
	}

	cmd.AddCommand(itemsListCmd())
	cmd.AddCommand(itemsRemoveCmd())
	cmd.AddCommand(itemsStatusCmd())

	return cmd
}

func itemsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List linked items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			items, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println(cli.Subtle("No linked items. Run 'plaidctl link' to add one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, cli.HeaderStyle.Render("ALIAS")+"\t"+
				cli.HeaderStyle.Render("INSTITUTION")+"\t"+
				cli.HeaderStyle.Render("ITEM ID")+"\t"+
				cli.HeaderStyle.Render("ENV")+"\t"+
				cli.HeaderStyle.Render("LINKED"))
			for _, item := range items {
				alias := item.Alias
				if alias == "" {
					alias = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					alias, item.InstitutionName, item.ItemID,
					item.Environment, item.LinkedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}
}

func itemsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <alias-or-id>",
		Short: "Remove a linked item and invalidate its access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			item, err := store.Get(ctx, args[0])
			if err != nil {
				if errors.Is(err, linkstore.ErrNotFound) {
					return fmt.Errorf("no linked item matches %q", args[0])
				}
				return err
			}

			client, err := newPlaidClient()
			if err != nil {
				return err
			}
			if err := client.RemoveItem(ctx, item.AccessToken); err != nil {
				// Still drop the local record; the token may already be dead.
				slog.Warn("Failed to remove item server-side", "item_id", item.ItemID, "error", err)
			}

			if err := store.Remove(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.Success(fmt.Sprintf("✓ Removed %s", item.ItemID)))
			return nil
		},
	}
}

func itemsStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the server-side status of a linked item",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			key, _ := cmd.Flags().GetString("item")

			stored, err := resolveAccessToken(ctx, key)
			if err != nil {
				return err
			}
			client, err := newPlaidClient()
			if err != nil {
				return err
			}
			item, err := client.Item(ctx, stored.AccessToken)
			if err != nil {
				return err
			}

			fmt.Println(cli.Title(stored.InstitutionName))
			fmt.Printf("Item ID:   %s\n", item.ItemID)
			fmt.Printf("Products:  %v\n", item.BilledProducts)
			if item.Error != nil {
				fmt.Println(cli.Warning(fmt.Sprintf("Error:     %s (%s)", item.Error.ErrorCode, item.Error.ErrorMessage)))
			} else {
				fmt.Println(cli.Success("Healthy"))
			}
			return nil
		},
	}

	cmd.Flags().String("item", "", "linked item alias or id")

	return cmd
}
