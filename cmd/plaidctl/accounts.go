package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	plaid "github.com/Veraticus/go-plaid"
	"github.com/Veraticus/go-plaid/internal/cli"
	"github.com/spf13/cobra"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List accounts for a linked item",
		RunE:  runAccounts,
	}

	cmd.Flags().String("item", "", "linked item alias or id")
	cmd.Flags().Bool("balances", false, "fetch real-time balances instead of cached data")

	return cmd
}

func runAccounts(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	key, _ := cmd.Flags().GetString("item")
	realtime, _ := cmd.Flags().GetBool("balances")

	item, err := resolveAccessToken(ctx, key)
	if err != nil {
		return err
	}
	client, err := newPlaidClient()
	if err != nil {
		return err
	}

	var accounts []plaid.Account
	if realtime {
		accounts, err = client.Balances(ctx, item.AccessToken)
	} else {
		accounts, err = client.Accounts(ctx, item.AccessToken)
	}
	if err != nil {
		return err
	}

	fmt.Println(cli.Title(item.InstitutionName))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, cli.HeaderStyle.Render("NAME")+"\t"+
		cli.HeaderStyle.Render("TYPE")+"\t"+
		cli.HeaderStyle.Render("MASK")+"\t"+
		cli.HeaderStyle.Render("AVAILABLE")+"\t"+
		cli.HeaderStyle.Render("CURRENT"))
	for _, account := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			account.Name,
			accountKind(account),
			stringOrDash(account.Mask),
			formatAmount(account.Balances.Available, account.Balances.ISOCurrencyCode),
			formatAmount(account.Balances.Current, account.Balances.ISOCurrencyCode))
	}
	return w.Flush()
}

func accountKind(account plaid.Account) string {
	if account.Subtype != nil {
		return fmt.Sprintf("%s/%s", account.Type, *account.Subtype)
	}
	return string(account.Type)
}

func stringOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func formatAmount(amount *float64, currency *string) string {
	if amount == nil {
		return "-"
	}
	if currency != nil {
		return fmt.Sprintf("%.2f %s", *amount, *currency)
	}
	return fmt.Sprintf("%.2f", *amount)
}
