package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	plaid "github.com/Veraticus/go-plaid"
	"github.com/Veraticus/go-plaid/internal/cli"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Fetch transactions for a linked item",
		Long: `Fetch transactions for a linked item over a date range.

All pages are walked automatically; by default the last 30 days are
fetched. Use --json for machine-readable output.`,
		RunE: runTransactions,
	}

	cmd.Flags().String("item", "", "linked item alias or id")
	cmd.Flags().String("from", "", "start date (YYYY-MM-DD, default 30 days ago)")
	cmd.Flags().String("to", "", "end date (YYYY-MM-DD, default today)")
	cmd.Flags().StringSlice("accounts", nil, "restrict to these account ids")
	cmd.Flags().Bool("json", false, "emit one JSON object per line")
	cmd.Flags().Bool("refresh", false, "ask Plaid to refresh transactions first")

	return cmd
}

func runTransactions(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	key, _ := cmd.Flags().GetString("item")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	accountIDs, _ := cmd.Flags().GetStringSlice("accounts")
	asJSON, _ := cmd.Flags().GetBool("json")
	refresh, _ := cmd.Flags().GetBool("refresh")

	now := time.Now()
	if to == "" {
		to = now.Format("2006-01-02")
	}
	if from == "" {
		from = now.AddDate(0, 0, -30).Format("2006-01-02")
	}
	for _, date := range []string{from, to} {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
		}
	}

	item, err := resolveAccessToken(ctx, key)
	if err != nil {
		return err
	}
	client, err := newPlaidClient()
	if err != nil {
		return err
	}

	if refresh {
		if err := client.RefreshTransactions(ctx, item.AccessToken); err != nil {
			return fmt.Errorf("failed to refresh transactions: %w", err)
		}
	}

	req := plaid.GetTransactionsRequest{
		AccessToken: item.AccessToken,
		StartDate:   from,
		EndDate:     to,
	}
	if len(accountIDs) > 0 {
		req.Options = &plaid.GetTransactionsOptions{AccountIDs: accountIDs}
	}

	var bar *progressbar.ProgressBar
	if !asJSON {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Fetching transactions..."),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish(),
		)
	}

	var transactions []plaid.Transaction
	encoder := json.NewEncoder(os.Stdout)
	for txn, err := range client.TransactionsIter(ctx, req) {
		if err != nil {
			if bar != nil {
				_ = bar.Finish()
			}
			return fmt.Errorf("failed to fetch transactions: %w", err)
		}
		if asJSON {
			if err := encoder.Encode(txn); err != nil {
				return err
			}
			continue
		}
		transactions = append(transactions, txn)
		_ = bar.Add(1)
	}
	if bar != nil {
		_ = bar.Finish()
	}
	if asJSON {
		return nil
	}

	if len(transactions) == 0 {
		fmt.Println(cli.Subtle(fmt.Sprintf("No transactions between %s and %s.", from, to)))
		return nil
	}

	fmt.Println(cli.Title(fmt.Sprintf("%s  %s — %s", item.InstitutionName, from, to)))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, cli.HeaderStyle.Render("DATE")+"\t"+
		cli.HeaderStyle.Render("NAME")+"\t"+
		cli.HeaderStyle.Render("AMOUNT")+"\t"+
		cli.HeaderStyle.Render("PENDING"))
	for _, txn := range transactions {
		pending := ""
		if txn.Pending {
			pending = "pending"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			txn.Date, txn.Name,
			formatAmount(&txn.Amount, txn.ISOCurrencyCode),
			cli.Subtle(pending))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println(cli.Subtle(fmt.Sprintf("%d transactions", len(transactions))))
	return nil
}
