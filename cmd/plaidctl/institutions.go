package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	plaid "github.com/Veraticus/go-plaid"
	"github.com/Veraticus/go-plaid/internal/cli"
	"github.com/spf13/cobra"
)

func institutionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "institutions",
		Short: "Search and inspect institutions",
	}

	cmd.AddCommand(institutionsSearchCmd())
	cmd.AddCommand(institutionsGetCmd())

	return cmd
}

func institutionsSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search institutions by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			countries, _ := cmd.Flags().GetStringSlice("countries")
			products, _ := cmd.Flags().GetStringSlice("products")

			client, err := newPlaidClient()
			if err != nil {
				return err
			}

			institutions, err := client.SearchInstitutions(cmd.Context(), plaid.InstitutionsSearchRequest{
				Query:        args[0],
				Products:     products,
				CountryCodes: countries,
			})
			if err != nil {
				return err
			}
			if len(institutions) == 0 {
				fmt.Println(cli.Subtle("No institutions matched."))
				return nil
			}
			return printInstitutions(institutions)
		},
	}

	cmd.Flags().StringSlice("countries", []string{"US"}, "ISO-3166-1 alpha-2 country codes")
	cmd.Flags().StringSlice("products", []string{"transactions"}, "require support for these products")

	return cmd
}

func institutionsGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <institution-id>",
		Short: "Look up one institution by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			countries, _ := cmd.Flags().GetStringSlice("countries")

			client, err := newPlaidClient()
			if err != nil {
				return err
			}

			inst, err := client.GetInstitutionByID(cmd.Context(), plaid.InstitutionGetRequest{
				InstitutionID: args[0],
				CountryCodes:  countries,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.Title(inst.Name))
			fmt.Printf("ID:        %s\n", inst.InstitutionID)
			fmt.Printf("Products:  %v\n", inst.Products)
			fmt.Printf("Countries: %v\n", inst.CountryCodes)
			fmt.Printf("OAuth:     %t\n", inst.OAuth)
			if inst.URL != nil {
				fmt.Printf("URL:       %s\n", *inst.URL)
			}
			return nil
		},
	}

	cmd.Flags().StringSlice("countries", []string{"US"}, "ISO-3166-1 alpha-2 country codes")

	return cmd
}

func printInstitutions(institutions []plaid.Institution) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, cli.HeaderStyle.Render("ID")+"\t"+
		cli.HeaderStyle.Render("NAME")+"\t"+
		cli.HeaderStyle.Render("OAUTH")+"\t"+
		cli.HeaderStyle.Render("PRODUCTS"))
	for _, inst := range institutions {
		fmt.Fprintf(w, "%s\t%s\t%t\t%v\n",
			inst.InstitutionID, inst.Name, inst.OAuth, inst.Products)
	}
	return w.Flush()
}
