package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newCmdExpired(c *cli) *cobra.Command {
	var keyword, tld string

	cmd := &cobra.Command{
		Use:   "expired",
		Short: "Search expired and pending-delete domains across market feeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			results, err := c.app.Domain.SearchExpired(ctx, keyword, strings.TrimPrefix(tld, "."))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().StringVarP(&keyword, "keyword", "k", "", "Substring the domain must contain")
	cmd.Flags().StringVarP(&tld, "tld", "t", "", "Required TLD, e.g. com")
	return cmd
}
