package main

import (
	"github.com/spf13/cobra"
)

func newCmdPortfolio(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Cloudflare zone portfolio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List zones in the Cloudflare account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			zones, err := c.app.Portfolio.ListZones(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), zones)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Check availability and expiry of every zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			entries, err := c.app.Portfolio.CheckPortfolio(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), entries)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "zone DOMAIN",
		Short: "Check availability and expiry of one zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			entry, err := c.app.Portfolio.CheckZone(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), entry)
		},
	})
	return cmd
}
