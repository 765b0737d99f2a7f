package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"domain-mcp/internal/usecase"
)

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// newCmdDomain builds a command that takes one domain and prints one result
func newCmdDomain(c *cli, use, short string, run func(ctx context.Context, uc usecase.DomainUsecase, name string) (interface{}, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " DOMAIN",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			out, err := run(ctx, c.app.Domain, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newCmdWhois(c *cli) *cobra.Command {
	return newCmdDomain(c, "whois", "Registration record via RDAP with WHOIS fallback",
		func(ctx context.Context, uc usecase.DomainUsecase, name string) (interface{}, error) {
			return uc.WhoisLookup(ctx, name)
		})
}

func newCmdDNS(c *cli) *cobra.Command {
	return newCmdDomain(c, "dns", "A, AAAA, MX, TXT, NS, CNAME and SOA records",
		func(ctx context.Context, uc usecase.DomainUsecase, name string) (interface{}, error) {
			return uc.DNSLookup(ctx, name)
		})
}

func newCmdRecords(c *cli) *cobra.Command {
	return newCmdDomain(c, "records", "Flat DNS record list with TTLs",
		func(ctx context.Context, uc usecase.DomainUsecase, name string) (interface{}, error) {
			return uc.DNSRecords(ctx, name)
		})
}

func newCmdCheck(c *cli) *cobra.Command {
	return newCmdDomain(c, "check", "Availability verdict from WHOIS and DNS",
		func(ctx context.Context, uc usecase.DomainUsecase, name string) (interface{}, error) {
			return uc.CheckAvailability(ctx, name)
		})
}

func newCmdAge(c *cli) *cobra.Command {
	return newCmdDomain(c, "age", "Domain age from its creation date",
		func(ctx context.Context, uc usecase.DomainUsecase, name string) (interface{}, error) {
			return uc.CheckAge(ctx, name)
		})
}

func newCmdSSL(c *cli) *cobra.Command {
	return newCmdDomain(c, "ssl", "TLS certificate served on port 443",
		func(ctx context.Context, uc usecase.DomainUsecase, name string) (interface{}, error) {
			return uc.CertificateInfo(ctx, name)
		})
}
