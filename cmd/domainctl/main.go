package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"domain-mcp/internal/app"
	"domain-mcp/pkg/config"
)

var version = "1.0.0"

// cli carries state shared by every subcommand
type cli struct {
	build   func() (*app.App, error)
	app     *app.App
	timeout time.Duration
	verbose bool
}

func buildFromEnv() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return app.Build(cfg)
}

func newRootCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domainctl",
		Short:   "Domain metadata lookups from the command line",
		Long:    "domainctl queries WHOIS/RDAP, DNS over HTTPS, TLS and expired domain feeds and prints JSON.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().DurationVar(&c.timeout, "timeout", 2*time.Minute, "Overall timeout for one command")
	cmd.PersistentFlags().BoolVar(&c.verbose, "verbose", false, "Log upstream activity to stderr")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		if c.verbose {
			log.SetOutput(cc.ErrOrStderr())
		} else {
			log.SetOutput(io.Discard)
		}
		if cc == cmd || cc.Name() == "version" || cc.Name() == "help" {
			return nil
		}
		a, err := c.build()
		if err != nil {
			return err
		}
		c.app = a
		return nil
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(
		newCmdWhois(c),
		newCmdDNS(c),
		newCmdRecords(c),
		newCmdCheck(c),
		newCmdAge(c),
		newCmdSSL(c),
		newCmdBulk(c),
		newCmdExpired(c),
		newCmdPortfolio(c),
	)
	return cmd
}

// context returns a command context bounded by --timeout
func (c *cli) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func main() {
	root := newRootCmd(&cli{build: buildFromEnv})
	root.SetContext(context.Background())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed: %s\n", err)
		os.Exit(1)
	}
}
