package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newCmdBulk(c *cli) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "bulk [DOMAIN...]",
		Short: "Check availability of many domains concurrently",
		Long:  "Check availability of many domains concurrently. Names come from arguments and, with --file, one per line from a file (- for stdin).",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := append([]string(nil), args...)
			if file != "" {
				fromFile, err := readDomainList(cmd.InOrStdin(), file)
				if err != nil {
					return err
				}
				names = append(names, fromFile...)
			}
			if len(names) == 0 {
				return fmt.Errorf("no domains given")
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			result, err := c.app.Domain.BulkCheck(ctx, names)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read domains from a file, one per line (- for stdin)")
	return cmd
}

// readDomainList reads one domain per line, skipping blanks and # comments
func readDomainList(stdin io.Reader, path string) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return names, nil
}
