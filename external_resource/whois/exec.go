package whois

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// execRunner shells out to a whois binary
type execRunner struct {
	binary  string
	timeout time.Duration
}

// NewExecRunner creates a runner that invokes `binary domain` and captures stdout
func NewExecRunner(binary string, timeout time.Duration) Runner {
	return &execRunner{
		binary:  binary,
		timeout: timeout,
	}
}

func (r *execRunner) Name() string {
	return "exec"
}

// Run executes the whois binary. A non-zero exit still yields stdout when
// the tool printed something, since most clients exit 1 on "no match".
func (r *execRunner) Run(ctx context.Context, domain string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.binary, domain)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}

	if ctx.Err() != nil {
		return "", fmt.Errorf("whois %s timed out: %w", domain, ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && strings.TrimSpace(stdout.String()) != "" {
		return stdout.String(), nil
	}

	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return "", fmt.Errorf("failed to run %s: %w: %s", r.binary, err, msg)
	}
	return "", fmt.Errorf("failed to run %s: %w", r.binary, err)
}
