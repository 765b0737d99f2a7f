package whois

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-whois")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestExecRunnerSuccess(t *testing.T) {
	bin := writeScript(t, `echo "Domain Name: $1"`)

	out, err := NewExecRunner(bin, time.Second).Run(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, "Domain Name: example.com\n", out)
}

func TestExecRunnerNonZeroExitWithOutput(t *testing.T) {
	bin := writeScript(t, `echo "No match for \"$1\"."; exit 1`)

	out, err := NewExecRunner(bin, time.Second).Run(context.Background(), "free.com")
	require.NoError(t, err)
	assert.Contains(t, out, "No match for")
}

func TestExecRunnerFailures(t *testing.T) {
	tests := []struct {
		name    string
		binary  func(t *testing.T) string
		timeout time.Duration
	}{
		{
			name: "missing binary",
			binary: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			timeout: time.Second,
		},
		{
			name: "non zero exit without output",
			binary: func(t *testing.T) string {
				return writeScript(t, `echo "connect: refused" >&2; exit 2`)
			},
			timeout: time.Second,
		},
		{
			name: "timeout",
			binary: func(t *testing.T) string {
				return writeScript(t, `sleep 5`)
			},
			timeout: 50 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewExecRunner(tt.binary(t), tt.timeout).Run(context.Background(), "example.com")
			require.Error(t, err)
			assert.Empty(t, out)
		})
	}
}

func TestRunnerNames(t *testing.T) {
	assert.Equal(t, "exec", NewExecRunner("whois", time.Second).Name())
	assert.Equal(t, "native", NewNativeRunner(time.Second).Name())
}
