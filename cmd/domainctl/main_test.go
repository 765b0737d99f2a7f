package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"domain-mcp/internal/app"
	"domain-mcp/internal/domain"
	ucmocks "domain-mcp/internal/usecase/mocks"
)

func run(t *testing.T, a *app.App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(&cli{build: func() (*app.App, error) {
		return a, nil
	}})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	root.SetContext(context.Background())
	err := root.Execute()
	return out.String(), err
}

func TestVersionSkipsBuild(t *testing.T) {
	root := newRootCmd(&cli{build: func() (*app.App, error) {
		return nil, errors.New("must not build")
	}})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "domainctl version "+version+"\n", out.String())
}

func TestBuildErrorIsReturned(t *testing.T) {
	root := newRootCmd(&cli{build: func() (*app.App, error) {
		return nil, errors.New("bad config")
	}})
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"whois", "example.com"})

	assert.EqualError(t, root.Execute(), "bad config")
}

func TestWhoisPrintsIndentedJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := ucmocks.NewMockDomainUsecase(ctrl)
	uc.EXPECT().WhoisLookup(gomock.Any(), "example.com").Return(&domain.WhoisRecord{
		Domain:    "example.com",
		Registrar: "Example Registrar",
	}, nil)

	out, err := run(t, &app.App{Domain: uc}, "", "whois", "example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "\n  \"registrar\": \"Example Registrar\"")

	var record domain.WhoisRecord
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.Equal(t, "example.com", record.Domain)
}

func TestDomainCommandRequiresOneArg(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := run(t, &app.App{Domain: ucmocks.NewMockDomainUsecase(ctrl)}, "", "check")
	assert.Error(t, err)
}

func TestUsecaseErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := ucmocks.NewMockDomainUsecase(ctrl)
	uc.EXPECT().CertificateInfo(gomock.Any(), "down.example").Return(nil, domain.ErrCertificateUnavailable)

	_, err := run(t, &app.App{Domain: uc}, "", "ssl", "down.example")
	assert.ErrorIs(t, err, domain.ErrCertificateUnavailable)
}

func TestBulkReadsArgsAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domains.txt")
	require.NoError(t, os.WriteFile(path, []byte("# list\nb.com\n\n  c.com  \n"), 0o600))

	ctrl := gomock.NewController(t)
	uc := ucmocks.NewMockDomainUsecase(ctrl)
	uc.EXPECT().BulkCheck(gomock.Any(), []string{"a.com", "b.com", "c.com"}).Return(&domain.BulkCheckResult{
		Summary: domain.BulkCheckSummary{Total: 3},
	}, nil)

	out, err := run(t, &app.App{Domain: uc}, "", "bulk", "a.com", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "\"total\": 3")
}

func TestBulkReadsStdin(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := ucmocks.NewMockDomainUsecase(ctrl)
	uc.EXPECT().BulkCheck(gomock.Any(), []string{"x.io", "y.io"}).Return(&domain.BulkCheckResult{}, nil)

	_, err := run(t, &app.App{Domain: uc}, "x.io\ny.io\n", "bulk", "-f", "-")
	require.NoError(t, err)
}

func TestBulkWithoutDomains(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := run(t, &app.App{Domain: ucmocks.NewMockDomainUsecase(ctrl)}, "", "bulk")
	assert.EqualError(t, err, "no domains given")
}

func TestExpiredFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := ucmocks.NewMockDomainUsecase(ctrl)
	uc.EXPECT().SearchExpired(gomock.Any(), "shop", "io").Return([]domain.ExpiredDomain{}, nil)

	out, err := run(t, &app.App{Domain: uc}, "", "expired", "--keyword", "shop", "--tld", ".io")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestPortfolioCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	portfolio := ucmocks.NewMockPortfolioUsecase(ctrl)
	portfolio.EXPECT().CheckPortfolio(gomock.Any()).Return(nil, domain.ErrPortfolioDisabled)

	_, err := run(t, &app.App{Portfolio: portfolio}, "", "portfolio", "check")
	assert.ErrorIs(t, err, domain.ErrPortfolioDisabled)
}
