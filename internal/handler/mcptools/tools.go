package mcptools

import (
	"context"
	"fmt"
	"strings"

	"domain-mcp/internal/usecase"
)

func domainSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"domain": map[string]interface{}{
				"type":        "string",
				"description": description,
			},
		},
		"required": []string{"domain"},
	}
}

func emptySchema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func registerDomainTools(r *Registry, uc usecase.DomainUsecase) {
	r.add("whois_lookup", "Perform WHOIS lookup for a domain",
		domainSchema("The domain name (e.g., example.com)"),
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			name, err := requireString(args, "domain")
			if err != nil {
				return nil, err
			}
			return uc.WhoisLookup(ctx, name)
		})

	r.add("dns_lookup", "Perform DNS lookup for a domain",
		domainSchema("The domain name (e.g., example.com)"),
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			name, err := requireString(args, "domain")
			if err != nil {
				return nil, err
			}
			return uc.DNSLookup(ctx, name)
		})

	r.add("check_domain_availability", "Check if a domain is available for registration",
		domainSchema("The domain name to check"),
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			name, err := requireString(args, "domain")
			if err != nil {
				return nil, err
			}
			return uc.CheckAvailability(ctx, name)
		})

	r.add("ssl_certificate_info", "Get SSL certificate information for a domain",
		domainSchema("The domain name serving HTTPS on port 443"),
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			name, err := requireString(args, "domain")
			if err != nil {
				return nil, err
			}
			return uc.CertificateInfo(ctx, name)
		})

	r.add("search_expired_domains", "Search for expired domains based on keywords",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"keywords": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Keywords to match; only the first is used",
				},
				"tlds": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "TLD filter (e.g., com); only the first is used",
				},
			},
			"required": []string{"keywords"},
		},
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			keyword := firstString(args, "keywords")
			tld := firstString(args, "tlds")
			return uc.SearchExpired(ctx, keyword, tld)
		})

	r.add("domain_age_check", "Check the age of a domain",
		domainSchema("The domain name"),
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			name, err := requireString(args, "domain")
			if err != nil {
				return nil, err
			}
			return uc.CheckAge(ctx, name)
		})

	r.add("bulk_domain_check", "Check availability of multiple domains at once",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"domains": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Domain names to check",
				},
			},
			"required": []string{"domains"},
		},
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			names, ok := stringSlice(args["domains"])
			if !ok {
				return nil, fmt.Errorf("domains must be an array of strings")
			}
			return uc.BulkCheck(ctx, names)
		})

	r.add("get_dns_records", "Get all DNS records for a domain",
		domainSchema("The domain name"),
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			name, err := requireString(args, "domain")
			if err != nil {
				return nil, err
			}
			return uc.DNSRecords(ctx, name)
		})
}

func registerPortfolioTools(r *Registry, uc usecase.PortfolioUsecase) {
	r.add("list_portfolio", "List the domains held in the configured Cloudflare account",
		emptySchema(),
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			return uc.ListZones(ctx)
		})

	r.add("check_portfolio", "Check availability and registration expiry of every domain in the Cloudflare account",
		emptySchema(),
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			return uc.CheckPortfolio(ctx)
		})
}

func requireString(args map[string]interface{}, key string) (string, error) {
	v, ok := args[key].(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}

// firstString returns the first element of an array argument, or the
// argument itself when a plain string was sent
func firstString(args map[string]interface{}, key string) string {
	switch v := args[key].(type) {
	case string:
		return v
	case []interface{}:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func stringSlice(v interface{}) ([]string, bool) {
	switch items := v.(type) {
	case []string:
		return items, true
	case []interface{}:
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
