package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"domain-mcp/internal/domain"
)

// Action is one lookup the bot can run
type Action string

const (
	ActionWhois        Action = "whois"
	ActionDNS          Action = "dns"
	ActionRecords      Action = "records"
	ActionAvailability Action = "check"
	ActionBulk         Action = "bulk"
	ActionExpired      Action = "expired"
	ActionAge          Action = "age"
	ActionSSL          Action = "ssl"
)

// maxBulkDomains bounds one bulk request from chat
const maxBulkDomains = 50

var actionSteps = map[Action]Step{
	ActionWhois:        StepInputWhois,
	ActionDNS:          StepInputDNS,
	ActionRecords:      StepInputRecords,
	ActionAvailability: StepInputAvailability,
	ActionBulk:         StepInputBulk,
	ActionExpired:      StepInputExpired,
	ActionAge:          StepInputAge,
	ActionSSL:          StepInputSSL,
}

var actionPrompts = map[Action]string{
	ActionWhois:        "*🔎 WHOIS*\n\nSend the domain name (e.g., `example.com`):",
	ActionDNS:          "*🌐 DNS*\n\nSend the domain name:",
	ActionRecords:      "*📋 DNS records*\n\nSend the domain name:",
	ActionAvailability: "*✅ Availability*\n\nSend the domain name:",
	ActionBulk:         "*📦 Bulk check*\n\nSend the domain names separated by spaces, commas or new lines:",
	ActionExpired:      "*⌛ Expired domains*\n\nSend `keyword [tld]`, e.g. `shop com`. Send `-` for no keyword:",
	ActionAge:          "*🎂 Domain age*\n\nSend the domain name:",
	ActionSSL:          "*🔒 Certificate*\n\nSend the domain name:",
}

// actionForStep maps a waiting step back to its action
func actionForStep(step Step) (Action, bool) {
	for action, s := range actionSteps {
		if s == step {
			return action, true
		}
	}
	return "", false
}

// parseDomains splits free text into domain names
func parseDomains(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// parseExpiredQuery reads "keyword [tld]"; "-" stands for no keyword
func parseExpiredQuery(text string) (keyword, tld string) {
	fields := strings.Fields(text)
	if len(fields) > 0 && fields[0] != "-" {
		keyword = fields[0]
	}
	if len(fields) > 1 {
		tld = strings.TrimPrefix(fields[1], ".")
	}
	return keyword, tld
}

// runAction executes an action against the use cases and renders the reply
func (b *Bot) runAction(ctx context.Context, action Action, input string) string {
	input = strings.TrimSpace(input)

	switch action {
	case ActionBulk:
		names := parseDomains(input)
		if len(names) == 0 {
			return "❌ Send at least one domain name."
		}
		if len(names) > maxBulkDomains {
			return fmt.Sprintf("❌ At most %d domains per bulk check.", maxBulkDomains)
		}
		result, err := b.domainUsecase.BulkCheck(ctx, names)
		if err != nil {
			return errorReply(err)
		}
		return formatBulk(result)

	case ActionExpired:
		keyword, tld := parseExpiredQuery(input)
		results, err := b.domainUsecase.SearchExpired(ctx, keyword, tld)
		if err != nil {
			return errorReply(err)
		}
		return formatExpired(keyword, tld, results)
	}

	if input == "" {
		return "❌ Send a domain name."
	}
	name := strings.Fields(input)[0]

	switch action {
	case ActionWhois:
		record, err := b.domainUsecase.WhoisLookup(ctx, name)
		if err != nil {
			return errorReply(err)
		}
		return formatWhois(record)

	case ActionDNS:
		result, err := b.domainUsecase.DNSLookup(ctx, name)
		if err != nil {
			return errorReply(err)
		}
		return formatDNS(result)

	case ActionRecords:
		records, err := b.domainUsecase.DNSRecords(ctx, name)
		if err != nil {
			return errorReply(err)
		}
		return formatRecords(domain.Normalize(name), records)

	case ActionAvailability:
		verdict, err := b.domainUsecase.CheckAvailability(ctx, name)
		if err != nil {
			return errorReply(err)
		}
		return formatVerdict(verdict)

	case ActionAge:
		age, err := b.domainUsecase.CheckAge(ctx, name)
		if err != nil {
			return errorReply(err)
		}
		return formatAge(age)

	case ActionSSL:
		info, err := b.domainUsecase.CertificateInfo(ctx, name)
		if err != nil {
			return errorReply(err)
		}
		return formatCertificate(info)
	}

	return fmt.Sprintf("❌ Unknown action %s", code(string(action)))
}

func errorReply(err error) string {
	if errors.Is(err, domain.ErrInvalidDomain) {
		return "❌ That does not look like a domain name."
	}
	return "❌ Error: " + code(err.Error())
}
