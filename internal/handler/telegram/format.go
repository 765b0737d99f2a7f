package telegram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"domain-mcp/internal/domain"
)

// maxMessageLength keeps replies under Telegram's 4096 character limit
const maxMessageLength = 3800

// code renders an inline code span; backticks would end the span early
func code(s string) string {
	if s == "" {
		return "-"
	}
	return "`" + strings.ReplaceAll(s, "`", "'") + "`"
}

func codeList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = code(item)
	}
	return strings.Join(parts, ", ")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func truncate(text string) string {
	if len(text) <= maxMessageLength {
		return text
	}
	cut := maxMessageLength
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "\n…"
}

func formatWhois(r *domain.WhoisRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*🔎 WHOIS* %s\n\n", code(r.Domain))
	fmt.Fprintf(&b, "Registrar: %s\n", code(r.Registrar))
	fmt.Fprintf(&b, "Created: %s\n", code(r.CreationDate))
	fmt.Fprintf(&b, "Expires: %s\n", code(r.ExpiryDate))
	fmt.Fprintf(&b, "Updated: %s\n", code(r.UpdatedDate))
	fmt.Fprintf(&b, "Name servers: %s\n", codeList(r.NameServers))
	fmt.Fprintf(&b, "Status: %s\n", codeList(r.Status))
	fmt.Fprintf(&b, "RDAP: %s\n", yesNo(r.RDAPAvailable))
	if r.Registrar == "" && r.CreationDate == "" && len(r.NameServers) == 0 {
		fmt.Fprintf(&b, "\n_No registration data:_ %s", code(firstLine(r.RawData)))
	}
	return truncate(b.String())
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func formatDNS(r *domain.DNSLookupResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*🌐 DNS* %s\n\n", code(r.Domain))
	fmt.Fprintf(&b, "A: %s\n", codeList(r.ARecords))
	fmt.Fprintf(&b, "AAAA: %s\n", codeList(r.AAAARecords))

	mx := make([]string, len(r.MXRecords))
	for i, m := range r.MXRecords {
		mx[i] = fmt.Sprintf("%d %s", m.Priority, m.Exchange)
	}
	fmt.Fprintf(&b, "MX: %s\n", codeList(mx))
	fmt.Fprintf(&b, "TXT: %s\n", codeList(r.TXTRecords))
	fmt.Fprintf(&b, "NS: %s\n", codeList(r.NSRecords))
	fmt.Fprintf(&b, "CNAME: %s\n", codeList(r.CNAMERecords))
	if soa := r.SOARecord; soa != nil {
		fmt.Fprintf(&b, "SOA: %s serial %d\n", code(soa.PrimaryNS), soa.Serial)
	} else {
		b.WriteString("SOA: -\n")
	}
	return truncate(b.String())
}

func formatRecords(name string, records []domain.DNSRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*📋 DNS records* %s\n\n", code(name))
	if len(records) == 0 {
		b.WriteString("📭 No records found.")
		return b.String()
	}
	for _, r := range records {
		ttl := "-"
		if r.TTL != nil {
			ttl = fmt.Sprintf("%d", *r.TTL)
		}
		fmt.Fprintf(&b, "%s %s ttl=%s\n", r.RecordType, code(r.Value), ttl)
	}
	return truncate(b.String())
}

func verdictIcon(v domain.AvailabilityVerdict) string {
	if v.Available {
		return "✅"
	}
	return "⛔"
}

func formatVerdict(v *domain.AvailabilityVerdict) string {
	state := "taken"
	if v.Available {
		state = "likely available"
	}
	return fmt.Sprintf("%s %s is *%s*\nReason: %s", verdictIcon(*v), code(v.Domain), state, v.Reason)
}

func formatBulk(r *domain.BulkCheckResult) string {
	var b strings.Builder
	b.WriteString("*📦 Bulk check*\n\n")
	for _, v := range r.Domains {
		fmt.Fprintf(&b, "%s %s %s\n", verdictIcon(v), code(v.Domain), v.Reason)
	}
	s := r.Summary
	fmt.Fprintf(&b, "\nTotal %d, available %d, taken %d, errors %d", s.Total, s.Available, s.Taken, s.Errors)
	return truncate(b.String())
}

func formatExpired(keyword, tld string, results []domain.ExpiredDomain) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*⌛ Expired domains* keyword=%s tld=%s\n\n", code(keyword), code(tld))
	if len(results) == 0 {
		b.WriteString("📭 No candidates found.")
		return b.String()
	}
	for i, d := range results {
		fmt.Fprintf(&b, "%d. %s %s (%s)", i+1, code(d.Domain), d.Status, d.Source)
		if d.EndTime != "" {
			fmt.Fprintf(&b, " ends %s", code(d.EndTime))
		}
		if d.StartingPrice != "" {
			fmt.Fprintf(&b, " from %s", code(d.StartingPrice))
		}
		b.WriteString("\n")
	}
	return truncate(b.String())
}

func formatAge(a *domain.DomainAge) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*🎂 Domain age* %s\n\n", code(a.Domain))
	if a.CreationDate == nil {
		b.WriteString("Creation date unknown.")
		return b.String()
	}
	fmt.Fprintf(&b, "Created: %s\n", code(*a.CreationDate))
	if a.AgeDays != nil && a.AgeYears != nil {
		fmt.Fprintf(&b, "Age: %d days (%.1f years)", *a.AgeDays, *a.AgeYears)
	} else {
		b.WriteString("Age: could not parse the creation date")
	}
	return b.String()
}

func formatCertificate(c *domain.CertificateInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*🔒 Certificate* %s\n\n", code(c.Domain))
	fmt.Fprintf(&b, "Valid: %s\n", yesNo(c.IsValid))
	fmt.Fprintf(&b, "Issuer: %s\n", code(c.Issuer))
	fmt.Fprintf(&b, "Subject: %s\n", code(c.Subject))
	fmt.Fprintf(&b, "Not before: %s\n", code(c.NotBefore))
	fmt.Fprintf(&b, "Not after: %s\n", code(c.NotAfter))
	if c.DaysUntilExpiry != nil {
		fmt.Fprintf(&b, "Days left: %d\n", *c.DaysUntilExpiry)
	}
	fmt.Fprintf(&b, "SANs: %s\n", codeList(c.SANDomains))
	return truncate(b.String())
}

func formatZones(zones []domain.Zone) string {
	if len(zones) == 0 {
		return "📭 No zones found."
	}
	var b strings.Builder
	b.WriteString("*📋 Your Zones:*\n\n")
	for i, z := range zones {
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, code(z.Name), z.Status)
	}
	return truncate(b.String())
}

func formatPortfolio(entries []domain.PortfolioEntry) string {
	if len(entries) == 0 {
		return "📭 No zones found."
	}
	var b strings.Builder
	b.WriteString("*🗂 Portfolio*\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s expires %s registrar %s\n",
			verdictIcon(e.Availability), code(e.Zone.Name), code(e.ExpiryDate), code(e.Registrar))
	}
	return truncate(b.String())
}
