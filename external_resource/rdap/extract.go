package rdap

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Event actions used for field extraction
const (
	ActionRegistration   = "registration"
	ActionExpiration     = "expiration"
	ActionLastChanged    = "last changed"
	ActionDatabaseUpdate = "last update of RDAP database"
)

// EventDate returns the date of the first event whose action equals action exactly
func (d *Domain) EventDate(action string) (string, bool) {
	for _, e := range d.Events {
		if e.Action == action && e.Date != "" {
			return e.Date, true
		}
	}
	return "", false
}

// CreationDate returns the date of the first registration or last changed
// event, in the order the registry lists them
func (d *Domain) CreationDate() (string, bool) {
	for _, e := range d.Events {
		if (e.Action == ActionRegistration || e.Action == ActionLastChanged) && e.Date != "" {
			return e.Date, true
		}
	}
	return "", false
}

// ExpirationDate returns the expiration event date
func (d *Domain) ExpirationDate() (string, bool) {
	return d.EventDate(ActionExpiration)
}

// UpdatedDate prefers last changed and falls back to the database update event
func (d *Domain) UpdatedDate() (string, bool) {
	if date, ok := d.EventDate(ActionLastChanged); ok {
		return date, true
	}
	return d.EventDate(ActionDatabaseUpdate)
}

// Registrar returns the registrar entity's vCard full name, or its handle
func (d *Domain) Registrar() (string, bool) {
	for _, e := range d.Entities {
		if !e.HasRole("registrar") {
			continue
		}
		if name := e.FullName(); name != "" {
			return name, true
		}
		if e.Handle != "" {
			return e.Handle, true
		}
	}
	return "", false
}

// NameServerNames returns the ldhName of every listed nameserver
func (d *Domain) NameServerNames() []string {
	names := make([]string, 0, len(d.Nameservers))
	for _, ns := range d.Nameservers {
		if ns.LDHName != "" {
			names = append(names, ns.LDHName)
		}
	}
	return names
}

// Statuses returns the status values verbatim
func (d *Domain) Statuses() []string {
	return append([]string{}, d.Status...)
}

// Indented returns the raw body pretty printed, or as served if it cannot be indented
func (d *Domain) Indented() string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, d.Raw, "", "  "); err != nil {
		return string(d.Raw)
	}
	return buf.String()
}

// HasRole reports whether the entity carries role
func (e Entity) HasRole(role string) bool {
	for _, r := range e.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// FullName reads the "fn" property from a jCard ["vcard", [[name, params, type, value], ...]]
func (e Entity) FullName() string {
	if len(e.VCardArray) == 0 {
		return ""
	}

	var card []json.RawMessage
	if err := json.Unmarshal(e.VCardArray, &card); err != nil || len(card) < 2 {
		return ""
	}

	var props [][]json.RawMessage
	if err := json.Unmarshal(card[1], &props); err != nil {
		return ""
	}

	for _, prop := range props {
		if len(prop) < 4 {
			continue
		}
		var name string
		if err := json.Unmarshal(prop[0], &name); err != nil || name != "fn" {
			continue
		}
		var value string
		if err := json.Unmarshal(prop[3], &value); err != nil {
			continue
		}
		return strings.TrimSpace(value)
	}
	return ""
}
