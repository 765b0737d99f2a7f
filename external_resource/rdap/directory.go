package rdap

import "sort"

// defaultServers maps well-known TLDs to their registry RDAP base URLs
var defaultServers = map[string]string{
	"com":   "https://rdap.verisign.com/com/v1",
	"net":   "https://rdap.verisign.com/net/v1",
	"org":   "https://rdap.publicinterestregistry.org/rdap",
	"info":  "https://rdap.afilias.net/rdap",
	"io":    "https://rdap.nic.io",
	"co":    "https://rdap.nic.co",
	"me":    "https://rdap.nic.me",
	"tv":    "https://rdap.nic.tv",
	"app":   "https://rdap.nic.google",
	"dev":   "https://rdap.nic.google",
	"cloud": "https://rdap.nic.google",
}

// Directory is an immutable TLD to RDAP base URL mapping.
// It is safe for concurrent use.
type Directory struct {
	servers map[string]string
}

// NewDirectory copies entries into a new directory
func NewDirectory(entries map[string]string) *Directory {
	servers := make(map[string]string, len(entries))
	for tld, base := range entries {
		servers[tld] = base
	}
	return &Directory{servers: servers}
}

// DefaultDirectory returns the built-in directory of well-known registries
func DefaultDirectory() *Directory {
	return NewDirectory(defaultServers)
}

// Lookup returns the base URL for a TLD
func (d *Directory) Lookup(tld string) (string, bool) {
	base, ok := d.servers[tld]
	return base, ok
}

// TLDs returns the directory's TLDs in sorted order
func (d *Directory) TLDs() []string {
	tlds := make([]string, 0, len(d.servers))
	for tld := range d.servers {
		tlds = append(tlds, tld)
	}
	sort.Strings(tlds)
	return tlds
}
