package utils

import (
	"fmt"
	"strings"

	er "github.com/prafulfillment/namecheap-mcp/internal/errors"
)

// SplitDomain splits a domain name into the SLD and TLD components Namecheap
// expects. The first label is the SLD and everything after it is the TLD, so
// multi-label TLDs like "co.uk" stay intact: "example.co.uk" -> ("example", "co.uk").
func SplitDomain(domain string) (string, string, error) {
	parts := strings.Split(domain, ".")
	if len(parts) < 2 {
		return "", "", er.InvalidParam("domain_name", fmt.Sprintf("invalid domain name %q", domain))
	}
	for _, part := range parts {
		if part == "" {
			return "", "", er.InvalidParam("domain_name", fmt.Sprintf("invalid domain name %q", domain))
		}
	}
	return parts[0], strings.Join(parts[1:], "."), nil
}

// SplitDomainWithTLD splits using an explicit TLD override instead of the
// default first-label policy. The override must be a proper suffix of domain.
func SplitDomainWithTLD(domain, tld string) (string, string, error) {
	if tld == "" {
		return SplitDomain(domain)
	}
	sld := strings.TrimSuffix(domain, "."+tld)
	if sld == domain || sld == "" || strings.Contains(sld, ".") {
		return "", "", er.InvalidParam("tld", fmt.Sprintf("%q is not a valid tld for domain %q", tld, domain))
	}
	return sld, tld, nil
}
