package interfaces

import (
	"context"

	"github.com/prafulfillment/namecheap-mcp/internal/enum"
)

// NamecheapService translates each logical operation into one Namecheap
// HTTP/XML call. The tld argument on SLD/TLD operations overrides the default
// first-label domain split when non-empty.
type NamecheapService interface {
	SetDefaultDNS(ctx context.Context, domain, tld string) (*DNSUpdateResult, error)
	SetCustomDNS(ctx context.Context, domain, tld string, nameservers []string) (*DNSUpdateResult, error)
	GetDNSList(ctx context.Context, domain, tld string) (*DNSServerList, error)
	GetHosts(ctx context.Context, domain, tld string) (*HostRecordList, error)
	SetHosts(ctx context.Context, domain, tld string, records []HostRecord) (*DNSUpdateResult, error)
	AddHosts(ctx context.Context, domain, tld string, records []HostRecord) (*DNSUpdateResult, error)
	GetEmailForwarding(ctx context.Context, domain string) (*EmailForwardingList, error)
	SetEmailForwarding(ctx context.Context, domain string, forwards []EmailForward) (*DNSUpdateResult, error)
	GetDomains(ctx context.Context) ([]DomainListEntry, error)
	GetDomainInfo(ctx context.Context, domain string) (*DomainInfo, error)
	CheckDomainsAvailability(ctx context.Context, domains []string) ([]DomainCheckResult, error)
}

// HostRecord is one DNS host record. MXPref and TTL are optional; the zero
// value means unset and is omitted from the outbound request entirely.
type HostRecord struct {
	HostId     string          `json:"host_id,omitempty"`
	HostName   string          `json:"host_name"`
	RecordType enum.RecordType `json:"record_type"`
	Address    string          `json:"address"`
	MXPref     int             `json:"mx_pref,omitempty"`
	TTL        int             `json:"ttl,omitempty"`
}

// EmailForward maps a mailbox local part to a destination address.
type EmailForward struct {
	Mailbox   string `json:"mailbox"`
	ForwardTo string `json:"forward_to"`
}

// DNSUpdateResult reports whether a mutating DNS command took effect.
type DNSUpdateResult struct {
	Domain  string `json:"domain"`
	Success bool   `json:"success"`
}

// DNSServerList preserves the provider's nameserver order; order carries
// primary/secondary semantics.
type DNSServerList struct {
	Domain        string   `json:"domain"`
	IsUsingOurDNS bool     `json:"is_using_our_dns"`
	Nameservers   []string `json:"nameservers"`
}

type HostRecordList struct {
	Domain        string       `json:"domain"`
	IsUsingOurDNS bool         `json:"is_using_our_dns"`
	Hosts         []HostRecord `json:"hosts"`
}

type EmailForwardingList struct {
	Domain   string         `json:"domain"`
	Forwards []EmailForward `json:"forwards"`
}

type DomainListEntry struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Created    string `json:"created"`
	Expires    string `json:"expires"`
	IsExpired  bool   `json:"is_expired"`
	IsLocked   bool   `json:"is_locked"`
	AutoRenew  bool   `json:"auto_renew"`
	WhoisGuard string `json:"whois_guard"`
}

type DomainInfo struct {
	DomainName    string   `json:"domain_name"`
	OwnerName     string   `json:"owner_name"`
	IsOwner       bool     `json:"is_owner"`
	CreatedDate   string   `json:"created_date"`
	ExpiredDate   string   `json:"expired_date"`
	WhoisGuard    bool     `json:"whois_guard"`
	IsUsingOurDNS bool     `json:"is_using_our_dns"`
	Nameservers   []string `json:"nameservers"`
}

type DomainCheckResult struct {
	Domain        string `json:"domain"`
	Available     bool   `json:"available"`
	IsPremiumName bool   `json:"is_premium_name"`
}
