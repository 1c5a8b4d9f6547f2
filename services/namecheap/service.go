package namecheap

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	tracingLog "github.com/opentracing/opentracing-go/log"
	"github.com/pkg/errors"

	"github.com/prafulfillment/namecheap-mcp/config"
	"github.com/prafulfillment/namecheap-mcp/interfaces"
	"github.com/prafulfillment/namecheap-mcp/internal/enum"
	er "github.com/prafulfillment/namecheap-mcp/internal/errors"
	"github.com/prafulfillment/namecheap-mcp/internal/logger"
	"github.com/prafulfillment/namecheap-mcp/internal/tracing"
	"github.com/prafulfillment/namecheap-mcp/internal/utils"
)

// Namecheap supported commands: https://www.namecheap.com/support/api/methods/
type namecheapService struct {
	cfg        *config.NamecheapConfig
	log        logger.Logger
	httpClient *http.Client
}

func NewNamecheapService(cfg *config.NamecheapConfig, log logger.Logger) interfaces.NamecheapService {
	return &namecheapService{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

type apiError struct {
	Number  string `xml:"Number,attr"`
	Message string `xml:",chardata"`
}

// ResponseEnvelope is the common frame of every Namecheap API response.
type ResponseEnvelope struct {
	XMLName xml.Name `xml:"ApiResponse"`
	Status  string   `xml:"Status,attr"`
	Errors  struct {
		Error []apiError `xml:"Error"`
	} `xml:"Errors"`
}

// providerError translates a Status="ERROR" response into a typed error
// carrying the provider's code and message verbatim.
func (e *ResponseEnvelope) providerError() error {
	if e.Status != "ERROR" {
		return nil
	}
	if len(e.Errors.Error) == 0 {
		return &er.ProviderError{Code: "Unknown", Message: "unknown Namecheap API error"}
	}
	first := e.Errors.Error[0]
	return &er.ProviderError{Code: first.Number, Message: strings.TrimSpace(first.Message)}
}

// apiCall posts one command to the Namecheap API and unmarshals the XML
// response into result. Credentials are attached here and never logged.
func (s *namecheapService) apiCall(span opentracing.Span, command string, extra url.Values, result any) error {
	if s.cfg.ApiKey == "" || s.cfg.ApiUser == "" || s.cfg.ApiClientIp == "" {
		return &er.TransportError{Op: command, Err: errors.New("Namecheap API configuration is missing")}
	}

	params := url.Values{}
	params.Add("ApiUser", s.cfg.ApiUser)
	params.Add("ApiKey", s.cfg.ApiKey)
	params.Add("UserName", s.cfg.ApiUser)
	params.Add("ClientIp", s.cfg.ApiClientIp)
	params.Add("Command", command)
	for key, values := range extra {
		for _, value := range values {
			params.Add(key, value)
		}
	}

	resp, err := s.httpClient.PostForm(s.cfg.BaseUrl(), params)
	if err != nil {
		s.log.Errorf("namecheap %s call failed: %v", command, err)
		return &er.TransportError{Op: command, Err: errors.Wrap(err, "failed to call Namecheap API")}
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &er.TransportError{Op: command, Err: errors.Wrap(err, "failed to read Namecheap response")}
	}
	span.LogFields(tracingLog.String("responseBody", string(responseBody)))

	if err = xml.Unmarshal(responseBody, result); err != nil {
		return &er.TransportError{Op: command, Err: errors.Wrap(err, "failed to parse Namecheap XML response")}
	}

	return nil
}

// SetDefaultDNS sets the domain to use Namecheap's default DNS servers.
func (s *namecheapService) SetDefaultDNS(ctx context.Context, domain, tld string) (*interfaces.DNSUpdateResult, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "NamecheapService.SetDefaultDNS")
	defer span.Finish()
	tracing.TagComponentService(span)
	span.LogKV("domain", domain)

	sld, tldPart, err := utils.SplitDomainWithTLD(domain, tld)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	params := url.Values{}
	params.Add("SLD", sld)
	params.Add("TLD", tldPart)

	var result struct {
		ResponseEnvelope
		CommandResponse struct {
			DomainDNSSetDefaultResult struct {
				Domain  string `xml:"Domain,attr"`
				Updated bool   `xml:"Updated,attr"`
			} `xml:"DomainDNSSetDefaultResult"`
		} `xml:"CommandResponse"`
	}
	if err := s.apiCall(span, "namecheap.domains.dns.setDefault", params, &result); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	if err := result.providerError(); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	return &interfaces.DNSUpdateResult{
		Domain:  result.CommandResponse.DomainDNSSetDefaultResult.Domain,
		Success: result.CommandResponse.DomainDNSSetDefaultResult.Updated,
	}, nil
}

// SetCustomDNS sets the domain to use custom DNS servers, comma-joined in the
// caller-supplied order. Namecheap allows at most 12 nameservers.
func (s *namecheapService) SetCustomDNS(ctx context.Context, domain, tld string, nameservers []string) (*interfaces.DNSUpdateResult, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "NamecheapService.SetCustomDNS")
	defer span.Finish()
	tracing.TagComponentService(span)
	span.LogKV("domain", domain, "nameservers", strings.Join(nameservers, ","))

	if len(nameservers) == 0 {
		err := er.InvalidParam("name_servers", "at least one nameserver is required")
		tracing.TraceErr(span, err)
		return nil, err
	}
	if len(nameservers) > 12 {
		err := er.InvalidParam("name_servers", "maximum of 12 nameservers allowed")
		tracing.TraceErr(span, err)
		return nil, err
	}

	sld, tldPart, err := utils.SplitDomainWithTLD(domain, tld)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	params := url.Values{}
	params.Add("SLD", sld)
	params.Add("TLD", tldPart)
	params.Add("Nameservers", strings.Join(nameservers, ","))

	var result struct {
		ResponseEnvelope
		CommandResponse struct {
			DomainDNSSetCustomResult struct {
				Domain  string `xml:"Domain,attr"`
				Updated bool   `xml:"Updated,attr"`
			} `xml:"DomainDNSSetCustomResult"`
		} `xml:"CommandResponse"`
	}
	if err := s.apiCall(span, "namecheap.domains.dns.setCustom", params, &result); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	if err := result.providerError(); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	return &interfaces.DNSUpdateResult{
		Domain:  result.CommandResponse.DomainDNSSetCustomResult.Domain,
		Success: result.CommandResponse.DomainDNSSetCustomResult.Updated,
	}, nil
}

// GetDNSList returns the DNS servers for the domain in provider order.
func (s *namecheapService) GetDNSList(ctx context.Context, domain, tld string) (*interfaces.DNSServerList, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "NamecheapService.GetDNSList")
	defer span.Finish()
	tracing.TagComponentService(span)
	span.LogKV("domain", domain)

	sld, tldPart, err := utils.SplitDomainWithTLD(domain, tld)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	params := url.Values{}
	params.Add("SLD", sld)
	params.Add("TLD", tldPart)

	var result struct {
		ResponseEnvelope
		CommandResponse struct {
			DomainDNSGetListResult struct {
				Domain        string   `xml:"Domain,attr"`
				IsUsingOurDNS bool     `xml:"IsUsingOurDNS,attr"`
				Nameserver    []string `xml:"Nameserver"`
			} `xml:"DomainDNSGetListResult"`
		} `xml:"CommandResponse"`
	}
	if err := s.apiCall(span, "namecheap.domains.dns.getList", params, &result); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	if err := result.providerError(); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	listResult := result.CommandResponse.DomainDNSGetListResult
	return &interfaces.DNSServerList{
		Domain:        listResult.Domain,
		IsUsingOurDNS: listResult.IsUsingOurDNS,
		Nameservers:   listResult.Nameserver,
	}, nil
}

type hostElement struct {
	HostId  string `xml:"HostId,attr"`
	Name    string `xml:"Name,attr"`
	Type    string `xml:"Type,attr"`
	Address string `xml:"Address,attr"`
	MXPref  string `xml:"MXPref,attr"`
	TTL     string `xml:"TTL,attr"`
}

func (h hostElement) toHostRecord() interfaces.HostRecord {
	mxPref, _ := strconv.Atoi(h.MXPref)
	ttl, _ := strconv.Atoi(h.TTL)
	return interfaces.HostRecord{
		HostId:     h.HostId,
		HostName:   h.Name,
		RecordType: enum.GetRecordType(h.Type),
		Address:    h.Address,
		MXPref:     mxPref,
		TTL:        ttl,
	}
}

// GetHosts retrieves the host records for the domain in provider order.
func (s *namecheapService) GetHosts(ctx context.Context, domain, tld string) (*interfaces.HostRecordList, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "NamecheapService.GetHosts")
	defer span.Finish()
	tracing.TagComponentService(span)
	span.LogKV("domain", domain)

	sld, tldPart, err := utils.SplitDomainWithTLD(domain, tld)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	params := url.Values{}
	params.Add("SLD", sld)
	params.Add("TLD", tldPart)

	var result struct {
		ResponseEnvelope
		CommandResponse struct {
			DomainDNSGetHostsResult struct {
				Domain        string        `xml:"Domain,attr"`
				IsUsingOurDNS bool          `xml:"IsUsingOurDNS,attr"`
				Host          []hostElement `xml:"host"`
			} `xml:"DomainDNSGetHostsResult"`
		} `xml:"CommandResponse"`
	}
	if err := s.apiCall(span, "namecheap.domains.dns.getHosts", params, &result); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	if err := result.providerError(); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	hostsResult := result.CommandResponse.DomainDNSGetHostsResult
	hosts := make([]interfaces.HostRecord, 0, len(hostsResult.Host))
	for _, host := range hostsResult.Host {
		hosts = append(hosts, host.toHostRecord())
	}

	return &interfaces.HostRecordList{
		Domain:        hostsResult.Domain,
		IsUsingOurDNS: hostsResult.IsUsingOurDNS,
		Hosts:         hosts,
	}, nil
}

func validateHostRecords(records []interfaces.HostRecord) error {
	if len(records) == 0 {
		// Provider behavior for an empty record list (clear-all vs no-op) is
		// unconfirmed, so reject instead of guessing.
		return er.InvalidParam("records", "at least one host record is required")
	}
	for i, record := range records {
		if record.HostName == "" {
			return er.InvalidParam("records", fmt.Sprintf("record %d: host_name is required", i+1))
		}
		if !record.RecordType.IsValid() {
			return er.InvalidParam("records", fmt.Sprintf("record %d: unsupported record type %q", i+1, record.RecordType))
		}
		if record.Address == "" {
			return er.InvalidParam("records", fmt.Sprintf("record %d: address is required", i+1))
		}
	}
	return nil
}

// hostRecordParams flattens records into the indexed parameters the API
// expects: HostName1, RecordType1, Address1, ... in caller-supplied order.
// MXPref and TTL are omitted when unset rather than sent empty.
func hostRecordParams(records []interfaces.HostRecord) url.Values {
	params := url.Values{}
	emailType := ""
	for i, record := range records {
		idx := strconv.Itoa(i + 1)
		params.Add("HostName"+idx, record.HostName)
		params.Add("RecordType"+idx, record.RecordType.String())
		params.Add("Address"+idx, record.Address)
		if record.MXPref > 0 {
			params.Add("MXPref"+idx, strconv.Itoa(record.MXPref))
		}
		if record.TTL > 0 {
			params.Add("TTL"+idx, strconv.Itoa(record.TTL))
		}
		if record.RecordType == enum.RecordTypeMX {
			emailType = "MX"
		}
	}
	if emailType != "" {
		params.Add("EmailType", emailType)
	}
	return params
}

// SetHosts replaces the domain's host records wholesale. The supplied list
// fully supersedes whatever the domain had; there is no partial update.
func (s *namecheapService) SetHosts(ctx context.Context, domain, tld string, records []interfaces.HostRecord) (*interfaces.DNSUpdateResult, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "NamecheapService.SetHosts")
	defer span.Finish()
	tracing.TagComponentService(span)
	span.LogKV("domain", domain, "recordCount", len(records))

	if err := validateHostRecords(records); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	sld, tldPart, err := utils.SplitDomainWithTLD(domain, tld)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	params := hostRecordParams(records)
	params.Add("SLD", sld)
	params.Add("TLD", tldPart)

	var result struct {
		ResponseEnvelope
		CommandResponse struct {
			DomainDNSSetHostsResult struct {
				Domain    string `xml:"Domain,attr"`
				IsSuccess bool   `xml:"IsSuccess,attr"`
			} `xml:"DomainDNSSetHostsResult"`
		} `xml:"CommandResponse"`
	}
	if err := s.apiCall(span, "namecheap.domains.dns.setHosts", params, &result); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	if err := result.providerError(); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	return &interfaces.DNSUpdateResult{
		Domain:  result.CommandResponse.DomainDNSSetHostsResult.Domain,
		Success: result.CommandResponse.DomainDNSSetHostsResult.IsSuccess,
	}, nil
}

// AddHosts fetches the current records and re-submits them with the new
// records prepended. setHosts replaces the full set, so this is the only way
// to append without dropping existing records.
func (s *namecheapService) AddHosts(ctx context.Context, domain, tld string, records []interfaces.HostRecord) (*interfaces.DNSUpdateResult, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "NamecheapService.AddHosts")
	defer span.Finish()
	tracing.TagComponentService(span)
	span.LogKV("domain", domain, "recordCount", len(records))

	if err := validateHostRecords(records); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	existing, err := s.GetHosts(ctx, domain, tld)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	combined := make([]interfaces.HostRecord, 0, len(records)+len(existing.Hosts))
	combined = append(combined, records...)
	combined = append(combined, existing.Hosts...)

	return s.SetHosts(ctx, domain, tld, combined)
}

// GetEmailForwarding returns the email forwarding entries for the domain.
// The getEmailForwarding command takes the whole domain name, not SLD/TLD.
func (s *namecheapService) GetEmailForwarding(ctx context.Context, domain string) (*interfaces.EmailForwardingList, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "NamecheapService.GetEmailForwarding")
	defer span.Finish()
	tracing.TagComponentService(span)
	span.LogKV("domain", domain)

	params := url.Values{}
	params.Add("DomainName", domain)

	var result struct {
		ResponseEnvelope
		CommandResponse struct {
			DomainDNSGetEmailForwardingResult struct {
				Domain  string `xml:"Domain,attr"`
				Forward []struct {
					MailBox   string `xml:"MailBox,attr"`
					ForwardTo string `xml:"ForwardTo,attr"`
				} `xml:"forward"`
			} `xml:"DomainDNSGetEmailForwardingResult"`
		} `xml:"CommandResponse"`
	}
	if err := s.apiCall(span, "namecheap.domains.dns.getEmailForwarding", params, &result); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	if err := result.providerError(); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	forwardingResult := result.CommandResponse.DomainDNSGetEmailForwardingResult
	forwards := make([]interfaces.EmailForward, 0, len(forwardingResult.Forward))
	for _, forward := range forwardingResult.Forward {
		forwards = append(forwards, interfaces.EmailForward{
			Mailbox:   forward.MailBox,
			ForwardTo: forward.ForwardTo,
		})
	}

	return &interfaces.EmailForwardingList{
		Domain:   forwardingResult.Domain,
		Forwards: forwards,
	}, nil
}

// SetEmailForwarding replaces the domain's email forwarding entries wholesale
// with indexed MailBox1/ForwardTo1 parameters in caller-supplied order.
func (s *namecheapService) SetEmailForwarding(ctx context.Context, domain string, forwards []interfaces.EmailForward) (*interfaces.DNSUpdateResult, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "NamecheapService.SetEmailForwarding")
	defer span.Finish()
	tracing.TagComponentService(span)
	span.LogKV("domain", domain, "forwardCount", len(forwards))

	if len(forwards) == 0 {
		// Same unconfirmed clear-all vs no-op contract as setHosts.
		err := er.InvalidParam("forwards", "at least one forwarding entry is required")
		tracing.TraceErr(span, err)
		return nil, err
	}

	params := url.Values{}
	params.Add("DomainName", domain)
	for i, forward := range forwards {
		idx := strconv.Itoa(i + 1)
		if forward.Mailbox == "" {
			err := er.InvalidParam("forwards", fmt.Sprintf("entry %d: mailbox is required", i+1))
			tracing.TraceErr(span, err)
			return nil, err
		}
		if forward.ForwardTo == "" {
			err := er.InvalidParam("forwards", fmt.Sprintf("entry %d: forward_to is required", i+1))
			tracing.TraceErr(span, err)
			return nil, err
		}
		params.Add("MailBox"+idx, forward.Mailbox)
		params.Add("ForwardTo"+idx, forward.ForwardTo)
	}

	var result struct {
		ResponseEnvelope
		CommandResponse struct {
			DomainDNSSetEmailForwardingResult struct {
				Domain    string `xml:"Domain,attr"`
				IsSuccess bool   `xml:"IsSuccess,attr"`
			} `xml:"DomainDNSSetEmailForwardingResult"`
		} `xml:"CommandResponse"`
	}
	if err := s.apiCall(span, "namecheap.domains.dns.setEmailForwarding", params, &result); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	if err := result.providerError(); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	return &interfaces.DNSUpdateResult{
		Domain:  result.CommandResponse.DomainDNSSetEmailForwardingResult.Domain,
		Success: result.CommandResponse.DomainDNSSetEmailForwardingResult.IsSuccess,
	}, nil
}

// GetDomains lists the domains in the account.
func (s *namecheapService) GetDomains(ctx context.Context) ([]interfaces.DomainListEntry, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "NamecheapService.GetDomains")
	defer span.Finish()
	tracing.TagComponentService(span)

	var result struct {
		ResponseEnvelope
		CommandResponse struct {
			DomainGetListResult struct {
				Domain []struct {
					ID         string `xml:"ID,attr"`
					Name       string `xml:"Name,attr"`
					Created    string `xml:"Created,attr"`
					Expires    string `xml:"Expires,attr"`
					IsExpired  bool   `xml:"IsExpired,attr"`
					IsLocked   bool   `xml:"IsLocked,attr"`
					AutoRenew  bool   `xml:"AutoRenew,attr"`
					WhoisGuard string `xml:"WhoisGuard,attr"`
				} `xml:"Domain"`
			} `xml:"DomainGetListResult"`
		} `xml:"CommandResponse"`
	}
	if err := s.apiCall(span, "namecheap.domains.getList", url.Values{}, &result); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	if err := result.providerError(); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	domains := make([]interfaces.DomainListEntry, 0, len(result.CommandResponse.DomainGetListResult.Domain))
	for _, domain := range result.CommandResponse.DomainGetListResult.Domain {
		domains = append(domains, interfaces.DomainListEntry{
			ID:         domain.ID,
			Name:       domain.Name,
			Created:    domain.Created,
			Expires:    domain.Expires,
			IsExpired:  domain.IsExpired,
			IsLocked:   domain.IsLocked,
			AutoRenew:  domain.AutoRenew,
			WhoisGuard: domain.WhoisGuard,
		})
	}

	return domains, nil
}

// GetDomainInfo returns registration and DNS details for one domain.
func (s *namecheapService) GetDomainInfo(ctx context.Context, domain string) (*interfaces.DomainInfo, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "NamecheapService.GetDomainInfo")
	defer span.Finish()
	tracing.TagComponentService(span)
	span.LogKV("domain", domain)

	params := url.Values{}
	params.Add("DomainName", domain)

	var result struct {
		ResponseEnvelope
		CommandResponse struct {
			DomainGetInfoResult struct {
				DomainName    string `xml:"DomainName,attr"`
				OwnerName     string `xml:"OwnerName,attr"`
				IsOwner       bool   `xml:"IsOwner,attr"`
				DomainDetails struct {
					CreatedDate string `xml:"CreatedDate"`
					ExpiredDate string `xml:"ExpiredDate"`
				} `xml:"DomainDetails"`
				WhoisGuard struct {
					Enabled bool `xml:"Enabled,attr"`
				} `xml:"Whoisguard"`
				DnsDetails struct {
					IsUsingOurDNS bool     `xml:"IsUsingOurDNS,attr"`
					Nameservers   []string `xml:"Nameserver"`
				} `xml:"DnsDetails"`
			} `xml:"DomainGetInfoResult"`
		} `xml:"CommandResponse"`
	}
	if err := s.apiCall(span, "namecheap.domains.getInfo", params, &result); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	if err := result.providerError(); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	infoResult := result.CommandResponse.DomainGetInfoResult
	return &interfaces.DomainInfo{
		DomainName:    infoResult.DomainName,
		OwnerName:     infoResult.OwnerName,
		IsOwner:       infoResult.IsOwner,
		CreatedDate:   infoResult.DomainDetails.CreatedDate,
		ExpiredDate:   infoResult.DomainDetails.ExpiredDate,
		WhoisGuard:    infoResult.WhoisGuard.Enabled,
		IsUsingOurDNS: infoResult.DnsDetails.IsUsingOurDNS,
		Nameservers:   infoResult.DnsDetails.Nameservers,
	}, nil
}

// CheckDomainsAvailability checks one or more domains in a single
// namecheap.domains.check call; the command is natively list-valued.
func (s *namecheapService) CheckDomainsAvailability(ctx context.Context, domains []string) ([]interfaces.DomainCheckResult, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "NamecheapService.CheckDomainsAvailability")
	defer span.Finish()
	tracing.TagComponentService(span)
	span.LogKV("domains", strings.Join(domains, ","))

	if len(domains) == 0 {
		err := er.InvalidParam("domains", "at least one domain is required")
		tracing.TraceErr(span, err)
		return nil, err
	}

	params := url.Values{}
	params.Add("DomainList", strings.Join(domains, ","))

	var result struct {
		ResponseEnvelope
		CommandResponse struct {
			DomainCheckResult []struct {
				Domain        string `xml:"Domain,attr"`
				Available     bool   `xml:"Available,attr"`
				IsPremiumName bool   `xml:"IsPremiumName,attr"`
			} `xml:"DomainCheckResult"`
		} `xml:"CommandResponse"`
	}
	if err := s.apiCall(span, "namecheap.domains.check", params, &result); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	if err := result.providerError(); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	results := make([]interfaces.DomainCheckResult, 0, len(result.CommandResponse.DomainCheckResult))
	for _, check := range result.CommandResponse.DomainCheckResult {
		results = append(results, interfaces.DomainCheckResult{
			Domain:        check.Domain,
			Available:     check.Available,
			IsPremiumName: check.IsPremiumName,
		})
	}

	return results, nil
}
