package registry

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/prafulfillment/namecheap-mcp/interfaces"
	er "github.com/prafulfillment/namecheap-mcp/internal/errors"
	"github.com/prafulfillment/namecheap-mcp/internal/logger"
	"github.com/prafulfillment/namecheap-mcp/internal/tracing"
)

type handlerFunc func(ctx context.Context, params map[string]any) (any, error)

type function struct {
	descriptor interfaces.FunctionDescriptor
	handler    handlerFunc
}

// registryService maps function names to parameter schemas and adapter
// methods. The function set is fixed at construction; no state is retained
// between calls.
type registryService struct {
	log       logger.Logger
	namecheap interfaces.NamecheapService
	functions []function
	index     map[string]int
}

func NewRegistryService(log logger.Logger, namecheapService interfaces.NamecheapService) interfaces.RegistryService {
	s := &registryService{
		log:       log,
		namecheap: namecheapService,
	}
	s.registerFunctions()
	return s
}

func (s *registryService) ListFunctions() []interfaces.FunctionDescriptor {
	descriptors := make([]interfaces.FunctionDescriptor, 0, len(s.functions))
	for _, fn := range s.functions {
		descriptors = append(descriptors, fn.descriptor)
	}
	return descriptors
}

func (s *registryService) Call(ctx context.Context, name string, params map[string]any) (any, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "RegistryService.Call")
	defer span.Finish()
	tracing.TagComponentRegistry(span)
	tracing.TagFunction(span, name)

	position, ok := s.index[name]
	if !ok {
		err := errors.Wrap(er.ErrUnknownFunction, name)
		tracing.TraceErr(span, err)
		return nil, err
	}
	fn := s.functions[position]

	if err := validateParams(fn.descriptor.Params, params); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	result, err := fn.handler(ctx, params)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	return result, nil
}

func (s *registryService) add(descriptor interfaces.FunctionDescriptor, handler handlerFunc) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[descriptor.Name] = len(s.functions)
	s.functions = append(s.functions, function{descriptor: descriptor, handler: handler})
}

var domainNameParam = interfaces.ParamSpec{
	Name:        "domain_name",
	Type:        interfaces.ParamTypeString,
	Required:    true,
	Description: "The domain name to operate on",
}

var tldOverrideParam = interfaces.ParamSpec{
	Name:        "tld",
	Type:        interfaces.ParamTypeString,
	Required:    false,
	Description: "Explicit TLD override; by default the first label is the SLD and the remainder is the TLD",
}

func (s *registryService) registerFunctions() {
	s.add(interfaces.FunctionDescriptor{
		Name:        "set_default_dns",
		Title:       "Set Default DNS",
		Description: "Sets domain to use Namecheap's default DNS servers",
		Params:      []interfaces.ParamSpec{domainNameParam, tldOverrideParam},
	}, func(ctx context.Context, params map[string]any) (any, error) {
		return s.namecheap.SetDefaultDNS(ctx, stringValue(params, "domain_name"), stringValue(params, "tld"))
	})

	s.add(interfaces.FunctionDescriptor{
		Name:        "set_custom_dns",
		Title:       "Set Custom DNS",
		Description: "Sets domain to use custom DNS servers",
		Params: []interfaces.ParamSpec{
			domainNameParam,
			{Name: "name_servers", Type: interfaces.ParamTypeStringList, Required: true, Description: "Ordered nameserver list, up to 12"},
			tldOverrideParam,
		},
	}, func(ctx context.Context, params map[string]any) (any, error) {
		nameservers, err := stringListValue("name_servers", params["name_servers"])
		if err != nil {
			return nil, err
		}
		return s.namecheap.SetCustomDNS(ctx, stringValue(params, "domain_name"), stringValue(params, "tld"), nameservers)
	})

	s.add(interfaces.FunctionDescriptor{
		Name:        "get_dns_list",
		Title:       "Get DNS List",
		Description: "Gets a list of DNS servers associated with the specified domain",
		Params:      []interfaces.ParamSpec{domainNameParam, tldOverrideParam},
	}, func(ctx context.Context, params map[string]any) (any, error) {
		return s.namecheap.GetDNSList(ctx, stringValue(params, "domain_name"), stringValue(params, "tld"))
	})

	s.add(interfaces.FunctionDescriptor{
		Name:        "get_hosts",
		Title:       "Get Hosts",
		Description: "Retrieves DNS host record settings for the specified domain",
		Params:      []interfaces.ParamSpec{domainNameParam, tldOverrideParam},
	}, func(ctx context.Context, params map[string]any) (any, error) {
		return s.namecheap.GetHosts(ctx, stringValue(params, "domain_name"), stringValue(params, "tld"))
	})

	s.add(interfaces.FunctionDescriptor{
		Name:        "set_hosts",
		Title:       "Set DNS Host Records",
		Description: "Replaces all DNS host records for the specified domain",
		Params: []interfaces.ParamSpec{
			domainNameParam,
			{Name: "records", Type: interfaces.ParamTypeHostRecords, Required: true, Description: "Full host record set; replaces existing records wholesale"},
			tldOverrideParam,
		},
	}, func(ctx context.Context, params map[string]any) (any, error) {
		var records []interfaces.HostRecord
		if err := decodeListValue("records", params["records"], &records); err != nil {
			return nil, err
		}
		return s.namecheap.SetHosts(ctx, stringValue(params, "domain_name"), stringValue(params, "tld"), records)
	})

	s.add(interfaces.FunctionDescriptor{
		Name:        "add_host",
		Title:       "Add DNS Host Record",
		Description: "Adds host records to the specified domain, keeping existing records",
		Params: []interfaces.ParamSpec{
			domainNameParam,
			{Name: "records", Type: interfaces.ParamTypeHostRecords, Required: true, Description: "Host records to add in front of the existing set"},
			tldOverrideParam,
		},
	}, func(ctx context.Context, params map[string]any) (any, error) {
		var records []interfaces.HostRecord
		if err := decodeListValue("records", params["records"], &records); err != nil {
			return nil, err
		}
		return s.namecheap.AddHosts(ctx, stringValue(params, "domain_name"), stringValue(params, "tld"), records)
	})

	s.add(interfaces.FunctionDescriptor{
		Name:        "get_email_forwarding",
		Title:       "Get Email Forwarding",
		Description: "Gets email forwarding settings for the specified domain",
		Params:      []interfaces.ParamSpec{domainNameParam},
	}, func(ctx context.Context, params map[string]any) (any, error) {
		return s.namecheap.GetEmailForwarding(ctx, stringValue(params, "domain_name"))
	})

	s.add(interfaces.FunctionDescriptor{
		Name:        "set_email_forwarding",
		Title:       "Set Email Forwarding",
		Description: "Replaces all email forwarding entries for the specified domain",
		Params: []interfaces.ParamSpec{
			domainNameParam,
			{Name: "forwards", Type: interfaces.ParamTypeEmailForwards, Required: true, Description: "Full forwarding entry set; replaces existing entries wholesale"},
		},
	}, func(ctx context.Context, params map[string]any) (any, error) {
		var forwards []interfaces.EmailForward
		if err := decodeListValue("forwards", params["forwards"], &forwards); err != nil {
			return nil, err
		}
		return s.namecheap.SetEmailForwarding(ctx, stringValue(params, "domain_name"), forwards)
	})

	s.add(interfaces.FunctionDescriptor{
		Name:        "get_domains",
		Title:       "Get Domains",
		Description: "Gets a list of domains in the user's account",
		Params:      []interfaces.ParamSpec{},
	}, func(ctx context.Context, params map[string]any) (any, error) {
		return s.namecheap.GetDomains(ctx)
	})

	s.add(interfaces.FunctionDescriptor{
		Name:        "get_domain_info",
		Title:       "Get Domain",
		Description: "Gets registration and DNS details for a domain in the user's account",
		Params:      []interfaces.ParamSpec{domainNameParam},
	}, func(ctx context.Context, params map[string]any) (any, error) {
		return s.namecheap.GetDomainInfo(ctx, stringValue(params, "domain_name"))
	})

	s.add(interfaces.FunctionDescriptor{
		Name:        "check_domains_availability",
		Title:       "Check Domains for Availability",
		Description: "Checks the availability of one or multiple domain names",
		Params: []interfaces.ParamSpec{
			{Name: "domains", Type: interfaces.ParamTypeStringList, Required: true, Description: "Domain names to check in one call"},
		},
	}, func(ctx context.Context, params map[string]any) (any, error) {
		domains, err := stringListValue("domains", params["domains"])
		if err != nil {
			return nil, err
		}
		return s.namecheap.CheckDomainsAvailability(ctx, domains)
	})
}
