package namecheap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prafulfillment/namecheap-mcp/config"
	"github.com/prafulfillment/namecheap-mcp/interfaces"
	"github.com/prafulfillment/namecheap-mcp/internal/enum"
	er "github.com/prafulfillment/namecheap-mcp/internal/errors"
	"github.com/prafulfillment/namecheap-mcp/internal/logger"
)

func testLogger() logger.Logger {
	appLogger := logger.NewAppLogger(&logger.Config{
		DevMode:  true,
		LogLevel: "error",
	})
	appLogger.InitLogger()
	return appLogger
}

func newTestService(t *testing.T, handler http.HandlerFunc) interfaces.NamecheapService {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.NamecheapConfig{
		ApiKey:         "test-key",
		ApiUser:        "test-user",
		ApiClientIp:    "127.0.0.1",
		Url:            srv.URL,
		TimeoutSeconds: 5,
	}
	return NewNamecheapService(cfg, testLogger())
}

func captureForm(t *testing.T, captured *url.Values, response string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		*captured = r.PostForm
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(response))
	}
}

func TestGetDNSList_PreservesServerOrder(t *testing.T) {
	response := `<?xml version="1.0" encoding="utf-8"?>
<ApiResponse Status="OK" xmlns="http://api.namecheap.com/xml.response">
  <CommandResponse Type="namecheap.domains.dns.getList">
    <DomainDNSGetListResult Domain="example.com" IsUsingOurDNS="false">
      <Nameserver>dns1.x.com</Nameserver>
      <Nameserver>dns2.x.com</Nameserver>
    </DomainDNSGetListResult>
  </CommandResponse>
</ApiResponse>`

	var form url.Values
	service := newTestService(t, captureForm(t, &form, response))

	result, err := service.GetDNSList(context.Background(), "example.com", "")
	require.NoError(t, err)

	assert.Equal(t, "example.com", result.Domain)
	assert.False(t, result.IsUsingOurDNS)
	assert.Equal(t, []string{"dns1.x.com", "dns2.x.com"}, result.Nameservers)

	assert.Equal(t, "namecheap.domains.dns.getList", form.Get("Command"))
	assert.Equal(t, "example", form.Get("SLD"))
	assert.Equal(t, "com", form.Get("TLD"))
	assert.Equal(t, "test-key", form.Get("ApiKey"))
	assert.Equal(t, "test-user", form.Get("ApiUser"))
	assert.Equal(t, "test-user", form.Get("UserName"))
	assert.Equal(t, "127.0.0.1", form.Get("ClientIp"))
}

func TestGetDNSList_MultiLabelTLD(t *testing.T) {
	response := `<ApiResponse Status="OK"><CommandResponse>
		<DomainDNSGetListResult Domain="example.co.uk" IsUsingOurDNS="true"/>
	</CommandResponse></ApiResponse>`

	var form url.Values
	service := newTestService(t, captureForm(t, &form, response))

	result, err := service.GetDNSList(context.Background(), "example.co.uk", "")
	require.NoError(t, err)

	assert.True(t, result.IsUsingOurDNS)
	assert.Equal(t, "example", form.Get("SLD"))
	assert.Equal(t, "co.uk", form.Get("TLD"))
}

func TestSetHosts_IndexedParamsPreserveOrder(t *testing.T) {
	response := `<ApiResponse Status="OK"><CommandResponse>
		<DomainDNSSetHostsResult Domain="example.com" IsSuccess="true"/>
	</CommandResponse></ApiResponse>`

	var form url.Values
	service := newTestService(t, captureForm(t, &form, response))

	records := []interfaces.HostRecord{
		{HostName: "@", RecordType: enum.RecordTypeA, Address: "10.0.0.1", TTL: 1800},
		{HostName: "www", RecordType: enum.RecordTypeCNAME, Address: "example.com."},
		{HostName: "@", RecordType: enum.RecordTypeMX, Address: "mail.example.com", MXPref: 10, TTL: 300},
	}

	result, err := service.SetHosts(context.Background(), "example.com", "", records)
	require.NoError(t, err)
	assert.True(t, result.Success)

	assert.Equal(t, "@", form.Get("HostName1"))
	assert.Equal(t, "A", form.Get("RecordType1"))
	assert.Equal(t, "10.0.0.1", form.Get("Address1"))
	assert.Equal(t, "1800", form.Get("TTL1"))

	assert.Equal(t, "www", form.Get("HostName2"))
	assert.Equal(t, "CNAME", form.Get("RecordType2"))
	assert.Equal(t, "example.com.", form.Get("Address2"))

	assert.Equal(t, "@", form.Get("HostName3"))
	assert.Equal(t, "MX", form.Get("RecordType3"))
	assert.Equal(t, "mail.example.com", form.Get("Address3"))
	assert.Equal(t, "10", form.Get("MXPref3"))
	assert.Equal(t, "300", form.Get("TTL3"))

	// Unset optional fields are absent, not empty
	_, hasTTL2 := form["TTL2"]
	assert.False(t, hasTTL2)
	_, hasMXPref1 := form["MXPref1"]
	assert.False(t, hasMXPref1)

	// MX record present turns on MX email routing
	assert.Equal(t, "MX", form.Get("EmailType"))
}

func TestSetHosts_NoEmailTypeWithoutMX(t *testing.T) {
	response := `<ApiResponse Status="OK"><CommandResponse>
		<DomainDNSSetHostsResult Domain="example.com" IsSuccess="true"/>
	</CommandResponse></ApiResponse>`

	var form url.Values
	service := newTestService(t, captureForm(t, &form, response))

	_, err := service.SetHosts(context.Background(), "example.com", "", []interfaces.HostRecord{
		{HostName: "@", RecordType: enum.RecordTypeA, Address: "10.0.0.1"},
	})
	require.NoError(t, err)

	_, hasEmailType := form["EmailType"]
	assert.False(t, hasEmailType)
}

func TestSetHosts_RejectsEmptyAndInvalidRecords(t *testing.T) {
	called := false
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := service.SetHosts(context.Background(), "example.com", "", nil)
	var paramErr *er.ParamError
	require.ErrorAs(t, err, &paramErr)
	assert.Equal(t, "records", paramErr.Name)

	_, err = service.SetHosts(context.Background(), "example.com", "", []interfaces.HostRecord{
		{HostName: "@", RecordType: "NAPTR", Address: "x"},
	})
	require.ErrorAs(t, err, &paramErr)

	assert.False(t, called, "invalid input must not reach the provider")
}

func TestAddHosts_PrependsToExistingRecords(t *testing.T) {
	getHostsResponse := `<ApiResponse Status="OK"><CommandResponse>
		<DomainDNSGetHostsResult Domain="example.com" IsUsingOurDNS="true">
			<host HostId="12" Name="@" Type="A" Address="10.0.0.1" MXPref="10" TTL="1800"/>
		</DomainDNSGetHostsResult>
	</CommandResponse></ApiResponse>`
	setHostsResponse := `<ApiResponse Status="OK"><CommandResponse>
		<DomainDNSSetHostsResult Domain="example.com" IsSuccess="true"/>
	</CommandResponse></ApiResponse>`

	var setForm url.Values
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/xml")
		switch r.PostForm.Get("Command") {
		case "namecheap.domains.dns.getHosts":
			w.Write([]byte(getHostsResponse))
		case "namecheap.domains.dns.setHosts":
			setForm = r.PostForm
			w.Write([]byte(setHostsResponse))
		default:
			t.Errorf("unexpected command %q", r.PostForm.Get("Command"))
		}
	})

	result, err := service.AddHosts(context.Background(), "example.com", "", []interfaces.HostRecord{
		{HostName: "www", RecordType: enum.RecordTypeCNAME, Address: "example.com."},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)

	// New record first, existing records preserved after it
	assert.Equal(t, "www", setForm.Get("HostName1"))
	assert.Equal(t, "CNAME", setForm.Get("RecordType1"))
	assert.Equal(t, "@", setForm.Get("HostName2"))
	assert.Equal(t, "A", setForm.Get("RecordType2"))
	assert.Equal(t, "1800", setForm.Get("TTL2"))
}

func TestGetHosts_ParsesRecords(t *testing.T) {
	response := `<ApiResponse Status="OK"><CommandResponse>
		<DomainDNSGetHostsResult Domain="example.com" IsUsingOurDNS="true">
			<host HostId="12" Name="@" Type="A" Address="10.0.0.1" MXPref="10" TTL="1800"/>
			<host HostId="14" Name="mail" Type="MX" Address="mx.example.com" MXPref="20" TTL="300"/>
		</DomainDNSGetHostsResult>
	</CommandResponse></ApiResponse>`

	service := newTestService(t, captureForm(t, new(url.Values), response))

	result, err := service.GetHosts(context.Background(), "example.com", "")
	require.NoError(t, err)

	require.Len(t, result.Hosts, 2)
	assert.Equal(t, interfaces.HostRecord{
		HostId:     "12",
		HostName:   "@",
		RecordType: enum.RecordTypeA,
		Address:    "10.0.0.1",
		MXPref:     10,
		TTL:        1800,
	}, result.Hosts[0])
	assert.Equal(t, "mail", result.Hosts[1].HostName)
	assert.Equal(t, enum.RecordTypeMX, result.Hosts[1].RecordType)
}

func TestSetCustomDNS_JoinsNameserversInOrder(t *testing.T) {
	response := `<ApiResponse Status="OK"><CommandResponse>
		<DomainDNSSetCustomResult Domain="example.com" Updated="true"/>
	</CommandResponse></ApiResponse>`

	var form url.Values
	service := newTestService(t, captureForm(t, &form, response))

	result, err := service.SetCustomDNS(context.Background(), "example.com", "", []string{"dns1.x.com", "dns2.x.com"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "dns1.x.com,dns2.x.com", form.Get("Nameservers"))
}

func TestSetCustomDNS_RejectsTooManyNameservers(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid input must not reach the provider")
	})

	nameservers := make([]string, 13)
	for i := range nameservers {
		nameservers[i] = "ns.example.com"
	}

	_, err := service.SetCustomDNS(context.Background(), "example.com", "", nameservers)
	var paramErr *er.ParamError
	require.ErrorAs(t, err, &paramErr)
	assert.Equal(t, "name_servers", paramErr.Name)
}

func TestSetEmailForwarding_IndexedParams(t *testing.T) {
	response := `<ApiResponse Status="OK"><CommandResponse>
		<DomainDNSSetEmailForwardingResult Domain="example.com" IsSuccess="true"/>
	</CommandResponse></ApiResponse>`

	var form url.Values
	service := newTestService(t, captureForm(t, &form, response))

	result, err := service.SetEmailForwarding(context.Background(), "example.com", []interfaces.EmailForward{
		{Mailbox: "info", ForwardTo: "inbox@gmail.com"},
		{Mailbox: "sales", ForwardTo: "crm@gmail.com"},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)

	// setEmailForwarding takes the whole domain name, not SLD/TLD
	assert.Equal(t, "example.com", form.Get("DomainName"))
	_, hasSLD := form["SLD"]
	assert.False(t, hasSLD)

	assert.Equal(t, "info", form.Get("MailBox1"))
	assert.Equal(t, "inbox@gmail.com", form.Get("ForwardTo1"))
	assert.Equal(t, "sales", form.Get("MailBox2"))
	assert.Equal(t, "crm@gmail.com", form.Get("ForwardTo2"))
}

func TestGetEmailForwarding_ParsesEntries(t *testing.T) {
	response := `<ApiResponse Status="OK"><CommandResponse>
		<DomainDNSGetEmailForwardingResult Domain="example.com">
			<forward MailBox="info" ForwardTo="inbox@gmail.com"/>
			<forward MailBox="sales" ForwardTo="crm@gmail.com"/>
		</DomainDNSGetEmailForwardingResult>
	</CommandResponse></ApiResponse>`

	service := newTestService(t, captureForm(t, new(url.Values), response))

	result, err := service.GetEmailForwarding(context.Background(), "example.com")
	require.NoError(t, err)

	assert.Equal(t, []interfaces.EmailForward{
		{Mailbox: "info", ForwardTo: "inbox@gmail.com"},
		{Mailbox: "sales", ForwardTo: "crm@gmail.com"},
	}, result.Forwards)
}

func TestSetDefaultDNS(t *testing.T) {
	response := `<ApiResponse Status="OK"><CommandResponse>
		<DomainDNSSetDefaultResult Domain="example.com" Updated="true"/>
	</CommandResponse></ApiResponse>`

	var form url.Values
	service := newTestService(t, captureForm(t, &form, response))

	result, err := service.SetDefaultDNS(context.Background(), "example.com", "")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "namecheap.domains.dns.setDefault", form.Get("Command"))
}

func TestGetDomains(t *testing.T) {
	response := `<ApiResponse Status="OK"><CommandResponse>
		<DomainGetListResult>
			<Domain ID="127" Name="example.com" Created="02/15/2023" Expires="02/15/2027"
				IsExpired="false" IsLocked="false" AutoRenew="true" WhoisGuard="ENABLED"/>
		</DomainGetListResult>
	</CommandResponse></ApiResponse>`

	service := newTestService(t, captureForm(t, new(url.Values), response))

	domains, err := service.GetDomains(context.Background())
	require.NoError(t, err)

	require.Len(t, domains, 1)
	assert.Equal(t, "example.com", domains[0].Name)
	assert.True(t, domains[0].AutoRenew)
	assert.Equal(t, "ENABLED", domains[0].WhoisGuard)
}

func TestGetDomainInfo(t *testing.T) {
	response := `<ApiResponse Status="OK"><CommandResponse>
		<DomainGetInfoResult DomainName="example.com" OwnerName="owner" IsOwner="true">
			<DomainDetails>
				<CreatedDate>02/15/2023</CreatedDate>
				<ExpiredDate>02/15/2027</ExpiredDate>
			</DomainDetails>
			<Whoisguard Enabled="true"/>
			<DnsDetails IsUsingOurDNS="true">
				<Nameserver>dns1.registrar-servers.com</Nameserver>
				<Nameserver>dns2.registrar-servers.com</Nameserver>
			</DnsDetails>
		</DomainGetInfoResult>
	</CommandResponse></ApiResponse>`

	service := newTestService(t, captureForm(t, new(url.Values), response))

	info, err := service.GetDomainInfo(context.Background(), "example.com")
	require.NoError(t, err)

	assert.Equal(t, "example.com", info.DomainName)
	assert.True(t, info.IsOwner)
	assert.True(t, info.WhoisGuard)
	assert.Equal(t, "02/15/2027", info.ExpiredDate)
	assert.Equal(t, []string{"dns1.registrar-servers.com", "dns2.registrar-servers.com"}, info.Nameservers)
}

func TestCheckDomainsAvailability(t *testing.T) {
	response := `<ApiResponse Status="OK"><CommandResponse>
		<DomainCheckResult Domain="example.com" Available="false" IsPremiumName="false"/>
		<DomainCheckResult Domain="example.io" Available="true" IsPremiumName="true"/>
	</CommandResponse></ApiResponse>`

	var form url.Values
	service := newTestService(t, captureForm(t, &form, response))

	results, err := service.CheckDomainsAvailability(context.Background(), []string{"example.com", "example.io"})
	require.NoError(t, err)

	assert.Equal(t, "example.com,example.io", form.Get("DomainList"))
	require.Len(t, results, 2)
	assert.False(t, results[0].Available)
	assert.True(t, results[1].Available)
	assert.True(t, results[1].IsPremiumName)
}

func TestProviderError_CarriesCodeVerbatim(t *testing.T) {
	response := `<?xml version="1.0" encoding="utf-8"?>
<ApiResponse Status="ERROR" xmlns="http://api.namecheap.com/xml.response">
  <Errors>
    <Error Number="1011150">Parameter RequestIP is invalid</Error>
  </Errors>
</ApiResponse>`

	service := newTestService(t, captureForm(t, new(url.Values), response))

	_, err := service.GetDNSList(context.Background(), "example.com", "")
	var providerErr *er.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "1011150", providerErr.Code)
	assert.Equal(t, "Parameter RequestIP is invalid", providerErr.Message)
}

func TestTransportError_UnreachableProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	cfg := &config.NamecheapConfig{
		ApiKey:         "test-key",
		ApiUser:        "test-user",
		ApiClientIp:    "127.0.0.1",
		Url:            srv.URL,
		TimeoutSeconds: 1,
	}
	service := NewNamecheapService(cfg, testLogger())

	_, err := service.GetDNSList(context.Background(), "example.com", "")
	var transportErr *er.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestTransportError_MalformedXML(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not xml"))
	})

	_, err := service.GetDNSList(context.Background(), "example.com", "")
	var transportErr *er.TransportError
	require.ErrorAs(t, err, &transportErr)

	var providerErr *er.ProviderError
	assert.False(t, errors.As(err, &providerErr), "a parse failure is a transport failure, not a provider rejection")
}
