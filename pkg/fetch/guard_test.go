package fetch

import (
	"context"
	"errors"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardResolving(addrs ...string) *Guard {
	parsed := make([]netip.Addr, len(addrs))
	for i, a := range addrs {
		parsed[i] = netip.MustParseAddr(a)
	}
	return &Guard{lookup: func(context.Context, string) ([]netip.Addr, error) {
		return parsed, nil
	}}
}

func TestGuardBlocksLiteralAddresses(t *testing.T) {
	g := NewGuard()
	tests := []struct {
		name string
		url  string
	}{
		{"loopback v4", "http://127.0.0.1:8080/x"},
		{"loopback v6", "http://[::1]/x"},
		{"private 10", "http://10.0.0.5/x"},
		{"private 192.168", "https://192.168.1.1/admin"},
		{"private 172.16", "http://172.16.0.1/"},
		{"link local", "http://169.254.169.254/latest/meta-data"},
		{"unspecified", "http://0.0.0.0/"},
		{"multicast", "http://224.0.0.1/"},
		{"cgnat", "http://100.64.0.1/"},
		{"benchmark range", "http://198.18.0.1/"},
		{"class e", "http://240.0.0.1/"},
		{"doc range v6", "http://[2001:db8::1]/"},
		{"v4 mapped v6 loopback", "http://[::ffff:127.0.0.1]/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Check(context.Background(), tt.url)
			var blocked *ErrBlockedTarget
			require.ErrorAs(t, err, &blocked, "expected %s to be blocked", tt.url)
		})
	}
}

func TestGuardBlocksForbiddenSchemesAndHosts(t *testing.T) {
	g := NewGuard()
	tests := []struct {
		name string
		url  string
	}{
		{"file scheme", "file:///etc/passwd"},
		{"ftp scheme", "ftp://exemplo.gov.br/doc"},
		{"gopher scheme", "gopher://host/x"},
		{"localhost", "http://localhost:9000/"},
		{"localhost subdomain", "http://api.localhost/"},
		{"mdns local", "http://printer.local/"},
		{"empty host", "http:///path-only"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Check(context.Background(), tt.url)
			var blocked *ErrBlockedTarget
			require.ErrorAs(t, err, &blocked)
		})
	}
}

func TestGuardBlocksPrivateDNSAnswers(t *testing.T) {
	// A public hostname whose DNS answer includes one internal address is
	// rejected outright.
	g := guardResolving("93.184.216.34", "10.0.0.9")
	err := g.Check(context.Background(), "https://rebind.example.com/x")
	var blocked *ErrBlockedTarget
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, "private address", blocked.Reason)
}

func TestGuardAllowsPublicTargets(t *testing.T) {
	g := guardResolving("93.184.216.34")
	assert.NoError(t, g.Check(context.Background(), "https://exemplo.gov.br/noticias"))

	g6 := guardResolving("2600:1406:3a00::1")
	assert.NoError(t, g6.Check(context.Background(), "https://exemplo.gov.br/noticias"))
}

func TestGuardDNSFailureIsClassified(t *testing.T) {
	g := &Guard{lookup: func(context.Context, string) ([]netip.Addr, error) {
		return nil, errors.New("nxdomain")
	}}
	err := g.Check(context.Background(), "https://nao-existe.example.com/")
	assert.Equal(t, ClassDNS, Classify(err))
}
