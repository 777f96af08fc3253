package fetch

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"strings"
)

// ErrBlockedTarget marks a URL the guard refused to fetch. The fetcher treats
// it as a silent no-op: no attempt row, no snapshot, no extract task.
type ErrBlockedTarget struct {
	URL    string
	Reason string
}

func (e *ErrBlockedTarget) Error() string {
	return fmt.Sprintf("blocked target %s: %s", e.URL, e.Reason)
}

// reservedV4 covers IPv4 ranges the stdlib predicates miss.
var reservedV4 = []netip.Prefix{
	netip.MustParsePrefix("0.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.0.2.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
	netip.MustParsePrefix("198.51.100.0/24"),
	netip.MustParsePrefix("203.0.113.0/24"),
	netip.MustParsePrefix("240.0.0.0/4"),
}

var reservedV6 = []netip.Prefix{
	netip.MustParsePrefix("2001:db8::/32"),
	netip.MustParsePrefix("::/96"),
}

// Guard rejects URLs that could reach internal infrastructure.
type Guard struct {
	// lookup is swappable in tests; defaults to the system resolver.
	lookup func(ctx context.Context, host string) ([]netip.Addr, error)
}

// NewGuard creates a guard backed by the system resolver.
func NewGuard() *Guard {
	return &Guard{lookup: defaultLookup}
}

func defaultLookup(ctx context.Context, host string) ([]netip.Addr, error) {
	addrs, err := net.DefaultResolver.LookupNetIP(ctx, "ip", host)
	if err != nil {
		return nil, err
	}
	return addrs, nil
}

// Check validates rawURL: http(s) scheme only, no localhost or .local hosts,
// and no DNS answer inside a private, loopback, link-local, multicast,
// reserved or unspecified range (IPv4 and IPv6).
func (g *Guard) Check(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return &ErrBlockedTarget{URL: rawURL, Reason: "unparseable URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ErrBlockedTarget{URL: rawURL, Reason: "scheme not http(s)"}
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return &ErrBlockedTarget{URL: rawURL, Reason: "empty host"}
	}
	if host == "localhost" || strings.HasSuffix(host, ".localhost") || strings.HasSuffix(host, ".local") {
		return &ErrBlockedTarget{URL: rawURL, Reason: "forbidden hostname"}
	}

	// Literal IPs skip resolution.
	if addr, err := netip.ParseAddr(strings.Trim(host, "[]")); err == nil {
		if reason := forbiddenAddr(addr); reason != "" {
			return &ErrBlockedTarget{URL: rawURL, Reason: reason}
		}
		return nil
	}

	addrs, err := g.lookup(ctx, host)
	if err != nil {
		return classified(ClassDNS, err)
	}
	if len(addrs) == 0 {
		return classified(ClassDNS, fmt.Errorf("no address for %s", host))
	}
	for _, addr := range addrs {
		if reason := forbiddenAddr(addr); reason != "" {
			return &ErrBlockedTarget{URL: rawURL, Reason: reason}
		}
	}
	return nil
}

func forbiddenAddr(addr netip.Addr) string {
	addr = addr.Unmap()
	switch {
	case addr.IsUnspecified():
		return "unspecified address"
	case addr.IsLoopback():
		return "loopback address"
	case addr.IsPrivate():
		return "private address"
	case addr.IsLinkLocalUnicast(), addr.IsLinkLocalMulticast():
		return "link-local address"
	case addr.IsMulticast():
		return "multicast address"
	}
	ranges := reservedV6
	if addr.Is4() {
		ranges = reservedV4
	}
	for _, p := range ranges {
		if p.Contains(addr) {
			return "reserved address"
		}
	}
	return ""
}
