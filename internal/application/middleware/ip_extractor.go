package middleware

import (
	"fmt"
	"net"

	"github.com/labstack/echo/v4"
)

// IPExtractor decides which address identifies a client. With no trusted proxies
// only the TCP peer counts, so forwarding headers sent by clients are ignored.
// Otherwise X-Forwarded-For is honoured for hops inside the given CIDR ranges.
func IPExtractor(trustedProxies []string) (echo.IPExtractor, error) {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trustedProxies {
		_, ipRange, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy range %q: %w", cidr, err)
		}
		options = append(options, echo.TrustIPRange(ipRange))
	}

	return echo.ExtractIPFromXFFHeader(options...), nil
}
