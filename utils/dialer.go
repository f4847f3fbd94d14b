package utils

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/proxy"
)

// NewTransport returns the transport used for calls to the content API.
// When proxyAddr is set, connections go through that SOCKS5 proxy.
func NewTransport(proxyAddr string) (*http.Transport, error) {
	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		MaxIdleConnsPerHost: 8,
		IdleConnTimeout:     90 * time.Second,
	}
	if proxyAddr == "" {
		return transport, nil
	}

	socks, err := proxy.SOCKS5("tcp", proxyAddr, nil, dialer)
	if err != nil {
		return nil, fmt.Errorf("failed to set up SOCKS5 proxy %s: %w", proxyAddr, err)
	}
	if cd, ok := socks.(proxy.ContextDialer); ok {
		transport.DialContext = cd.DialContext
	} else {
		transport.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
			return socks.Dial(network, addr)
		}
	}
	return transport, nil
}
