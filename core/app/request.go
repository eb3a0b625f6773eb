package app

import (
	"net"
	"net/http"
	"net/url"
	"strings"
)

// Request is the request view bound to one context. It reads from the raw
// transport request and interprets proxy-related application configuration
// (proxy trust, proxy header, subdomain offset).
type Request struct {
	ctx *Context
}

// Context returns the owning request context.
func (r *Request) Context() *Context {
	return r.ctx
}

// Response returns the response view of the same context.
func (r *Request) Response() *Response {
	return r.ctx.Response()
}

// Method returns the request method.
func (r *Request) Method() string {
	return r.ctx.r.Method
}

// Path returns the request path. Routing middleware may rewrite it via
// SetPath; OriginalURL keeps the value seen at context creation.
func (r *Request) Path() string {
	return r.ctx.r.URL.Path
}

// SetPath rewrites the request path for downstream middleware.
func (r *Request) SetPath(path string) {
	r.ctx.r.URL.Path = path
}

// URL returns the parsed request URL.
func (r *Request) URL() *url.URL {
	return r.ctx.r.URL
}

// OriginalURL returns the request URL captured at context creation.
func (r *Request) OriginalURL() string {
	return r.ctx.originalURL
}

// Query returns the parsed query values.
func (r *Request) Query() url.Values {
	return r.ctx.r.URL.Query()
}

// Proto returns the HTTP protocol version, e.g. "HTTP/1.1".
func (r *Request) Proto() string {
	return r.ctx.r.Proto
}

// Header returns the request header map.
func (r *Request) Header() http.Header {
	return r.ctx.r.Header
}

// Secure reports whether the request arrived over TLS. When proxy trust is
// enabled the X-Forwarded-Proto header is consulted first.
func (r *Request) Secure() bool {
	if r.ctx.app.proxy {
		if proto := r.ctx.r.Header.Get("X-Forwarded-Proto"); proto != "" {
			first, _, _ := strings.Cut(proto, ",")
			return strings.TrimSpace(first) == "https"
		}
	}
	return r.ctx.r.TLS != nil
}

// Host returns the request host (with port, when present). When proxy trust
// is enabled the first X-Forwarded-Host entry wins.
func (r *Request) Host() string {
	if r.ctx.app.proxy {
		if host := r.ctx.r.Header.Get("X-Forwarded-Host"); host != "" {
			first, _, _ := strings.Cut(host, ",")
			return strings.TrimSpace(first)
		}
	}
	return r.ctx.r.Host
}

// Hostname returns the host without the port.
func (r *Request) Hostname() string {
	host := r.Host()
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	// IPv6 literal without port keeps its brackets in Host
	return strings.Trim(host, "[]")
}

// IPs returns the client address chain from the configured proxy header,
// most distant client first. It returns nil unless proxy trust is enabled.
// Entries are validated and normalized; malformed entries are dropped. When
// a max-proxy-ip count is configured, only that many entries closest to the
// server are kept.
func (r *Request) IPs() []string {
	if !r.ctx.app.proxy {
		return nil
	}
	value := r.ctx.r.Header.Get(r.ctx.app.proxyHeader)
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	ips := make([]string, 0, len(parts))
	for _, part := range parts {
		if ip := net.ParseIP(strings.TrimSpace(part)); ip != nil {
			ips = append(ips, ip.String())
		}
	}
	if max := r.ctx.app.maxIPsCount; max > 0 && len(ips) > max {
		ips = ips[len(ips)-max:]
	}
	if len(ips) == 0 {
		return nil
	}
	return ips
}

// IP returns the client address: the first proxy-chain entry when proxy
// trust is enabled, otherwise the peer address of the connection.
func (r *Request) IP() string {
	if ips := r.IPs(); len(ips) > 0 {
		return ips[0]
	}
	if host, _, err := net.SplitHostPort(r.ctx.r.RemoteAddr); err == nil {
		return host
	}
	return r.ctx.r.RemoteAddr
}

// Subdomains returns the subdomains of the request host, ordered from the
// registrable domain outward. The subdomain offset controls how many
// trailing labels are ignored; the default of 2 drops "example.com" from
// "tobi.ferrets.example.com", yielding ["ferrets", "tobi"]. IP-address
// hosts have no subdomains.
func (r *Request) Subdomains() []string {
	host := r.Hostname()
	if host == "" || net.ParseIP(host) != nil {
		return nil
	}

	labels := strings.Split(host, ".")
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}

	offset := r.ctx.app.subdomainOffset
	if offset < 0 {
		offset = 0
	}
	if len(labels) <= offset {
		return nil
	}
	return labels[offset:]
}
