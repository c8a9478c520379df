package geolib

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// DefaultRemoteIPHeader is a header the filter reads an address
// candidate from unless configured otherwise.
const DefaultRemoteIPHeader = "X-Forwarded-For"

var attributeHeaders = map[string]string{
	AttrCountry:          "X-Country",
	AttrState:            "X-State",
	AttrCity:             "X-City",
	AttrPostal:           "X-Postal",
	AttrLatitude:         "X-Latitude",
	AttrLongitude:        "X-Longitude",
	AttrLocationAccuracy: "X-Location-Accuracy",
	AttrUserType:         "X-User-Type",
	AttrConnectionType:   "X-Connection-Type",
	AttrISP:              "X-Isp",
	AttrProxyLegal:       "X-Proxy-Legal",
	AttrAnonymousIP:      "X-Anonymous-Ip",
	AttrAnonymousVPN:     "X-Anonymous-Vpn",
	AttrTorExitNode:      "X-Tor-Exit-Node",
}

var enrichmentHeaders = []string{
	"X-Country",
	"X-State",
	"X-City",
	"X-Postal",
	"X-Latitude",
	"X-Longitude",
	"X-Location-Accuracy",
	"X-User-Type",
	"X-Connection-Type",
	"X-Isp",
	"X-Proxy-Legal",
	"X-Anonymous-Ip",
	"X-Anonymous-Vpn",
	"X-Tor-Exit-Node",
}

// EnrichmentHeaders returns the full vocabulary of headers the filter
// may set on a request.
func EnrichmentHeaders() []string {
	rv := make([]string, len(enrichmentHeaders))
	copy(rv, enrichmentHeaders)

	return rv
}

type FilterOpts struct {
	Resolver       Resolver
	Mode           LookupMode
	RemoteIPHeader string
	Logger         Logger
	Metrics        Metrics
}

// Filter is the orchestrating entry point: it extracts an address
// candidate from a configured header, resolves it according to the
// configured mode and writes the mapped attributes back onto the
// request. It keeps no per-request state and is safe for concurrent
// use.
type Filter struct {
	resolver Resolver
	mode     LookupMode
	header   string
	logger   Logger
	metrics  Metrics
}

func NewFilter(opts FilterOpts) (*Filter, error) {
	if opts.Resolver == nil {
		return nil, errors.New("resolver is required")
	}

	if !opts.Mode.Valid() {
		return nil, fmt.Errorf("unsupported lookup mode: %s", opts.Mode)
	}

	header := opts.RemoteIPHeader
	if header == "" {
		header = DefaultRemoteIPHeader
	}

	logger := opts.Logger
	if logger == nil {
		logger = NoopLogger{}
	}

	metrics := opts.Metrics
	if metrics == nil {
		metrics = NopMetrics{}
	}

	return &Filter{
		resolver: opts.Resolver,
		mode:     opts.Mode,
		header:   header,
		logger:   logger,
		metrics:  metrics,
	}, nil
}

// Attributes resolves an address and maps the result. It is the same
// path the middleware takes, exposed for non-HTTP callers.
func (f *Filter) Attributes(ip net.IP) (AttributeSet, error) {
	res, err := f.resolver.Resolve(ip, f.mode)
	if err != nil {
		return AttributeSet{}, err
	}

	return MapResolution(res, f.mode), nil
}

// Middleware wraps a handler with request enrichment. Whatever happens
// during enrichment, the request proceeds: a missing candidate, an
// unparsable address or a failed lookup only mean the downstream
// handler sees no enrichment headers.
func (f *Filter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		f.enrich(req)
		next.ServeHTTP(w, req)
	})
}

func (f *Filter) enrich(req *http.Request) {
	candidate := strings.TrimSpace(req.Header.Get(f.header))
	if candidate == "" {
		return
	}

	ip := net.ParseIP(candidate)
	if ip == nil {
		f.metrics.CandidateDiscarded()
		f.logger.ParseError(candidate, ErrInvalidIP)

		return
	}

	attrs, err := f.Attributes(ip)
	if err != nil {
		f.metrics.LookupFailed(f.mode)
		f.logger.LookupError(ip, err)

		return
	}

	f.metrics.LookupOK(f.mode)

	for _, attr := range attrs.All() {
		req.Header.Set(attributeHeaders[attr.Name], attr.Value)
	}
}
