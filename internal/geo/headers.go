package geo

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pawsyears/internal/prompts"
)

// Geolocation headers set by the hosting edge network.
const (
	HeaderLatitude  = "X-Vercel-IP-Latitude"
	HeaderLongitude = "X-Vercel-IP-Longitude"
	HeaderCity      = "X-Vercel-IP-City"
	HeaderCountry   = "X-Vercel-IP-Country"
)

// FromHeader extracts request hints from the edge geolocation headers.
// A missing header leaves the matching field nil. The city header is
// percent-encoded by the edge; values that fail to decode are kept raw.
func FromHeader(h http.Header) prompts.RequestHints {
	return prompts.RequestHints{
		Latitude:  lookup(h, HeaderLatitude),
		Longitude: lookup(h, HeaderLongitude),
		City:      decoded(lookup(h, HeaderCity)),
		Country:   lookup(h, HeaderCountry),
	}
}

func lookup(h http.Header, key string) *string {
	values := h.Values(key)
	if len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

func decoded(v *string) *string {
	if v == nil {
		return nil
	}
	s, err := url.PathUnescape(*v)
	if err != nil {
		return v
	}
	return &s
}

// ParseHeaderLines builds a header set from "Name: value" lines, as passed
// on the command line.
func ParseHeaderLines(lines []string) (http.Header, error) {
	h := http.Header{}
	for _, line := range lines {
		name, value, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid header %q: expected \"Name: value\"", line)
		}
		h.Add(name, strings.TrimSpace(value))
	}
	return h, nil
}
