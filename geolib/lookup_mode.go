package geolib

import "fmt"

// LookupMode is a class of geolocation query a filter performs. It is
// decided once when configuration is loaded and never re-parsed per
// request.
type LookupMode int

const (
	ModeCountry LookupMode = iota
	ModeCity
	ModeAnonymous
	ModeEnterprise
)

func (m LookupMode) String() string {
	switch m {
	case ModeCountry:
		return "country"
	case ModeCity:
		return "city"
	case ModeAnonymous:
		return "anonymous"
	case ModeEnterprise:
		return "enterprise"
	}

	return fmt.Sprintf("unknown(%d)", int(m))
}

func (m LookupMode) Valid() bool {
	switch m {
	case ModeCountry, ModeCity, ModeAnonymous, ModeEnterprise:
		return true
	}

	return false
}

// ParseLookupMode maps the configuration surface onto a mode. The
// enterprise flag wins over the type string: when it is set, the type
// is ignored.
func ParseLookupMode(value string, enterprise bool) (LookupMode, error) {
	if enterprise {
		return ModeEnterprise, nil
	}

	switch value {
	case "country":
		return ModeCountry, nil
	case "city":
		return ModeCity, nil
	case "anonymous":
		return ModeAnonymous, nil
	}

	return 0, fmt.Errorf("unsupported lookup type: %s", value)
}
