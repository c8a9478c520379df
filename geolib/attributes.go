package geolib

import "strconv"

// Attribute names produced by the mapping stage.
const (
	AttrCountry          = "country"
	AttrState            = "state"
	AttrCity             = "city"
	AttrPostal           = "postal"
	AttrLatitude         = "latitude"
	AttrLongitude        = "longitude"
	AttrLocationAccuracy = "location_accuracy"
	AttrUserType         = "user_type"
	AttrConnectionType   = "connection_type"
	AttrISP              = "isp"
	AttrProxyLegal       = "proxy_legal"
	AttrAnonymousIP      = "anonymous_ip"
	AttrAnonymousVPN     = "anonymous_vpn"
	AttrTorExitNode      = "tor_exit_node"
)

type Attribute struct {
	Name  string
	Value string
}

// AttributeSet is an ordered name/value mapping produced per request.
// Set overwrites an existing value in place, keeping the original
// position.
type AttributeSet struct {
	attrs []Attribute
	index map[string]int
}

func (s *AttributeSet) Set(name, value string) {
	if s.index == nil {
		s.index = map[string]int{}
	}

	if pos, ok := s.index[name]; ok {
		s.attrs[pos].Value = value

		return
	}

	s.index[name] = len(s.attrs)
	s.attrs = append(s.attrs, Attribute{Name: name, Value: value})
}

func (s *AttributeSet) Get(name string) (string, bool) {
	pos, ok := s.index[name]
	if !ok {
		return "", false
	}

	return s.attrs[pos].Value, true
}

func (s *AttributeSet) Len() int {
	return len(s.attrs)
}

// All returns attributes in insertion order. The returned slice is
// owned by the set, do not mutate it.
func (s *AttributeSet) All() []Attribute {
	return s.attrs
}

// Mappers below emit an attribute only for a present and non-empty
// source field. A present-but-empty string counts as absent.

func MapCountry(country *Country, attrs *AttributeSet) {
	if name := country.Name(); name != "" {
		attrs.Set(AttrCountry, name)
	}
}

func MapSubdivision(subdivision *Subdivision, attrs *AttributeSet) {
	if name := subdivision.Name(); name != "" {
		attrs.Set(AttrState, name)
	}
}

func MapCity(city *City, attrs *AttributeSet) {
	if name := city.Name(); name != "" {
		attrs.Set(AttrCity, name)
	}
}

func MapPostal(postal *Postal, attrs *AttributeSet) {
	if postal == nil {
		return
	}

	if postal.Code != "" {
		attrs.Set(AttrPostal, postal.Code)
	}
}

func MapLocation(location *Location, attrs *AttributeSet) {
	if location == nil {
		return
	}

	if location.Latitude != nil {
		attrs.Set(AttrLatitude, formatFloat(*location.Latitude))
	}

	if location.Longitude != nil {
		attrs.Set(AttrLongitude, formatFloat(*location.Longitude))
	}

	if location.AccuracyRadius != nil {
		attrs.Set(AttrLocationAccuracy, strconv.FormatUint(uint64(*location.AccuracyRadius), 10))
	}
}

// MapTraits emits proxy_legal unconditionally when the traits
// sub-record is present. The rest of the traits attributes follow the
// usual emptiness policy.
func MapTraits(traits *Traits, attrs *AttributeSet) {
	if traits == nil {
		return
	}

	if traits.UserType != "" {
		attrs.Set(AttrUserType, traits.UserType)
	}

	if traits.ConnectionType != "" {
		attrs.Set(AttrConnectionType, traits.ConnectionType)
	}

	if traits.ISP != "" {
		attrs.Set(AttrISP, traits.ISP)
	}

	attrs.Set(AttrProxyLegal, strconv.FormatBool(traits.IsLegitimateProxy))
}

// MapAnonymity always emits all three flags, false values included.
func MapAnonymity(anon *AnonymityResult, attrs *AttributeSet) {
	if anon == nil {
		return
	}

	attrs.Set(AttrAnonymousIP, strconv.FormatBool(anon.IsAnonymous))
	attrs.Set(AttrAnonymousVPN, strconv.FormatBool(anon.IsAnonymousVPN))
	attrs.Set(AttrTorExitNode, strconv.FormatBool(anon.IsTorExitNode))
}

// MapResolution flattens a resolution into the attribute subset the
// given mode is allowed to produce. A city-mode result never yields
// postal or traits attributes even if the database returned them.
func MapResolution(res Resolution, mode LookupMode) AttributeSet {
	attrs := AttributeSet{}

	switch mode {
	case ModeCountry:
		if res.Geo != nil {
			MapCountry(res.Geo.Country, &attrs)
		}
	case ModeCity:
		if res.Geo != nil {
			MapCountry(res.Geo.Country, &attrs)
			MapSubdivision(res.Geo.MostSpecificSubdivision(), &attrs)
			MapCity(res.Geo.City, &attrs)
		}
	case ModeAnonymous:
		MapAnonymity(res.Anon, &attrs)
	case ModeEnterprise:
		if res.Geo != nil {
			MapCountry(res.Geo.Country, &attrs)
			MapSubdivision(res.Geo.MostSpecificSubdivision(), &attrs)
			MapCity(res.Geo.City, &attrs)
			MapPostal(res.Geo.Postal, &attrs)
			MapLocation(res.Geo.Location, &attrs)
			MapTraits(res.Geo.Traits, &attrs)
		}

		MapAnonymity(res.Anon, &attrs)
	}

	return attrs
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
