package geolib

type Names struct {
	En string `maxminddb:"en"`
}

// Country is a country sub-record of a lookup result.
type Country struct {
	Names Names `maxminddb:"names"`
}

func (c *Country) Name() string {
	if c == nil {
		return ""
	}

	return c.Names.En
}

// Subdivision is a single subdivision (state, region) sub-record.
type Subdivision struct {
	Names Names `maxminddb:"names"`
}

func (s *Subdivision) Name() string {
	if s == nil {
		return ""
	}

	return s.Names.En
}

// City is a city sub-record of a lookup result.
type City struct {
	Names Names `maxminddb:"names"`
}

func (c *City) Name() string {
	if c == nil {
		return ""
	}

	return c.Names.En
}

// Postal is a postal code sub-record.
type Postal struct {
	Code string `maxminddb:"code"`
}

// Location is a coordinates sub-record. Scalars are pointers because
// a zero latitude is a valid place on Earth: absence has to be
// distinguishable from 0.0.
type Location struct {
	Latitude       *float64 `maxminddb:"latitude"`
	Longitude      *float64 `maxminddb:"longitude"`
	AccuracyRadius *uint16  `maxminddb:"accuracy_radius"`
}

// Traits is a connection traits sub-record of an enterprise lookup.
type Traits struct {
	UserType          string `maxminddb:"user_type"`
	ConnectionType    string `maxminddb:"connection_type"`
	ISP               string `maxminddb:"isp"`
	IsLegitimateProxy bool   `maxminddb:"is_legitimate_proxy"`
}

// GeoResult is a sparse bag of sub-records decoded from the database.
// Every sub-record is independently optional; an absent one stays nil.
type GeoResult struct {
	Country      *Country      `maxminddb:"country"`
	Subdivisions []Subdivision `maxminddb:"subdivisions"`
	City         *City         `maxminddb:"city"`
	Postal       *Postal       `maxminddb:"postal"`
	Location     *Location     `maxminddb:"location"`
	Traits       *Traits       `maxminddb:"traits"`
}

// MostSpecificSubdivision returns the last element of the subdivisions
// array. MaxMind orders subdivisions from least to most specific.
func (g *GeoResult) MostSpecificSubdivision() *Subdivision {
	if g == nil || len(g.Subdivisions) == 0 {
		return nil
	}

	return &g.Subdivisions[len(g.Subdivisions)-1]
}

// AnonymityResult is an outcome of an anonymity lookup. Flags default
// to false when the database has no record for the address.
type AnonymityResult struct {
	IsAnonymous    bool `maxminddb:"is_anonymous"`
	IsAnonymousVPN bool `maxminddb:"is_anonymous_vpn"`
	IsTorExitNode  bool `maxminddb:"is_tor_exit_node"`
}

// Resolution is what a single Resolve call yields. Country and city
// modes fill Geo only, anonymous mode fills Anon only. Enterprise mode
// fills Geo and, best effort, Anon: a failed anonymity sub-query leaves
// Anon nil without discarding the enterprise fields.
type Resolution struct {
	Geo  *GeoResult
	Anon *AnonymityResult
}
