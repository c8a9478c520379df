package geolib_test

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/geofilter/geofilter/geolib"
)

type FilterTestSuite struct {
	suite.Suite

	mockedResolver *ResolverMock
	mockedLogger   *LoggerMock

	seenHeaders http.Header
	nextCalled  bool
}

func (suite *FilterTestSuite) SetupTest() {
	suite.mockedResolver = &ResolverMock{}
	suite.mockedLogger = &LoggerMock{}
	suite.seenHeaders = nil
	suite.nextCalled = false
}

func (suite *FilterTestSuite) TearDownTest() {
	suite.mockedResolver.AssertExpectations(suite.T())
	suite.mockedLogger.AssertExpectations(suite.T())
}

func (suite *FilterTestSuite) makeFilter(mode geolib.LookupMode) *geolib.Filter {
	filter, err := geolib.NewFilter(geolib.FilterOpts{
		Resolver: suite.mockedResolver,
		Mode:     mode,
		Logger:   suite.mockedLogger,
	})

	suite.NoError(err)

	return filter
}

func (suite *FilterTestSuite) serve(filter *geolib.Filter, req *http.Request) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.nextCalled = true
		suite.seenHeaders = r.Header.Clone()
	})

	rec := httptest.NewRecorder()
	filter.Middleware(next).ServeHTTP(rec, req)

	return rec
}

func (suite *FilterTestSuite) TestNilResolverIsRejected() {
	_, err := geolib.NewFilter(geolib.FilterOpts{Mode: geolib.ModeCity})

	suite.Error(err)
}

func (suite *FilterTestSuite) TestUnknownModeIsRejected() {
	_, err := geolib.NewFilter(geolib.FilterOpts{
		Resolver: suite.mockedResolver,
		Mode:     geolib.LookupMode(42),
	})

	suite.Error(err)
}

func (suite *FilterTestSuite) TestBlankCandidate() {
	filter := suite.makeFilter(geolib.ModeCity)
	req := httptest.NewRequest("GET", "/", nil)

	rec := suite.serve(filter, req)

	suite.True(suite.nextCalled)
	suite.Equal(http.StatusOK, rec.Code)

	for _, name := range geolib.EnrichmentHeaders() {
		suite.Empty(suite.seenHeaders.Get(name))
	}
}

func (suite *FilterTestSuite) TestWhitespaceCandidate() {
	filter := suite.makeFilter(geolib.ModeCity)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(geolib.DefaultRemoteIPHeader, "   ")

	suite.serve(filter, req)

	suite.True(suite.nextCalled)
}

func (suite *FilterTestSuite) TestUnparsableCandidate() {
	suite.mockedLogger.On("ParseError", "not-an-ip", mock.Anything).Once()

	filter := suite.makeFilter(geolib.ModeCity)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(geolib.DefaultRemoteIPHeader, "not-an-ip")

	rec := suite.serve(filter, req)

	suite.True(suite.nextCalled)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Empty(suite.seenHeaders.Get("X-Country"))
}

func (suite *FilterTestSuite) TestCityMode() {
	ip := net.ParseIP("81.2.69.142")
	res := geolib.Resolution{
		Geo: &geolib.GeoResult{
			Country:      geoCountry("US"),
			Subdivisions: []geolib.Subdivision{geoSubdivision("CA")},
			City:         geoCity("Mountain View"),
		},
	}

	suite.mockedResolver.On("Resolve", ip, geolib.ModeCity).Return(res, nil).Once()

	filter := suite.makeFilter(geolib.ModeCity)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(geolib.DefaultRemoteIPHeader, "81.2.69.142")
	req.Header.Set("X-Country", "stale-value")

	suite.serve(filter, req)

	suite.Equal("US", suite.seenHeaders.Get("X-Country"))
	suite.Equal("CA", suite.seenHeaders.Get("X-State"))
	suite.Equal("Mountain View", suite.seenHeaders.Get("X-City"))
	suite.Len(suite.seenHeaders.Values("X-Country"), 1)
	suite.Empty(suite.seenHeaders.Get("X-Postal"))
}

func (suite *FilterTestSuite) TestCustomHeader() {
	ip := net.ParseIP("81.2.69.142")
	res := geolib.Resolution{
		Geo: &geolib.GeoResult{Country: geoCountry("GB")},
	}

	suite.mockedResolver.On("Resolve", ip, geolib.ModeCountry).Return(res, nil).Once()

	filter, err := geolib.NewFilter(geolib.FilterOpts{
		Resolver:       suite.mockedResolver,
		Mode:           geolib.ModeCountry,
		RemoteIPHeader: "X-Real-Ip",
	})
	suite.NoError(err)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Real-Ip", "81.2.69.142")

	suite.serve(filter, req)

	suite.Equal("GB", suite.seenHeaders.Get("X-Country"))
}

func (suite *FilterTestSuite) TestResolutionFailure() {
	ip := net.ParseIP("81.2.69.142")

	suite.mockedResolver.
		On("Resolve", ip, geolib.ModeCity).
		Return(geolib.Resolution{}, geolib.ErrResolution).
		Once()
	suite.mockedLogger.On("LookupError", ip, geolib.ErrResolution).Once()

	filter := suite.makeFilter(geolib.ModeCity)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(geolib.DefaultRemoteIPHeader, "81.2.69.142")

	rec := suite.serve(filter, req)

	suite.True(suite.nextCalled)
	suite.Equal(http.StatusOK, rec.Code)

	for _, name := range geolib.EnrichmentHeaders() {
		suite.Empty(suite.seenHeaders.Get(name))
	}
}

func (suite *FilterTestSuite) TestEnterpriseAnonymityOnly() {
	ip := net.ParseIP("81.2.69.142")
	res := geolib.Resolution{
		Anon: &geolib.AnonymityResult{IsAnonymous: true},
	}

	suite.mockedResolver.On("Resolve", ip, geolib.ModeEnterprise).Return(res, nil).Once()

	filter := suite.makeFilter(geolib.ModeEnterprise)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(geolib.DefaultRemoteIPHeader, "81.2.69.142")

	suite.serve(filter, req)

	suite.Equal("true", suite.seenHeaders.Get("X-Anonymous-Ip"))
	suite.Equal("false", suite.seenHeaders.Get("X-Anonymous-Vpn"))
	suite.Equal("false", suite.seenHeaders.Get("X-Tor-Exit-Node"))
	suite.Empty(suite.seenHeaders.Get("X-Country"))
	suite.Empty(suite.seenHeaders.Get("X-Proxy-Legal"))
}

func TestFilter(t *testing.T) {
	suite.Run(t, &FilterTestSuite{})
}
