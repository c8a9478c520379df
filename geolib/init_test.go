package geolib_test

import (
	"net"

	"github.com/stretchr/testify/mock"

	"github.com/geofilter/geofilter/geolib"
)

type ResolverMock struct {
	mock.Mock
}

func (m *ResolverMock) Resolve(ip net.IP, mode geolib.LookupMode) (geolib.Resolution, error) {
	args := m.Called(ip, mode)

	return args.Get(0).(geolib.Resolution), args.Error(1)
}

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) LookupError(ip net.IP, err error) {
	m.Called(ip, err)
}

func (m *LoggerMock) ParseError(raw string, err error) {
	m.Called(raw, err)
}

func geoCountry(name string) *geolib.Country {
	return &geolib.Country{Names: geolib.Names{En: name}}
}

func geoSubdivision(name string) geolib.Subdivision {
	return geolib.Subdivision{Names: geolib.Names{En: name}}
}

func geoCity(name string) *geolib.City {
	return &geolib.City{Names: geolib.Names{En: name}}
}

func float64Ref(value float64) *float64 {
	return &value
}

func uint16Ref(value uint16) *uint16 {
	return &value
}
