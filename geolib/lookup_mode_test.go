package geolib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geofilter/geofilter/geolib"
)

func TestParseLookupMode(t *testing.T) {
	testTable := map[string]geolib.LookupMode{
		"country":   geolib.ModeCountry,
		"city":      geolib.ModeCity,
		"anonymous": geolib.ModeAnonymous,
	}

	for value, expected := range testTable {
		mode, err := geolib.ParseLookupMode(value, false)

		assert.NoError(t, err)
		assert.Equal(t, expected, mode)
		assert.Equal(t, value, mode.String())
		assert.True(t, mode.Valid())
	}
}

func TestParseLookupModeEnterpriseWins(t *testing.T) {
	mode, err := geolib.ParseLookupMode("country", true)

	assert.NoError(t, err)
	assert.Equal(t, geolib.ModeEnterprise, mode)
}

func TestParseLookupModeUnknown(t *testing.T) {
	_, err := geolib.ParseLookupMode("continent", false)

	assert.Error(t, err)
}

func TestLookupModeInvalid(t *testing.T) {
	assert.False(t, geolib.LookupMode(42).Valid())
}
