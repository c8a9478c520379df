package geolib

import (
	"fmt"
	"net"
	"sync"

	"github.com/oschwald/maxminddb-golang"
	"github.com/spf13/afero"
)

type countryRecord struct {
	Country *Country `maxminddb:"country"`
}

type cityRecord struct {
	Country      *Country      `maxminddb:"country"`
	Subdivisions []Subdivision `maxminddb:"subdivisions"`
	City         *City         `maxminddb:"city"`
}

// MaxmindResolver is a Resolver backed by a single MaxMind database
// handle. The handle is opened once at construction time and is safe
// for concurrent lookups.
type MaxmindResolver struct {
	logger Logger

	dbReader     *maxminddb.Reader
	dbReaderLock sync.RWMutex
}

// NewMaxmindResolver opens a database at the given path. An unreadable
// or corrupt database fails construction loudly: a filter must never
// run with a nil resolver and discover that at request time.
func NewMaxmindResolver(fs afero.Fs, path string, logger Logger) (*MaxmindResolver, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("cannot read a database file: %w", err)
	}

	reader, err := maxminddb.FromBytes(content)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize a reader of maxminddb: %w", err)
	}

	if logger == nil {
		logger = NoopLogger{}
	}

	return &MaxmindResolver{
		logger:   logger,
		dbReader: reader,
	}, nil
}

func (m *MaxmindResolver) Resolve(ip net.IP, mode LookupMode) (Resolution, error) {
	m.dbReaderLock.RLock()
	defer m.dbReaderLock.RUnlock()

	rv := Resolution{}

	if m.dbReader == nil {
		return rv, ErrDatabaseNotReady
	}

	if ip == nil {
		return rv, ErrInvalidIP
	}

	switch mode {
	case ModeCountry:
		record := countryRecord{}

		if err := m.dbReader.Lookup(ip, &record); err != nil {
			return rv, resolutionError("cannot lookup country", err)
		}

		rv.Geo = &GeoResult{Country: record.Country}
	case ModeCity:
		record := cityRecord{}

		if err := m.dbReader.Lookup(ip, &record); err != nil {
			return rv, resolutionError("cannot lookup city", err)
		}

		rv.Geo = &GeoResult{
			Country:      record.Country,
			Subdivisions: record.Subdivisions,
			City:         record.City,
		}
	case ModeAnonymous:
		record := AnonymityResult{}

		if err := m.dbReader.Lookup(ip, &record); err != nil {
			return rv, resolutionError("cannot lookup anonymity", err)
		}

		rv.Anon = &record
	case ModeEnterprise:
		// Two independent sub-queries. A failure of one must not
		// discard what the other resolved fine.
		record := GeoResult{}
		geoErr := m.dbReader.Lookup(ip, &record)

		if geoErr == nil {
			rv.Geo = &record
		} else {
			m.logger.LookupError(ip, resolutionError("cannot lookup enterprise", geoErr))
		}

		anon := AnonymityResult{}
		anonErr := m.dbReader.Lookup(ip, &anon)

		if anonErr == nil {
			rv.Anon = &anon
		} else {
			m.logger.LookupError(ip, resolutionError("cannot lookup anonymity", anonErr))
		}

		if geoErr != nil && anonErr != nil {
			return Resolution{}, resolutionError("cannot lookup enterprise", geoErr)
		}
	default:
		return rv, fmt.Errorf("unsupported lookup mode: %s", mode)
	}

	return rv, nil
}

// Shutdown releases the database handle. Lookups issued afterwards
// fail with ErrDatabaseNotReady.
func (m *MaxmindResolver) Shutdown() {
	m.dbReaderLock.Lock()
	defer m.dbReaderLock.Unlock()

	if m.dbReader != nil {
		m.dbReader.Close()
		m.dbReader = nil
	}
}
