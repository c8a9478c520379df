package geolib

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIP is returned if an address given for a lookup is nil
	// or otherwise not a usable IP address. This is distinct from "the
	// database has no data for this address".
	ErrInvalidIP = errors.New("ip address is empty or invalid")

	// ErrResolution covers every lookup-stage failure: a database
	// miss, a corrupt record, an engine-internal error. It is always
	// returned as a value and never surfaces as a failed request.
	ErrResolution = errors.New("cannot resolve ip address")

	// ErrDatabaseNotReady is returned if a resolver is used after it
	// was shut down.
	ErrDatabaseNotReady = errors.New("database is not opened")
)

func resolutionError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %s", ErrResolution, msg, err.Error())
}
