package main

import (
	"net"
	"os"

	"github.com/rs/zerolog"

	"github.com/geofilter/geofilter/geolib"
)

type logger struct {
	lookupLog zerolog.Logger
	parseLog  zerolog.Logger
}

func (l *logger) LookupError(ip net.IP, err error) {
	l.lookupLog.Warn().Stringer("ip", ip).Err(err).Msg("")
}

func (l *logger) ParseError(raw string, err error) {
	l.parseLog.Debug().Str("candidate", raw).Err(err).Msg("")
}

func newLogger() geolib.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	return &logger{
		lookupLog: zerolog.New(os.Stderr).With().Timestamp().Str("event_name", "lookup").Logger(),
		parseLog:  zerolog.New(os.Stderr).With().Timestamp().Str("event_name", "parse").Logger(),
	}
}
