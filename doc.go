// Geofilter is a request enrichment middleware: for every inbound
// request it extracts a client IP address from a configured header,
// resolves it against a local MaxMind database and writes the resolved
// attributes back onto the request as X-* headers before the request
// reaches downstream handlers.
//
// Tool itself is organized into 2 logical parts:
//
// Geolib
//
// geolib is a main package of the application which contains the whole
// engine: a resolver over the database, a bounded caching layer, an
// attribute mapper and the http middleware. It knows nothing about
// CLIs, config files or concrete loggers.
//
// Main package
//
// A main package itself is an example of how to wire geolib. Resulting
// binary either starts an http server with the enrichment filter
// installed or resolves a list of addresses given on the command line.
package main
