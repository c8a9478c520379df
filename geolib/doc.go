// geolib is a main package of the application which contains the whole
// request enrichment engine: a resolver which queries a MaxMind database
// for a given IP address, a caching decorator in front of it, a mapper
// which flattens sparse lookup results into a small fixed set of named
// attributes, and an http middleware which writes these attributes onto
// the request as headers.
//
// The intended wiring is simple: open a MaxmindResolver, wrap it into a
// caching resolver, build a Filter and put Filter.Middleware in front of
// your handlers. Everything here is safe for concurrent use and every
// failure degrades to "no attributes", never to a failed request.
package geolib
