package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/geofilter/geofilter/geolib"
)

var (
	app = kingpin.New(
		"geofilter",
		"GeoIP request enrichment middleware.")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("GEOFILTER_DEBUG").
		Bool()

	serveCmd        = app.Command("serve", "Run a server with the enrichment filter installed.")
	serveConfigFile = serveCmd.Arg("config-path", "Path to the config.").
			Required().
			File()

	resolveCmd        = app.Command("resolve", "Resolve given addresses and exit.")
	resolveConfigFile = resolveCmd.Arg("config-path", "Path to the config.").
				Required().
				File()
	resolveAddresses = resolveCmd.Arg("ip", "IP addresses to resolve.").
				Required().
				Strings()
)

func init() {
	app.Version("0.1.0")
	app.HelpFlag.Short('h')
}

func main() {
	godotenv.Load() // nolint: errcheck

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error

	switch cmd {
	case serveCmd.FullCommand():
		err = mainServe(*serveConfigFile)
	case resolveCmd.FullCommand():
		err = mainResolve(*resolveConfigFile, *resolveAddresses)
	}

	if err != nil {
		kingpin.Fatalf("%v", err)
	}
}

func makeFilter(conf *config, metrics geolib.Metrics) (*geolib.Filter, *geolib.MaxmindResolver, error) {
	mode, err := geolib.ParseLookupMode(conf.GetType(), conf.Enterprise)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot select lookup mode: %w", err)
	}

	log := newLogger()

	resolver, err := geolib.NewMaxmindResolver(afero.NewOsFs(), conf.DatabasePath, log)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open geolocation database: %w", err)
	}

	filter, err := geolib.NewFilter(geolib.FilterOpts{
		Resolver: geolib.NewCachingResolver(resolver,
			conf.GetCacheSize(),
			conf.GetCacheTTL(),
			metrics),
		Mode:           mode,
		RemoteIPHeader: conf.GetRemoteIPHeader(),
		Logger:         log,
		Metrics:        metrics,
	})
	if err != nil {
		resolver.Shutdown()

		return nil, nil, fmt.Errorf("cannot build enrichment filter: %w", err)
	}

	return filter, resolver, nil
}
