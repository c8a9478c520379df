package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/geofilter/geofilter/geolib"
)

func mainServe(configFile *os.File) error {
	conf, err := parseConfig(configFile)
	if err != nil {
		return fmt.Errorf("cannot parse config: %w", err)
	}

	registry := prometheus.NewRegistry()

	filter, resolver, err := makeFilter(conf, geolib.NewPrometheusMetrics(registry))
	if err != nil {
		return err
	}

	defer resolver.Shutdown()

	srv := &http.Server{
		Addr:    conf.GetListen(),
		Handler: makeRouter(conf, filter, registry),
	}

	ctx, cancel := makeRootContext()
	defer cancel()

	go func() {
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(
			context.Background(), 5*time.Second)
		defer shutdownCancel()

		srv.Shutdown(shutdownCtx) // nolint: errcheck
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failure: %w", err)
	}

	return nil
}

func makeRouter(conf *config, filter *geolib.Filter, registry *prometheus.Registry) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(middleware.Recoverer)

	if conf.BasicAuthUser != "" {
		router.Use(basicAuth(conf.BasicAuthUser, conf.BasicAuthPassword))
	}

	router.Group(func(r chi.Router) {
		r.Use(filter.Middleware)
		r.Get("/", handleSelf)
	})

	router.Method("GET", "/metrics",
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return router
}

// handleSelf echoes the enrichment headers of the request back as
// JSON so the filter output is observable with plain curl.
func handleSelf(w http.ResponseWriter, req *http.Request) {
	rv := map[string]string{}

	for _, name := range geolib.EnrichmentHeaders() {
		if value := req.Header.Get(name); value != "" {
			rv[name] = value
		}
	}

	encoder := json.NewEncoder(w)

	w.Header().Set("Content-Type", "application/json")
	encoder.SetEscapeHTML(false)
	encoder.Encode(rv) // nolint: errcheck
}
