package main

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"sync"

	"github.com/panjf2000/ants/v2"
)

const resolvePoolSize = 64

type resolveOutput struct {
	IP         string            `json:"ip"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Error      string            `json:"error,omitempty"`
}

func mainResolve(configFile *os.File, addresses []string) error {
	conf, err := parseConfig(configFile)
	if err != nil {
		return fmt.Errorf("cannot parse config: %w", err)
	}

	filter, resolver, err := makeFilter(conf, nil)
	if err != nil {
		return err
	}

	defer resolver.Shutdown()

	results := make([]resolveOutput, len(addresses))
	wg := &sync.WaitGroup{}

	pool, err := ants.NewPoolWithFunc(resolvePoolSize, func(args interface{}) {
		defer wg.Done()

		out := args.(*resolveOutput)

		ip := net.ParseIP(out.IP)
		if ip == nil {
			out.Error = "cannot parse ip address"

			return
		}

		attrs, err := filter.Attributes(ip)
		if err != nil {
			out.Error = err.Error()

			return
		}

		out.Attributes = map[string]string{}

		for _, attr := range attrs.All() {
			out.Attributes[attr.Name] = attr.Value
		}
	})
	if err != nil {
		return fmt.Errorf("cannot create worker pool: %w", err)
	}

	defer pool.Release()

	for i, raw := range addresses {
		results[i] = resolveOutput{IP: raw}

		wg.Add(1)

		if err := pool.Invoke(&results[i]); err != nil {
			wg.Done()

			results[i].Error = err.Error()
		}
	}

	wg.Wait()

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetEscapeHTML(false)

	for i := range results {
		encoder.Encode(&results[i]) // nolint: errcheck
	}

	return nil
}
