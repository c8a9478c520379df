package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/hjson/hjson-go/v4"

	"github.com/geofilter/geofilter/geolib"
)

const (
	DefaultListen     = "127.0.0.1:8080"
	DefaultLookupType = "city"
)

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var v interface{}

	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("cannot unmarshal duration: %w", err)
	}

	vv, ok := v.(string)
	if !ok {
		return fmt.Errorf("incorrect duration: %v", v)
	}

	dur, err := time.ParseDuration(vv)
	if err != nil {
		return fmt.Errorf("cannot parse duration: %w", err)
	}

	d.Duration = dur

	return nil
}

type config struct {
	Listen            string   `json:"listen"`
	DatabasePath      string   `json:"database_path"`
	RemoteIPHeader    string   `json:"remote_ip_header"`
	Type              string   `json:"type"`
	Enterprise        bool     `json:"enterprise"`
	CacheSize         uint     `json:"cache_size"`
	CacheTTL          duration `json:"cache_ttl"`
	BasicAuthUser     string   `json:"basic_auth_user"`
	BasicAuthPassword string   `json:"basic_auth_password"`
}

func (c config) GetListen() string {
	if c.Listen != "" {
		return c.Listen
	}

	return DefaultListen
}

func (c config) GetRemoteIPHeader() string {
	if c.RemoteIPHeader != "" {
		return c.RemoteIPHeader
	}

	return geolib.DefaultRemoteIPHeader
}

func (c config) GetType() string {
	if c.Type != "" {
		return c.Type
	}

	return DefaultLookupType
}

func (c config) GetCacheSize() int {
	if c.CacheSize == 0 {
		return geolib.DefaultCacheSize
	}

	return int(c.CacheSize)
}

func (c config) GetCacheTTL() time.Duration {
	if c.CacheTTL.Duration == 0 {
		return geolib.DefaultCacheTTL
	}

	return c.CacheTTL.Duration
}

func parseConfig(reader io.Reader) (*config, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	conf := config{}
	rawMap := map[string]interface{}{}

	if err := hjson.Unmarshal(content, &rawMap); err != nil {
		return nil, fmt.Errorf("cannot parse json: %w", err)
	}

	rawBytes, _ := json.Marshal(rawMap)

	if err := json.Unmarshal(rawBytes, &conf); err != nil {
		return nil, fmt.Errorf("cannot process config: %w", err)
	}

	if conf.DatabasePath == "" {
		return nil, fmt.Errorf("database_path is required")
	}

	if _, _, err := net.SplitHostPort(conf.GetListen()); err != nil {
		return nil, fmt.Errorf("incorrect host:port for listen: %w", err)
	}

	if _, err := geolib.ParseLookupMode(conf.GetType(), conf.Enterprise); err != nil {
		return nil, fmt.Errorf("incorrect lookup settings: %w", err)
	}

	return &conf, nil
}
