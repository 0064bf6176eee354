package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/beerkeeper/internal/flagx"
	"github.com/dmitrijs2005/beerkeeper/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Empty fields leave the current
// value untouched, so a file may override only part of the configuration.
type JsonConfig struct {
	EndpointAddrGRPC string          `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP *string         `json:"endpoint_addr_http"`
	DatabaseDriver   string          `json:"database_driver"`
	DatabaseDSN      string          `json:"database_dsn"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
	LogLevel         string          `json:"log_level"`
}

// parseJson overlays values from the JSON file named by -c/-config (or the
// CONFIG environment variable). Nothing happens when no file is named. An
// unreadable or malformed file panics.
func parseJson(config *Config) {
	path := flagx.ConfigFilePath(os.Args[1:])
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	// explicit "" disables the HTTP endpoint
	if c.EndpointAddrHTTP != nil {
		config.EndpointAddrHTTP = *c.EndpointAddrHTTP
	}
	if c.DatabaseDriver != "" {
		config.DatabaseDriver = c.DatabaseDriver
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
