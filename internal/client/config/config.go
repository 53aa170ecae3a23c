package config

import "time"

// Config holds runtime settings for the AliasKeeper CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - CacheDir: directory of the local cache (encrypted vault copy and login metadata).
//   - IdleTimeout: an unlocked vault locks itself after this much inactivity.
//   - ClipboardClear: copied secrets are wiped from the clipboard after this delay.
//   - OnlineCheckInterval: how often the client checks server reachability.
type Config struct {
	ServerEndpointAddr  string
	CacheDir            string
	IdleTimeout         time.Duration
	ClipboardClear      time.Duration
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.CacheDir = ".aliaskeeper"
	c.IdleTimeout = 15 * time.Minute
	c.ClipboardClear = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
