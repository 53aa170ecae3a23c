package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/aliaskeeper/internal/flagx"
	"github.com/dmitrijs2005/aliaskeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// are timex.Duration, so "15m" and integer nanoseconds both work.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	CacheDir            string         `json:"cache_dir"`
	IdleTimeout         timex.Duration `json:"idle_timeout"`
	ClipboardClear      timex.Duration `json:"clipboard_clear"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Fields absent from the file keep their current value.
// Read and unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.CacheDir != "" {
		cfg.CacheDir = jc.CacheDir
	}
	if jc.IdleTimeout.Duration > 0 {
		cfg.IdleTimeout = jc.IdleTimeout.Duration
	}
	if jc.ClipboardClear.Duration > 0 {
		cfg.ClipboardClear = jc.ClipboardClear.Duration
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
}
