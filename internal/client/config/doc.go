// Package config loads runtime configuration for the AliasKeeper CLI.
//
// Sources, later ones win:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags: -a, -d, -t, -k, -i.
//
// JSON example:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "cache_dir": ".aliaskeeper",
//	  "idle_timeout": "15m",
//	  "clipboard_clear": "10s",
//	  "online_check_interval": "3s"
//	}
package config
