package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/aliaskeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   address and port of the backend server
//	-d string   local cache directory
//	-t int      idle lock timeout in seconds
//	-k int      clipboard clear delay in seconds
//	-i int      online check interval in seconds
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-k", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.CacheDir, "d", cfg.CacheDir, "local cache directory")
	idle := fs.Int("t", int(cfg.IdleTimeout.Seconds()), "idle lock timeout (in seconds)")
	clip := fs.Int("k", int(cfg.ClipboardClear.Seconds()), "clipboard clear delay (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.IdleTimeout = time.Duration(*idle) * time.Second
	cfg.ClipboardClear = time.Duration(*clip) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
