package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/aliaskeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-l string   HTTP bind address (e.g., ":8080")
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-m int      "remember me" refresh token validity, minutes
//	-n int      failed attempts before lockout
//	-w int      lockout window, minutes
//	-x list     public email domains, comma separated
//	-y list     private email domains, comma separated
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-log string logging backend: slog or zap
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-l", "-a", "-d", "-s", "-t", "-r", "-m", "-n", "-w", "-x", "-y",
		"-u", "-p", "-b", "-g", "-e", "-log",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "l", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh_token_validity_duration (in minutes)")
	rememberMeValidityDuration := fs.Int("m", int(config.RememberMeRefreshTokenValidityDuration.Minutes()), "remember_me_refresh_token_validity_duration (in minutes)")

	fs.IntVar(&config.LockoutThreshold, "n", config.LockoutThreshold, "failed attempts before lockout")
	lockoutWindow := fs.Int("w", int(config.LockoutWindow.Minutes()), "lockout window (in minutes)")

	public := flagx.StringList(config.PublicEmailDomains)
	private := flagx.StringList(config.PrivateEmailDomains)
	fs.Var(&public, "x", "public email domains")
	fs.Var(&private, "y", "private email domains")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.LogBackend, "log", config.LogBackend, "logging backend (slog|zap)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
	config.RememberMeRefreshTokenValidityDuration = time.Duration(*rememberMeValidityDuration) * time.Minute
	config.LockoutWindow = time.Duration(*lockoutWindow) * time.Minute
	config.PublicEmailDomains = []string(public)
	config.PrivateEmailDomains = []string(private)
}
