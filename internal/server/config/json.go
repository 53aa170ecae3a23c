package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/aliaskeeper/internal/flagx"
	"github.com/dmitrijs2005/aliaskeeper/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// Interval fields use timex.Duration, which accepts both strings such as
// "30m" and integer nanoseconds.
//
// Only keys present in the file override the current values.
type JsonConfig struct {
	EndpointAddrHTTP                       string          `json:"endpoint_addr_http"`
	EndpointAddrGRPC                       string          `json:"endpoint_addr_grpc"`
	DatabaseDSN                            string          `json:"database_dsn"`
	SecretKey                              string          `json:"secret_key"`
	AccessTokenValidityDuration            *timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration           *timex.Duration `json:"refresh_token_validity_duration"`
	RememberMeRefreshTokenValidityDuration *timex.Duration `json:"remember_me_refresh_token_validity_duration"`
	SrpSessionValidityDuration             *timex.Duration `json:"srp_session_validity_duration"`
	LockoutThreshold                       *int            `json:"lockout_threshold"`
	LockoutWindow                          *timex.Duration `json:"lockout_window"`
	PublicEmailDomains                     []string        `json:"public_email_domains"`
	PrivateEmailDomains                    []string        `json:"private_email_domains"`
	S3RootUser                             string          `json:"s3_root_user"`
	S3RootPassword                         string          `json:"s3_root_password"`
	S3Bucket                               string          `json:"s3_bucket"`
	S3Region                               string          `json:"s3_region"`
	S3BaseEndpoint                         string          `json:"s3_base_endpoint"`
	IngestToken                            string          `json:"ingest_token"`
	LogBackend                             string          `json:"log_backend"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config flag into config. Without the flag nothing is loaded.
// An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration)
	setDuration(&config.RememberMeRefreshTokenValidityDuration, c.RememberMeRefreshTokenValidityDuration)
	setDuration(&config.SrpSessionValidityDuration, c.SrpSessionValidityDuration)
	if c.LockoutThreshold != nil {
		config.LockoutThreshold = *c.LockoutThreshold
	}
	setDuration(&config.LockoutWindow, c.LockoutWindow)
	if c.PublicEmailDomains != nil {
		config.PublicEmailDomains = c.PublicEmailDomains
	}
	if c.PrivateEmailDomains != nil {
		config.PrivateEmailDomains = c.PrivateEmailDomains
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.IngestToken, c.IngestToken)
	setString(&config.LogBackend, c.LogBackend)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
