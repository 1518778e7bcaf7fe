package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names read by the reporter and the HTTP dashboard.
const (
	envReportEnabled = "WHACK_REPORT_ENABLED"
	envReportEmail   = "WHACK_REPORT_EMAIL"
	envGraphEndpoint = "WHACK_GRAPH_ENDPOINT"
	envGraphToken    = "WHACK_GRAPH_TOKEN"
	envHTTPAddr      = "WHACK_HTTP_ADDR"
	envCORSOrigin    = "WHACK_CORS_ORIGIN"
)

// TokenEnvVar is the variable holding a mail API bearer token.
const TokenEnvVar = envGraphToken

// LoadEnv loads variables from a .env file. Variables already set in the
// environment win. A missing file is not an error.
func LoadEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// ReportSettings configures post-game email reports.
type ReportSettings struct {
	Enabled   bool
	Recipient string
	Endpoint  string // Empty means the mail API default
}

// ReportFromEnv reads report settings from the environment.
// Reports are enabled when a recipient is set, unless explicitly disabled.
func ReportFromEnv() ReportSettings {
	s := ReportSettings{
		Recipient: os.Getenv(envReportEmail),
		Endpoint:  os.Getenv(envGraphEndpoint),
	}
	s.Enabled = s.Recipient != ""
	if v, err := strconv.ParseBool(os.Getenv(envReportEnabled)); err == nil {
		s.Enabled = v && s.Recipient != ""
	}
	return s
}

// HTTPSettings configures the HTTP dashboard.
type HTTPSettings struct {
	Addr       string
	CORSOrigin string
}

// HTTPFromEnv reads HTTP settings from the environment.
func HTTPFromEnv() HTTPSettings {
	s := HTTPSettings{
		Addr:       os.Getenv(envHTTPAddr),
		CORSOrigin: os.Getenv(envCORSOrigin),
	}
	if s.CORSOrigin == "" {
		s.CORSOrigin = "*"
	}
	return s
}
