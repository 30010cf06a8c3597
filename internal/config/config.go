package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	Port                 string
	Env                  string // either prod or dev, dev disables https redirects and security headers
	SessionKey           []byte
	JwtSigningKey        []byte
	SentryDSN            string
	SupportEmail         string // displayed on the site for support queries
	NoReplyEmail         string // used for transactional emails
	SiteName             string
	SiteHost             string
	URLProtocol          string
	JobsPerPage          int           // configures how many jobs are shown per page result
	AuthLatency          time.Duration // simulated round trip of login, register, resend and recover
	VerifyLatency        time.Duration // simulated round trip of account verification
	SessionTTL           time.Duration // how long a signed in user is kept in memory
	AvailableSalaryBands []int         // minimum salary options offered by the salary filter
}

// LoadConfig reads the environment, after loading a .env file from the
// working directory when there is one.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return Config{}, errors.Wrap(err, "unable to load .env file")
	}
	port := os.Getenv("PORT")
	if port == "" {
		return Config{}, fmt.Errorf("PORT cannot be empty")
	}
	env := strings.ToLower(os.Getenv("ENV"))
	if env == "" {
		env = "dev"
	}
	if env != "dev" && env != "prod" {
		return Config{}, fmt.Errorf("ENV must be either dev or prod, got %q", env)
	}
	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		return Config{}, fmt.Errorf("JWT_SIGNING_KEY cannot be empty")
	}
	jwtSigningKeyBytes, err := base64.StdEncoding.DecodeString(jwtSigningKey)
	if err != nil {
		return Config{}, errors.Wrap(err, "unable to decode jwt signing key to bytes")
	}
	sessionKeyString := os.Getenv("SESSION_KEY")
	if sessionKeyString == "" {
		return Config{}, fmt.Errorf("SESSION_KEY cannot be empty")
	}
	sessionKeyBytes, err := base64.StdEncoding.DecodeString(sessionKeyString)
	if err != nil {
		return Config{}, errors.Wrap(err, "unable to decode session key to bytes")
	}
	siteName := os.Getenv("SITE_NAME")
	if siteName == "" {
		siteName = "JobMoz"
	}
	siteHost := os.Getenv("SITE_HOST")
	if siteHost == "" {
		siteHost = "localhost:" + port
	}
	supportEmail := os.Getenv("SUPPORT_EMAIL")
	if supportEmail == "" {
		supportEmail = "apoio@jobmoz.co.mz"
	}
	noReplyEmail := os.Getenv("NO_REPLY_EMAIL")
	if noReplyEmail == "" {
		noReplyEmail = "no-reply@jobmoz.co.mz"
	}
	jobsPerPage, err := intFromEnv("JOBS_PER_PAGE", 10)
	if err != nil {
		return Config{}, err
	}
	authLatencyMs, err := intFromEnv("AUTH_LATENCY_MS", 1000)
	if err != nil {
		return Config{}, err
	}
	verifyLatencyMs, err := intFromEnv("VERIFY_LATENCY_MS", 1500)
	if err != nil {
		return Config{}, err
	}
	sessionTTLHours, err := intFromEnv("SESSION_TTL_HOURS", 24)
	if err != nil {
		return Config{}, err
	}
	salaryBands := []int{10000, 20000, 30000, 50000, 80000, 100000, 150000}
	if raw := os.Getenv("AVAILABLE_SALARY_BANDS"); raw != "" {
		salaryBands, err = parseSalaryBands(raw)
		if err != nil {
			return Config{}, err
		}
	}
	urlProtocol := "http://"
	if env != "dev" {
		urlProtocol = "https://"
	}

	return Config{
		Port:                 port,
		Env:                  env,
		SessionKey:           sessionKeyBytes,
		JwtSigningKey:        jwtSigningKeyBytes,
		SentryDSN:            os.Getenv("SENTRY_DSN"),
		SupportEmail:         supportEmail,
		NoReplyEmail:         noReplyEmail,
		SiteName:             siteName,
		SiteHost:             siteHost,
		URLProtocol:          urlProtocol,
		JobsPerPage:          jobsPerPage,
		AuthLatency:          time.Duration(authLatencyMs) * time.Millisecond,
		VerifyLatency:        time.Duration(verifyLatencyMs) * time.Millisecond,
		SessionTTL:           time.Duration(sessionTTLHours) * time.Hour,
		AvailableSalaryBands: salaryBands,
	}, nil
}

// SiteURL joins the site protocol and host with path.
func (c Config) SiteURL(path string) string {
	return c.URLProtocol + c.SiteHost + "/" + strings.TrimPrefix(path, "/")
}

func intFromEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "could not convert %s to int", key)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s cannot be negative", key)
	}
	return n, nil
}

func parseSalaryBands(raw string) ([]int, error) {
	var bands []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		band, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid salary band %q", part)
		}
		bands = append(bands, band)
	}
	return bands, nil
}
