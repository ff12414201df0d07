package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Backend selects where tenant records and scoped queries come from.
const (
	BackendLive        = "live"
	BackendPlaceholder = "placeholder"
)

// Load reads the .env file specified by ZENBASE_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("ZENBASE_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

// BaseDomain is the wildcard-routed production domain. Hosts of the form
// <slug>.<base-domain> resolve to tenant <slug>.
func BaseDomain() string {
	d := os.Getenv("BASE_DOMAIN")
	if d == "" {
		return "zenbase.online"
	}
	return d
}

// LocalDevSuffix is the single-label host suffix used for local
// development, e.g. seattle.localhost.
func LocalDevSuffix() string {
	s := os.Getenv("LOCAL_DEV_SUFFIX")
	if s == "" {
		return "localhost"
	}
	return s
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func IdentityURL() string {
	return os.Getenv("IDENTITY_URL")
}

func IdentityAPIKey() string {
	return os.Getenv("IDENTITY_API_KEY")
}

// DataBackend returns the configured backend variant.
// Valid values: live, placeholder. When unset, the backend is derived
// from whether DATABASE_URL is configured, so the gateway stays demoable
// without backing infrastructure.
func DataBackend() string {
	switch os.Getenv("DATA_BACKEND") {
	case BackendLive:
		return BackendLive
	case BackendPlaceholder:
		return BackendPlaceholder
	}
	if DatabaseURL() != "" {
		return BackendLive
	}
	return BackendPlaceholder
}

// Environment returns the deployment environment.
// Defaults to "development" if not set.
func Environment() string {
	e := os.Getenv("ENVIRONMENT")
	if e == "" {
		return "development"
	}
	return e
}

func IsDevelopment() bool {
	return Environment() == "development"
}

func CORSOrigin() string {
	o := os.Getenv("CORS_ORIGIN")
	if o == "" {
		return "*"
	}
	return o
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}
