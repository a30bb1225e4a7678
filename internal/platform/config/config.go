package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr        string
	Environment string
	// AdminDIDs may change listing status and promotion.
	AdminDIDs []string

	JWT      JWTConfig
	Wallet   WalletConfig
	Guardian GuardianConfig
	Redis    RedisConfig
	// AuditBuffer > 0 makes audit publishing asynchronous.
	AuditBuffer int
}

// JWTConfig configures bearer token validation.
type JWTConfig struct {
	SigningKey string
	Issuer     string
	Audience   string
	TokenTTL   time.Duration
}

// WalletConfig points at the wallet network service. An empty BaseURL runs the
// in-memory wallet.
type WalletConfig struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	PageSize int
	// BreakerThreshold consecutive network failures open the circuit for BreakerCooldown.
	BreakerThreshold int
	BreakerCooldown  time.Duration
}

// GuardianConfig configures the child-profile gate.
type GuardianConfig struct {
	VerificationTTL time.Duration
	BcryptCost      int
}

// RedisConfig configures the optional Redis client. An empty URL disables it.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Defaults applied when the environment leaves a value unset.
var (
	TokenTTL      = 15 * time.Minute
	GuardianTTL   = 5 * time.Minute
	WalletTimeout = 10 * time.Second
	IndexPageSize = 15

	WalletBreakerThreshold = 5
	WalletBreakerCooldown  = 30 * time.Second
	DefaultJWTIssuer       = "walletgate"
	DefaultJWTAudience     = "walletgate-api"
)

// Load reads .env files (missing files are ignored) and then the environment.
// Variables already set in the environment win over file values.
func Load(files ...string) Server {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
	return FromEnv()
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:        envString("WALLETGATE_ADDR", ":8080"),
		Environment: envString("WALLETGATE_ENV", "development"),
		AdminDIDs:   envList("ADMIN_DIDS"),
		JWT: JWTConfig{
			SigningKey: jwtSigningKey,
			Issuer:     envString("JWT_ISSUER", DefaultJWTIssuer),
			Audience:   envString("JWT_AUDIENCE", DefaultJWTAudience),
			TokenTTL:   envDuration("TOKEN_TTL", TokenTTL),
		},
		Wallet: WalletConfig{
			BaseURL:  os.Getenv("WALLET_BASE_URL"),
			APIKey:   os.Getenv("WALLET_API_KEY"),
			Timeout:  envDuration("WALLET_TIMEOUT", WalletTimeout),
			PageSize: envInt("INDEX_PAGE_SIZE", IndexPageSize),

			BreakerThreshold: envInt("WALLET_BREAKER_THRESHOLD", WalletBreakerThreshold),
			BreakerCooldown:  envDuration("WALLET_BREAKER_COOLDOWN", WalletBreakerCooldown),
		},
		Guardian: GuardianConfig{
			VerificationTTL: envDuration("GUARDIAN_TTL", GuardianTTL),
			BcryptCost:      envInt("GUARDIAN_BCRYPT_COST", 0),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		AuditBuffer: envInt("AUDIT_BUFFER", 0),
	}
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}

func envList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
