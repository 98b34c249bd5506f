package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Backends a collection can be persisted to.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// DefaultSlot is the slot name the collection is stored under.
const DefaultSlot = "websites"

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	Backend    string // file | sqlite | redis | memory
	Slot       string // name of the persisted slot (default: websites)
	DataDir    string // directory for the file backend
	SQLitePath string // database path for the sqlite backend

	ImportFile     string        // homepage bookmarks.yaml to import (optional, empty = disabled)
	ImportInterval time.Duration // interval between imports (default: 24h)

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => refuse to start without a password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedCIDRS    []string // optional, restrict API access to these IPs/CIDRs
	TrustProxy      bool     // true => trust X-Forwarded-For headers
	RateLimitPerMin int      // requests per minute per client IP, 0 disables
	RateLimitBurst  int      // bucket size
}

func Load() *Config {
	dataDir := getenv("STASH_DATA_DIR", defaultDataDir())

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("STASH_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("STASH_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("STASH_LOG_LEVEL", "info"),
		PrettyLog: mustBool("STASH_PRETTY_LOG", true),

		// Persistence
		Backend:    strings.ToLower(getenv("STASH_BACKEND", BackendFile)),
		Slot:       getenv("STASH_SLOT", DefaultSlot),
		DataDir:    dataDir,
		SQLitePath: getenv("STASH_SQLITE_PATH", filepath.Join(dataDir, "stash.db")),

		// Homepage import
		ImportFile:     getenv("STASH_IMPORT_FILE", ""),
		ImportInterval: mustDuration("STASH_IMPORT_INTERVAL", 24*time.Hour),

		// Redis settings
		RedisAddr:             getenv("STASH_REDIS_ADDR", "localhost:6379"),
		RedisUser:             getenv("STASH_REDIS_USERNAME", ""),
		RedisPasswordRequired: mustBool("STASH_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("STASH_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("STASH_REDIS_DB", 0),
		RedisDT:               mustDuration("STASH_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("STASH_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("STASH_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("STASH_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("STASH_REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("STASH_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("STASH_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("STASH_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("STASH_REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedCIDRS:    splitAndTrim(getenv("STASH_ALLOWED_CIDRS", "")),
		TrustProxy:      mustBool("STASH_TRUST_PROXY", false),
		RateLimitPerMin: getenvInt("STASH_RATE_LIMIT_PER_MIN", 120),
		RateLimitBurst:  getenvInt("STASH_RATE_LIMIT_BURST", 20),
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfgCopy.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		if cfgCopy.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// Validate checks the settings that depend on each other. It runs after
// command line overrides have been applied.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile:
		if c.DataDir == "" {
			return fmt.Errorf("data dir is required for the %s backend", c.Backend)
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite path is required for the %s backend", c.Backend)
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("redis address is required for the %s backend", c.Backend)
		}
		if c.RedisPasswordRequired && c.RedisPassword == "" {
			return fmt.Errorf("STASH_REDIS_PASSWORD is required when STASH_REDIS_PASSWORD_REQUIRED=true")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q (want file, sqlite, redis or memory)", c.Backend)
	}

	if strings.TrimSpace(c.Slot) == "" {
		return fmt.Errorf("slot name must not be empty")
	}
	if c.ImportFile != "" && c.ImportInterval <= 0 {
		return fmt.Errorf("import interval must be > 0, got %v", c.ImportInterval)
	}
	return nil
}

// defaultDataDir is $XDG_CONFIG_HOME/stash (or the OS equivalent), falling
// back to ./.stash when no config dir can be resolved.
func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ".stash"
	}
	return filepath.Join(dir, "stash")
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
