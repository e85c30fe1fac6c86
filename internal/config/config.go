package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Result store backends.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreSQL    = "sql"
	StoreRedis  = "redis"
)

type Config struct {
	Mode     Mode   `yaml:"mode"`
	HTTPAddr string `yaml:"http_addr"`

	// Candidate question directories, tried in order.
	QuestionDirs []string `yaml:"question_dirs"`

	// Optional remote base URL the loader falls back to when a set is not
	// on disk.
	RemoteBase string `yaml:"remote_base"`

	ChunkSize int `yaml:"chunk_size"`

	ResultStore string `yaml:"result_store"` // memory|file|sql|redis
	ResultDir   string `yaml:"result_dir"`   // file backend

	DBDriver string `yaml:"db_driver"` // sql backend: sqlite|postgres
	DBDSN    string `yaml:"db_dsn"`

	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`

	CORSOriginsOnline  []string `yaml:"cors_origins_online"`
	CORSOriginsOffline []string `yaml:"cors_origins_offline"`
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	return Config{
		Mode:               mode,
		HTTPAddr:           envOr("HTTP_ADDR", ":8080"),
		QuestionDirs:       csvOr("QUESTION_DIRS", "./public,./dist/spa,./spa"),
		RemoteBase:         os.Getenv("REMOTE_BASE"),
		ChunkSize:          envInt("CHUNK_SIZE", 20),
		ResultStore:        envOr("RESULT_STORE", StoreFile),
		ResultDir:          envOr("RESULT_DIR", "./data"),
		DBDriver:           envOr("DB_DRIVER", "sqlite"),
		DBDSN:              os.Getenv("DB_DSN"),
		RedisAddr:          envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:            envInt("REDIS_DB", 0),
		CORSOriginsOnline:  csvOr("CORS_ORIGINS_ONLINE", "https://quizcraft.example.com"),
		CORSOriginsOffline: csvOr("CORS_ORIGINS_OFFLINE", "http://localhost:3000,http://localhost:5173"),
	}
}

// LoadFile overlays a YAML config file onto base. Fields absent from the
// file keep their base values.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no backend can act on.
func (c Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive, got %d", c.ChunkSize)
	}
	switch c.ResultStore {
	case StoreMemory, StoreFile, StoreSQL, StoreRedis:
	default:
		return fmt.Errorf("unknown result_store %q", c.ResultStore)
	}
	switch c.Mode {
	case ModeOffline, ModeOnline:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if len(c.QuestionDirs) == 0 {
		return fmt.Errorf("at least one question directory is required")
	}
	return nil
}

// CORSOrigins returns the origin list for the active mode.
func (c Config) CORSOrigins() []string {
	if c.Mode == ModeOnline {
		return c.CORSOriginsOnline
	}
	return c.CORSOriginsOffline
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
