package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the full process configuration, built once at startup.
type Config struct {
	Server     Server
	Database   DatabaseConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Attendance AttendanceConfig
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	Environment     string
	LogLevel        string
	AdminAPIToken   string
	ShutdownTimeout time.Duration
	RequestTimeout  time.Duration
}

// DatabaseConfig selects the Postgres repositories. An empty URL keeps the
// in-memory repositories.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig configures the optional Redis client.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the optional swipe publisher.
type KafkaConfig struct {
	Brokers    []string
	SwipeTopic string
	ClientID   string
	Partitions int32
	Replicas   int16
}

// AttendanceConfig tunes reconciliation and ingestion.
type AttendanceConfig struct {
	DuplicateInPolicy string
	LateThreshold     string
	TrackLocation     bool
	TrackLateness     bool
	SwipeDebounce     time.Duration
	IngestBuffer      int
}

// UsesPostgres reports whether persistent repositories are configured.
func (c DatabaseConfig) UsesPostgres() bool {
	return c.URL != ""
}

// UsesKafka reports whether the swipe publisher is configured.
func (c KafkaConfig) UsesKafka() bool {
	return len(c.Brokers) > 0
}

// IsDevelopment reports whether the service runs in a local environment.
func (s Server) IsDevelopment() bool {
	return s.Environment == "" || s.Environment == "development" || s.Environment == "local"
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	cfg := Config{
		Server: Server{
			Addr:            envOr("ROLLCALL_ADDR", ":8000"),
			Environment:     envOr("ROLLCALL_ENV", "development"),
			LogLevel:        envOr("LOG_LEVEL", "info"),
			AdminAPIToken:   os.Getenv("ADMIN_API_TOKEN"),
			ShutdownTimeout: 10 * time.Second,
			RequestTimeout:  30 * time.Second,
		},
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers:    splitList(os.Getenv("KAFKA_BROKERS")),
			SwipeTopic: envOr("KAFKA_SWIPE_TOPIC", "rollcall.swipes"),
			ClientID:   envOr("KAFKA_CLIENT_ID", "rollcall"),
			Partitions: 3,
			Replicas:   1,
		},
		Attendance: AttendanceConfig{
			DuplicateInPolicy: envOr("DUPLICATE_IN_POLICY", "keep-first-open"),
			LateThreshold:     envOr("LATE_THRESHOLD", "10:00:00"),
			TrackLocation:     true,
			TrackLateness:     true,
			SwipeDebounce:     3 * time.Second,
			IngestBuffer:      1024,
		},
	}

	var err error
	if cfg.Attendance.TrackLocation, err = envBool("TRACK_LOCATION", cfg.Attendance.TrackLocation); err != nil {
		return Config{}, err
	}
	if cfg.Attendance.TrackLateness, err = envBool("TRACK_LATENESS", cfg.Attendance.TrackLateness); err != nil {
		return Config{}, err
	}
	if cfg.Attendance.SwipeDebounce, err = envDuration("SWIPE_DEBOUNCE", cfg.Attendance.SwipeDebounce); err != nil {
		return Config{}, err
	}
	if cfg.Server.ShutdownTimeout, err = envDuration("SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout); err != nil {
		return Config{}, err
	}
	if cfg.Attendance.IngestBuffer, err = envInt("INGEST_BUFFER", cfg.Attendance.IngestBuffer); err != nil {
		return Config{}, err
	}
	if cfg.Attendance.IngestBuffer <= 0 {
		return Config{}, fmt.Errorf("INGEST_BUFFER must be positive, got %d", cfg.Attendance.IngestBuffer)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}

func envInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
