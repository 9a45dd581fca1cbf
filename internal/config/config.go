package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
)

const (
	ModeOnce   = "once"
	ModeDaemon = "daemon"

	BackendFile     = "file"
	BackendS3       = "s3"
	BackendPostgres = "postgres"
)

type Config struct {
	BotToken    string
	ChatID      string
	AdminChatID int64

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
	OpenAITimeout time.Duration

	SendHour     int
	TZName       string
	Location     *time.Location
	MinuteWindow int

	HistoryBackend string
	HistoryFile    string
	HistoryLimit   int
	DatabaseURL    string
	S3             S3

	SimilarityThreshold float64
	BatchSize           int
	Attempts            int
	RandomSeed          *uint64

	Mode          string
	Port          string
	TickInterval  time.Duration
	AuthSecret    string
	AdminPassword string
}

type S3 struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Key       string
	Insecure  bool
}

// Load читает .env (если есть) и окружение.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup собирает конфиг; все ошибки валидации копятся вместе.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	r := reader{lookup: lookup}

	cfg := &Config{
		BotToken:    r.required("BOT_TOKEN"),
		ChatID:      r.required("CHAT_ID"),
		AdminChatID: r.int64("ADMIN_CHAT_ID", 0),

		OpenAIKey:     r.required("OPENAI_API_KEY"),
		OpenAIModel:   r.str("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: r.str("OPENAI_BASE_URL", ""),
		OpenAITimeout: r.duration("OPENAI_TIMEOUT", 60*time.Second),

		SendHour:     r.int("SEND_HOUR", 9),
		TZName:       r.str("TZ", "Europe/Kyiv"),
		MinuteWindow: r.int("MINUTE_WINDOW", 59),

		HistoryBackend: strings.ToLower(r.str("HISTORY_BACKEND", BackendFile)),
		HistoryFile:    r.str("HISTORY_FILE", "sent_history.json"),
		HistoryLimit:   r.int("HISTORY_LIMIT", 200),
		DatabaseURL:    r.str("DATABASE_URL", ""),
		S3: S3{
			Endpoint:  r.str("S3_ENDPOINT", ""),
			AccessKey: r.str("S3_ACCESS_KEY", ""),
			SecretKey: r.str("S3_SECRET_KEY", ""),
			Bucket:    r.str("S3_BUCKET", ""),
			Region:    r.str("S3_REGION", ""),
			Key:       r.str("S3_HISTORY_KEY", "sent_history.json"),
			Insecure:  r.bool("S3_INSECURE", false),
		},

		SimilarityThreshold: r.float("SIMILARITY_THRESHOLD", 0.65),
		BatchSize:           r.int("BATCH_SIZE", 12),
		Attempts:            r.int("GENERATION_ATTEMPTS", 2),

		Mode:          strings.ToLower(r.str("RUN_MODE", ModeOnce)),
		Port:          r.str("PORT", "8080"),
		TickInterval:  r.duration("TICK_INTERVAL", time.Minute),
		AuthSecret:    r.str("AUTH_SECRET", ""),
		AdminPassword: r.str("ADMIN_PASSWORD", ""),
	}

	if v, ok := lookup("RANDOM_SEED"); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			r.fail("RANDOM_SEED", v, err)
		} else {
			cfg.RandomSeed = &seed
		}
	}

	if loc, err := time.LoadLocation(cfg.TZName); err != nil {
		r.fail("TZ", cfg.TZName, err)
	} else {
		cfg.Location = loc
	}

	r.err = multierr.Append(r.err, cfg.validate())
	if r.err != nil {
		return nil, r.err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var err error
	if c.SendHour < 0 || c.SendHour > 23 {
		err = multierr.Append(err, fmt.Errorf("SEND_HOUR must be 0..23, got %d", c.SendHour))
	}
	if c.MinuteWindow < 1 || c.MinuteWindow > 60 {
		err = multierr.Append(err, fmt.Errorf("MINUTE_WINDOW must be 1..60, got %d", c.MinuteWindow))
	}
	if c.HistoryLimit < 1 {
		err = multierr.Append(err, fmt.Errorf("HISTORY_LIMIT must be positive, got %d", c.HistoryLimit))
	}
	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold > 1 {
		err = multierr.Append(err, fmt.Errorf("SIMILARITY_THRESHOLD must be in (0,1], got %v", c.SimilarityThreshold))
	}
	if c.BatchSize < 1 {
		err = multierr.Append(err, fmt.Errorf("BATCH_SIZE must be positive, got %d", c.BatchSize))
	}
	if c.Attempts < 1 {
		err = multierr.Append(err, fmt.Errorf("GENERATION_ATTEMPTS must be positive, got %d", c.Attempts))
	}

	switch c.HistoryBackend {
	case BackendFile:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			err = multierr.Append(err, fmt.Errorf("DATABASE_URL is required for HISTORY_BACKEND=postgres"))
		}
	case BackendS3:
		if c.S3.Endpoint == "" || c.S3.Bucket == "" {
			err = multierr.Append(err, fmt.Errorf("S3_ENDPOINT and S3_BUCKET are required for HISTORY_BACKEND=s3"))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("unknown HISTORY_BACKEND %q", c.HistoryBackend))
	}

	switch c.Mode {
	case ModeOnce:
	case ModeDaemon:
		if c.AdminPassword != "" && c.AuthSecret == "" {
			err = multierr.Append(err, fmt.Errorf("AUTH_SECRET is required when ADMIN_PASSWORD is set"))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("unknown RUN_MODE %q", c.Mode))
	}
	return err
}

type reader struct {
	lookup func(string) (string, bool)
	err    error
}

func (r *reader) fail(key, value string, err error) {
	r.err = multierr.Append(r.err, fmt.Errorf("%s=%q: %w", key, value, err))
}

func (r *reader) str(key, def string) string {
	if v, ok := r.lookup(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func (r *reader) required(key string) string {
	v := r.str(key, "")
	if v == "" {
		r.err = multierr.Append(r.err, fmt.Errorf("%s is not set", key))
	}
	return v
}

func (r *reader) int(key string, def int) int {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return n
}

func (r *reader) int64(key string, def int64) int64 {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return n
}

func (r *reader) float(key string, def float64) float64 {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return f
}

func (r *reader) bool(key string, def bool) bool {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return b
}

func (r *reader) duration(key string, def time.Duration) time.Duration {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return d
}
