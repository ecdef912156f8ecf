package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DefaultAPIBaseURL = "http://localhost:5000/api"
	DefaultTimeout    = 120 * time.Second
	DefaultLanguage   = "en"
)

type Config struct {
	API        APIConfig        `mapstructure:"api"`
	StateDir   string           `mapstructure:"state_dir"`
	Log        LogConfig        `mapstructure:"log"`
	CryptoKey  string           `mapstructure:"crypto_key"`
	Transcribe TranscribeConfig `mapstructure:"transcribe"`
	Export     ExportConfig     `mapstructure:"export"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type TranscribeConfig struct {
	Language string `mapstructure:"language"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// envKeys maps config keys to the variables that override them.
var envKeys = map[string]string{
	"api.base_url":        "VOICEQUIZ_API_URL",
	"api.timeout":         "VOICEQUIZ_API_TIMEOUT",
	"state_dir":           "VOICEQUIZ_STATE_DIR",
	"log.level":           "VOICEQUIZ_LOG_LEVEL",
	"log.file":            "VOICEQUIZ_LOG_FILE",
	"crypto_key":          "VOICEQUIZ_CRYPTO_KEY",
	"transcribe.language": "VOICEQUIZ_LANGUAGE",
	"export.dir":          "VOICEQUIZ_EXPORT_DIR",
}

func bindEnv(v *viper.Viper, keys map[string]string) error {
	for key, env := range keys {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s: %w", env, err)
		}
	}
	return nil
}

// Load reads .env, an optional yaml file and VOICEQUIZ_* variables, in
// increasing order of precedence. An empty path means
// <state_dir>/config.yaml, which may be absent.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("VOICEQUIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.base_url", DefaultAPIBaseURL)
	v.SetDefault("api.timeout", DefaultTimeout)
	v.SetDefault("state_dir", defaultStateDir())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("crypto_key", "")
	v.SetDefault("transcribe.language", DefaultLanguage)
	v.SetDefault("export.dir", ".")

	if err := bindEnv(v, envKeys); err != nil {
		return nil, err
	}

	if path == "" {
		path = filepath.Join(v.GetString("state_dir"), "config.yaml")
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(cfg.StateDir, "voicequiz.log")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api base url %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return errors.New("api timeout must be positive")
	}
	if c.StateDir == "" {
		return errors.New("state dir is required")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if c.CryptoKey != "" && len(c.CryptoKey) != KeySize {
		return fmt.Errorf("crypto key must be %d bytes", KeySize)
	}
	if c.Transcribe.Language == "" {
		return errors.New("transcribe language is required")
	}
	return nil
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".voicequiz"
	}
	return filepath.Join(home, ".voicequiz")
}
