package config

import (
	"os"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/creasty/defaults"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

type Config struct {
	DatabaseBusyTimeout       time.Duration `koanf:"database_busy_timeout" default:"5s"`
	DatabaseConnectRetryCount int           `koanf:"database_connect_retry_count" default:"5"`
	DatabaseConnectRetryDelay time.Duration `koanf:"database_connect_retry_delay" default:"2s"`
	DatabaseDebug             bool          `koanf:"database_debug"`
	DatabaseFilePath          string        `koanf:"database_file_path" required:"true"`
	DatabaseMaxRetries        int           `koanf:"database_max_retries" default:"3"`
	Hostname                  string        `koanf:"hostname"`
	ImportFailedDir           string        `koanf:"import_failed_dir" required:"true"`
	ImportIncomingDir         string        `koanf:"import_incoming_dir" required:"true"`
	ImportProcessedDir        string        `koanf:"import_processed_dir" required:"true"`
	ImportSources             []string      `koanf:"import_sources"`
	ImportUpdateExisting      *bool         `koanf:"import_update_existing"`
}

const (
	environmentENV = "ENVIRONMENT"
	configFileENV  = "CONFIG_FILE"
)

// defaultImportSources are the publisher/feed tokens matched against incoming
// filenames to detect where a file came from.
var defaultImportSources = []string{
	"APONIX",
	"Hachette",
	"HarperCollins",
	"Ingram",
	"Macmillan",
	"PenguinRandomHouse",
	"SimonSchuster",
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	switch os.Getenv(environmentENV) {
	case "development", "":
		loadDevelopmentConfig(cfg)
	case "test":
		loadTestConfig(cfg)
	case "production":
	}

	k := koanf.New(".")

	configFile := os.Getenv(configFileENV)
	if configFile == "" {
		configFile = "./config.yaml"
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrap(err, "failed to load config file")
		}
	}

	// Environment variables override the config file: DATABASE_FILE_PATH maps
	// onto database_file_path.
	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	if cfg.Hostname == "" {
		hostname, err := os.Hostname()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		cfg.Hostname = hostname
	}
	if len(cfg.ImportSources) == 0 {
		cfg.ImportSources = defaultImportSources
	}
	if cfg.ImportUpdateExisting == nil {
		t := true
		cfg.ImportUpdateExisting = &t
	}

	if err := checkRequired(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// checkRequired verifies that every field tagged required has a value, and
// reports the missing ones with both their env var and config file names.
func checkRequired(cfg *Config) error {
	var missing []string

	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Tag.Get("required") != "true" {
			continue
		}
		if v.Field(i).IsZero() {
			snake := toSnakeCase(field.Name)
			missing = append(missing, strings.ToUpper(snake)+" ("+snake+")")
		}
	}

	if len(missing) > 0 {
		return errors.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	return nil
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
