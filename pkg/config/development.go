package config

func loadDevelopmentConfig(cfg *Config) {
	cfg.DatabaseDebug = true
	cfg.DatabaseFilePath = "./tmp/data.sqlite"
	cfg.ImportIncomingDir = "./tmp/import/incoming"
	cfg.ImportProcessedDir = "./tmp/import/processed"
	cfg.ImportFailedDir = "./tmp/import/failed"
}

func loadTestConfig(cfg *Config) {
	cfg.DatabaseFilePath = ":memory:"
	cfg.ImportIncomingDir = "./tmp/test/import/incoming"
	cfg.ImportProcessedDir = "./tmp/test/import/processed"
	cfg.ImportFailedDir = "./tmp/test/import/failed"
}

// NewForTest returns a config suitable for tests without reading the
// environment or any config file.
func NewForTest() *Config {
	cfg := &Config{
		DatabaseConnectRetryCount: 1,
		DatabaseMaxRetries:        1,
		Hostname:                  "test",
		ImportSources:             defaultImportSources,
	}
	loadTestConfig(cfg)
	t := true
	cfg.ImportUpdateExisting = &t
	return cfg
}
