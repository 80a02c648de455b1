package setup

import (
	"encoding/json"
	"fmt"
	"os"
)

// ConfigStore reads and writes the durable configuration file
type ConfigStore struct {
	path string
}

func NewConfigStore(path string) *ConfigStore {
	return &ConfigStore{path: path}
}

// Load reads the configuration file; a missing file is reported as os.ErrNotExist
func (cs *ConfigStore) Load() (*AppConfig, error) {
	data, err := os.ReadFile(cs.path)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %v", cs.path, err)
	}
	return &cfg, nil
}

// Save writes the configuration file
func (cs *ConfigStore) Save(cfg *AppConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(cs.path, data, 0600)
}

// Resolved is the outcome of the configured-state resolution
type Resolved struct {
	Configured bool
	DSN        string
	SiteName   string
}

// Resolve collapses the two "configured" signals into one answer with a
// fixed precedence: explicit DATABASE_URL, then the config file with
// isSetup true, otherwise unconfigured.
func (cs *ConfigStore) Resolve(databaseURL string) Resolved {
	siteName := ""
	cfg, err := cs.Load()
	if err == nil {
		siteName = cfg.SiteName
	}

	if databaseURL != "" {
		return Resolved{Configured: true, DSN: databaseURL, SiteName: siteName}
	}

	// A missing or corrupt file is treated as unconfigured; setup can rewrite it.
	if err != nil || !cfg.IsSetup {
		return Resolved{}
	}

	return Resolved{Configured: true, DSN: DSN(cfg.Database), SiteName: cfg.SiteName}
}

// DSN builds a lib/pq style connection string for the given parameters
func DSN(db DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=disable",
		db.Host, db.Port, db.Name, db.User, db.Password)
}
