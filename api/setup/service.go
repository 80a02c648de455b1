// Package setup implements the first-run configuration wizard: the
// connectivity test, database provisioning, schema apply, durable
// configuration and demo seeding.
package setup

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/sociable/sociableapi/api/user"
	"github.com/sociable/sociableapi/database"
	"github.com/sociable/sociableapi/shared/zaplogger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service runs the setup lifecycle. The mutex serializes CompleteSetup
// against itself and against the configured-state reads, since Echo
// dispatches handlers on concurrent goroutines.
type Service struct {
	mu          sync.Mutex
	store       *ConfigStore
	provisioner *Provisioner
	provider    *database.Provider
	pgLogLevel  string
}

func NewService(store *ConfigStore, provisioner *Provisioner, provider *database.Provider, pgLogLevel string) *Service {
	return &Service{
		store:       store,
		provisioner: provisioner,
		provider:    provider,
		pgLogLevel:  pgLogLevel,
	}
}

// IsConfigured reports the binary configured state used by the gate middleware
func (s *Service) IsConfigured() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isConfigured()
}

func (s *Service) isConfigured() bool {
	return s.store.Resolve(os.Getenv("DATABASE_URL")).Configured
}

// Status returns the payload for GET /api/setup/status
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved := s.store.Resolve(os.Getenv("DATABASE_URL"))
	return Status{IsConfigured: resolved.Configured, SiteName: resolved.SiteName}
}

// TestConnection verifies the supplied credentials without mutating state
func (s *Service) TestConnection(req TestConnectionRequest) error {
	if req.DBHost == "" || req.DBPort <= 0 || req.DBName == "" || req.DBUser == "" {
		return fmt.Errorf("dbHost, dbPort, dbName and dbUser are required")
	}
	return s.provisioner.TestConnection(req)
}

// Bootstrap connects to the configured database at process start. It
// returns false without error when the application is not yet configured.
func (s *Service) Bootstrap() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved := s.store.Resolve(os.Getenv("DATABASE_URL"))
	if !resolved.Configured {
		return false, nil
	}

	db, err := database.ConnectPostgres(resolved.DSN, s.pgLogLevel)
	if err != nil {
		return false, err
	}
	if err := Migrate(db); err != nil {
		return false, err
	}
	if err := Seed(db); err != nil {
		zaplogger.Warn("demo seed failed", zaplogger.Fields{"error": err.Error()})
	}

	s.provider.Set(db)
	return true, nil
}

// CompleteSetup runs the one-time provisioning flow. The configuration
// file is written only after provisioning, the schema apply and the admin
// account have all succeeded, so a failed setup never leaves the app
// claiming configured against an unusable store.
func (s *Service) CompleteSetup(req CompleteSetupRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isConfigured() {
		return fmt.Errorf("application is already configured")
	}

	if err := validateSetupRequest(req); err != nil {
		return err
	}

	dbCfg := DatabaseConfig{
		Host:     req.DBHost,
		Port:     req.DBPort,
		Name:     req.DBName,
		User:     req.DBUser,
		Password: req.DBPassword,
	}

	zaplogger.Info("Running setup")
	if err := s.provisioner.EnsureRoleAndDatabase(dbCfg); err != nil {
		return fmt.Errorf("provisioning failed: %v", err)
	}

	dsn := DSN(dbCfg)
	db, err := database.ConnectPostgres(dsn, s.pgLogLevel)
	if err != nil {
		return fmt.Errorf("connection to provisioned database failed: %v", err)
	}

	return s.finishSetup(db, req, dbCfg, dsn)
}

// finishSetup applies the schema, the demo seed and the admin account
// against the open handle, then persists the configuration and installs
// the live handle. Any error before the file write leaves the app
// reporting unconfigured, so setup can be retried.
func (s *Service) finishSetup(db *gorm.DB, req CompleteSetupRequest, dbCfg DatabaseConfig, dsn string) error {
	if err := Migrate(db); err != nil {
		return fmt.Errorf("schema apply failed: %v", err)
	}
	if err := Seed(db); err != nil {
		zaplogger.Warn("demo seed failed", zaplogger.Fields{"error": err.Error()})
	}
	if err := createAdminAccount(db, req.AdminUsername, req.AdminPassword); err != nil {
		return fmt.Errorf("failed to create admin account: %v", err)
	}

	cfg := &AppConfig{SiteName: req.SiteName, Database: dbCfg, IsSetup: true}
	if err := s.store.Save(cfg); err != nil {
		return fmt.Errorf("failed to write configuration: %v", err)
	}
	os.Setenv("DATABASE_URL", dsn)
	s.provider.Set(db)

	zaplogger.Info("Setup complete", zaplogger.Fields{"siteName": req.SiteName})
	return nil
}

func validateSetupRequest(req CompleteSetupRequest) error {
	switch {
	case strings.TrimSpace(req.SiteName) == "":
		return fmt.Errorf("siteName is required")
	case req.DBHost == "":
		return fmt.Errorf("dbHost is required")
	case req.DBPort <= 0 || req.DBPort > 65535:
		return fmt.Errorf("dbPort must be between 1 and 65535")
	case req.DBName == "":
		return fmt.Errorf("dbName is required")
	case req.DBUser == "":
		return fmt.Errorf("dbUser is required")
	case req.DBPassword == "":
		return fmt.Errorf("dbPassword is required")
	case len(req.AdminUsername) < 3:
		return fmt.Errorf("adminUsername must be at least 3 characters")
	case len(req.AdminPassword) < 6:
		return fmt.Errorf("adminPassword must be at least 6 characters")
	}
	return nil
}

// createAdminAccount inserts the administrator unless the username is
// already taken, which keeps a retried setup from duplicating it.
func createAdminAccount(db *gorm.DB, adminUsername, adminPassword string) error {
	username := adminUsername
	email := adminUsername
	if i := strings.Index(adminUsername, "@"); i > 0 {
		username = adminUsername[:i]
	} else {
		email = adminUsername + "@example.com"
	}

	var count int64
	err := db.Model(&user.UserModel{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&user.UserModel{
		Username:  username,
		Email:     email,
		Password:  string(hashed),
		FirstName: "Admin",
		LastName:  "User",
		IsAdmin:   true,
	}).Error
}
