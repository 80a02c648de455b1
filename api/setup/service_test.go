package setup

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sociable/sociableapi/api/user"
	"github.com/sociable/sociableapi/database"
	"golang.org/x/crypto/bcrypt"
)

func validRequest() CompleteSetupRequest {
	return CompleteSetupRequest{
		SiteName:      "My Social Network",
		DBHost:        "localhost",
		DBPort:        5432,
		DBName:        "sociable",
		DBUser:        "sociable",
		DBPassword:    "secret",
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}
}

func TestValidateSetupRequest(t *testing.T) {
	if err := validateSetupRequest(validRequest()); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*CompleteSetupRequest)
	}{
		{"blank site name", func(r *CompleteSetupRequest) { r.SiteName = "  " }},
		{"missing host", func(r *CompleteSetupRequest) { r.DBHost = "" }},
		{"zero port", func(r *CompleteSetupRequest) { r.DBPort = 0 }},
		{"port out of range", func(r *CompleteSetupRequest) { r.DBPort = 70000 }},
		{"missing db name", func(r *CompleteSetupRequest) { r.DBName = "" }},
		{"missing db user", func(r *CompleteSetupRequest) { r.DBUser = "" }},
		{"missing db password", func(r *CompleteSetupRequest) { r.DBPassword = "" }},
		{"short admin username", func(r *CompleteSetupRequest) { r.AdminUsername = "ab" }},
		{"short admin password", func(r *CompleteSetupRequest) { r.AdminPassword = "12345" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			if err := validateSetupRequest(req); err == nil {
				t.Error("invalid request accepted")
			}
		})
	}
}

func TestCreateAdminAccount(t *testing.T) {
	db := newTestDB(t)

	if err := createAdminAccount(db, "admin", "admin123"); err != nil {
		t.Fatalf("createAdminAccount returned error: %v", err)
	}

	var admin user.UserModel
	if err := db.Where("username = ?", "admin").First(&admin).Error; err != nil {
		t.Fatalf("admin account not found: %v", err)
	}
	if !admin.IsAdmin {
		t.Error("admin account lacks the admin flag")
	}
	if admin.Email != "admin@example.com" {
		t.Errorf("derived email = %q, want admin@example.com", admin.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")); err != nil {
		t.Error("stored password hash does not match the admin password")
	}
}

func TestCreateAdminAccountFromEmail(t *testing.T) {
	db := newTestDB(t)

	if err := createAdminAccount(db, "boss@corp.com", "admin123"); err != nil {
		t.Fatalf("createAdminAccount returned error: %v", err)
	}

	var admin user.UserModel
	if err := db.Where("email = ?", "boss@corp.com").First(&admin).Error; err != nil {
		t.Fatalf("admin account not found: %v", err)
	}
	if admin.Username != "boss" {
		t.Errorf("derived username = %q, want boss", admin.Username)
	}
}

func newTestService(t *testing.T, configPath string) (*Service, *database.Provider) {
	t.Helper()
	provider := database.NewProvider()
	s := NewService(NewConfigStore(configPath), NewProvisioner("postgres", "postgres"), provider, "silent")
	return s, provider
}

func TestFinishSetupFailureLeavesUnconfigured(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	configPath := filepath.Join(t.TempDir(), "app-config.json")
	s, provider := newTestService(t, configPath)
	db := newTestDB(t)

	// Reject the admin insert so the last pre-persist step fails
	err := db.Exec(`CREATE TRIGGER reject_admin BEFORE INSERT ON users
		WHEN NEW.username = 'admin'
		BEGIN SELECT RAISE(ABORT, 'insert rejected'); END`).Error
	if err != nil {
		t.Fatalf("failed to create trigger: %v", err)
	}

	req := validRequest()
	dbCfg := DatabaseConfig{Host: req.DBHost, Port: req.DBPort, Name: req.DBName, User: req.DBUser, Password: req.DBPassword}
	if err := s.finishSetup(db, req, dbCfg, DSN(dbCfg)); err == nil {
		t.Fatal("finishSetup succeeded with a failing admin insert")
	}

	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Error("configuration file was written despite the failure")
	}
	if s.IsConfigured() {
		t.Error("IsConfigured reports true after a failed setup")
	}
	if got := os.Getenv("DATABASE_URL"); got != "" {
		t.Errorf("DATABASE_URL = %q after a failed setup, want empty", got)
	}
	if provider.Ready() {
		t.Error("database handle installed despite the failure")
	}
}

func TestFinishSetupPersistsConfigurationLast(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	configPath := filepath.Join(t.TempDir(), "app-config.json")
	s, provider := newTestService(t, configPath)
	db := newTestDB(t)

	req := validRequest()
	dbCfg := DatabaseConfig{Host: req.DBHost, Port: req.DBPort, Name: req.DBName, User: req.DBUser, Password: req.DBPassword}
	dsn := DSN(dbCfg)
	if err := s.finishSetup(db, req, dbCfg, dsn); err != nil {
		t.Fatalf("finishSetup returned error: %v", err)
	}

	cfg, err := NewConfigStore(configPath).Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.IsSetup || cfg.SiteName != req.SiteName {
		t.Errorf("persisted config = %+v, want isSetup with site name %q", cfg, req.SiteName)
	}
	if !s.IsConfigured() {
		t.Error("IsConfigured reports false after a completed setup")
	}
	if got := os.Getenv("DATABASE_URL"); got != dsn {
		t.Errorf("DATABASE_URL = %q, want %q", got, dsn)
	}
	if !provider.Ready() {
		t.Error("database handle not installed after a completed setup")
	}

	// 3 demo users plus the admin account
	if got := countRows(t, db, &user.UserModel{}); got != 4 {
		t.Errorf("users count = %d, want 4", got)
	}
}

func TestCompleteSetupRejectedWhenConfigured(t *testing.T) {
	t.Run("from config file", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		configPath := filepath.Join(t.TempDir(), "app-config.json")
		if err := NewConfigStore(configPath).Save(testConfig()); err != nil {
			t.Fatalf("Save returned error: %v", err)
		}
		before, err := os.ReadFile(configPath)
		if err != nil {
			t.Fatalf("ReadFile returned error: %v", err)
		}

		s, provider := newTestService(t, configPath)
		if err := s.CompleteSetup(validRequest()); err == nil {
			t.Fatal("CompleteSetup succeeded on a configured instance")
		}

		after, err := os.ReadFile(configPath)
		if err != nil {
			t.Fatalf("ReadFile returned error: %v", err)
		}
		if !bytes.Equal(before, after) {
			t.Error("configuration file changed by the rejected call")
		}
		if provider.Ready() {
			t.Error("database handle installed by the rejected call")
		}
	})

	t.Run("from DATABASE_URL", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "host=elsewhere dbname=other")
		configPath := filepath.Join(t.TempDir(), "app-config.json")

		s, _ := newTestService(t, configPath)
		if err := s.CompleteSetup(validRequest()); err == nil {
			t.Fatal("CompleteSetup succeeded with DATABASE_URL set")
		}
		if _, err := os.Stat(configPath); !os.IsNotExist(err) {
			t.Error("configuration file written by the rejected call")
		}
	})
}

func TestCompleteSetupConcurrentCallsRejected(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	configPath := filepath.Join(t.TempDir(), "app-config.json")
	if err := NewConfigStore(configPath).Save(testConfig()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	before, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}

	s, _ := newTestService(t, configPath)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.CompleteSetup(validRequest())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err == nil {
			t.Errorf("call %d succeeded on a configured instance", i)
		}
	}

	after, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Error("configuration file changed by concurrent rejected calls")
	}
}

func TestCreateAdminAccountIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := createAdminAccount(db, "admin", "admin123"); err != nil {
		t.Fatalf("createAdminAccount returned error: %v", err)
	}
	if err := createAdminAccount(db, "admin", "other-pass"); err != nil {
		t.Fatalf("second createAdminAccount returned error: %v", err)
	}

	if got := countRows(t, db, &user.UserModel{}); got != 1 {
		t.Errorf("admin count = %d, want 1", got)
	}
}
