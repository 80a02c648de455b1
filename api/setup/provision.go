package setup

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/sociable/sociableapi/shared/zaplogger"
)

// connectTimeout bounds the wizard's connectivity test and provisioning
// statements so a bad host fails fast instead of hanging the setup page.
const connectTimeout = 10 * time.Second

// maintenanceDB is the database the admin connection targets for
// CREATE ROLE / CREATE DATABASE.
const maintenanceDB = "postgres"

// Provisioner runs the administrative half of setup over database/sql
type Provisioner struct {
	rootUser string
	rootPass string
}

func NewProvisioner(rootUser, rootPass string) *Provisioner {
	return &Provisioner{rootUser: rootUser, rootPass: rootPass}
}

// TestConnection opens a short-lived connection and issues a trivial
// round-trip query. The target database is tried first, then the
// maintenance database, since the target may not exist before setup.
// No state is mutated.
func (p *Provisioner) TestConnection(req TestConnectionRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	targetErr := ping(ctx, DSN(DatabaseConfig{
		Host: req.DBHost, Port: req.DBPort, Name: req.DBName,
		User: req.DBUser, Password: req.DBPassword,
	}))
	if targetErr == nil {
		return nil
	}

	maintErr := ping(ctx, DSN(DatabaseConfig{
		Host: req.DBHost, Port: req.DBPort, Name: maintenanceDB,
		User: req.DBUser, Password: req.DBPassword,
	}))
	if maintErr == nil {
		return nil
	}

	return targetErr
}

func ping(ctx context.Context, dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return err
	}

	var one int
	return db.QueryRowContext(ctx, "SELECT 1").Scan(&one)
}

// EnsureRoleAndDatabase creates the target role and database when absent,
// using explicit catalog existence checks rather than catching
// duplicate-object error codes.
func (p *Provisioner) EnsureRoleAndDatabase(db DatabaseConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	adminDSN := DSN(DatabaseConfig{
		Host: db.Host, Port: db.Port, Name: maintenanceDB,
		User: p.rootUser, Password: p.rootPass,
	})
	admin, err := sql.Open("postgres", adminDSN)
	if err != nil {
		return err
	}
	defer admin.Close()

	if err := admin.PingContext(ctx); err != nil {
		return fmt.Errorf("admin connection failed: %v", err)
	}

	var exists bool
	err = admin.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_roles WHERE rolname = $1)", db.User).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		stmt := fmt.Sprintf("CREATE ROLE %s WITH LOGIN PASSWORD %s",
			pq.QuoteIdentifier(db.User), quoteLiteral(db.Password))
		if _, err := admin.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create role: %v", err)
		}
		zaplogger.Info("  * role created", zaplogger.Fields{"role": db.User})
	}

	err = admin.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", db.Name).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		stmt := fmt.Sprintf("CREATE DATABASE %s OWNER %s",
			pq.QuoteIdentifier(db.Name), pq.QuoteIdentifier(db.User))
		if _, err := admin.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create database: %v", err)
		}
		zaplogger.Info("  * database created", zaplogger.Fields{"database": db.Name})
	}

	grant := fmt.Sprintf("GRANT ALL PRIVILEGES ON DATABASE %s TO %s",
		pq.QuoteIdentifier(db.Name), pq.QuoteIdentifier(db.User))
	if _, err := admin.ExecContext(ctx, grant); err != nil {
		zaplogger.Warn("failed to grant privileges", zaplogger.Fields{"error": err.Error()})
	}

	return nil
}

// quoteLiteral quotes a string for use as a SQL literal
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
