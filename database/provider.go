// Package database manages the Postgres and Redis connections
package database

import (
	"sync/atomic"

	"gorm.io/gorm"
)

// Provider hands out the live gorm handle.
//
// The handle is nil until either a configured DSN is found at startup or
// the setup wizard completes. Swapping it in post-setup lets the API serve
// traffic without a process restart.
type Provider struct {
	db atomic.Pointer[gorm.DB]
}

// NewProvider returns an empty Provider
func NewProvider() *Provider {
	return &Provider{}
}

// Set installs the live database handle
func (p *Provider) Set(db *gorm.DB) {
	p.db.Store(db)
}

// Get returns the live database handle, or nil when unconfigured
func (p *Provider) Get() *gorm.DB {
	return p.db.Load()
}

// Ready reports whether a database handle has been installed
func (p *Provider) Ready() bool {
	return p.db.Load() != nil
}
