package config

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the in-memory store backing every collection. The shared-cache
// DSN keeps one database for the whole process and the pool is pinned to a
// single connection, so each request's reads and appends serialize the same
// way a single-threaded server would. Nothing touches disk; a restart resets
// all state.
func InitDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Port returns the listen port from the environment, defaulting to 4000.
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "4000"
}
