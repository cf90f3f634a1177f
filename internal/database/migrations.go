package database

import "embed"

// Migrations holds the embedded goose migration files. cmd/setup applies
// them with goose; the integration test helpers execute them directly.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the path of the migration files inside Migrations.
const MigrationsDir = "migrations"
