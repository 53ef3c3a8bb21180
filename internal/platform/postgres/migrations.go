package postgres

import "embed"

// MigrationsFS embeds the goose migration scripts so a deployed binary
// needs no migration files on disk.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

// MigrationsDir is the path of the migration scripts inside MigrationsFS.
const MigrationsDir = "migrations"
