// Package db embeds the storefront PostgreSQL schema.
package db

import _ "embed"

// Schema creates the catalog, discount, order and API key tables. Every
// statement is idempotent, so it is applied on each startup.
//
//go:embed migrations/001_schema.sql
var Schema string
