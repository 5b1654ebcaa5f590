// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package data embeds the SQL migrations so the API binary can migrate
// without a checkout next to it.
package data

import "embed"

// MigrationsDir is the directory inside [Migrations] holding the .sql files.
const MigrationsDir = "migrations"

//go:embed migrations/*.sql
var Migrations embed.FS
