// Package migrations содержит SQL-миграции схемы БД, встроенные в бинарник.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
