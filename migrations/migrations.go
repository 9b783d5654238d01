// Package migrations embeds the schema so the binary migrates without the source tree.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS

const PostgresDir = "postgres"
