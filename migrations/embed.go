// Package migrations embeds the versioned schema files for every
// supported database backend. Each backend has its own subdirectory
// of NNN_name.sql files applied in version order.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
