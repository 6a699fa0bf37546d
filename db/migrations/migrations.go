package migrations

import "embed"

// FS embeds the SQL migration files stored in this directory. The
// golang-migrate library reads them through the iofs driver when applying
// migrations on startup.
//
//go:embed *.sql
var FS embed.FS

// Version is the newest schema version shipped with this build.
const Version = 1
