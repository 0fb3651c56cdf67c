// Package provision creates the store's database, role and grants, and
// writes the .env artifact the other binaries load at startup.
package provision

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gorm.io/gorm"
)

// Args are the provisioning parameters taken from the command line.
type Args struct {
	DBName     string
	DBUser     string
	DBPassword string
	APIKey     string
}

// Usage is printed when the argument count is wrong.
const Usage = "usage: provision <db-name> <db-user> <db-password> <api-key>"

// ParseArgs validates the positional arguments. Exactly four are required;
// anything else fails before any state is touched.
func ParseArgs(args []string) (Args, error) {
	if len(args) != 4 {
		return Args{}, fmt.Errorf("expected 4 arguments, got %d\n%s", len(args), Usage)
	}
	for i, name := range []string{"db-name", "db-user", "db-password", "api-key"} {
		if strings.TrimSpace(args[i]) == "" {
			return Args{}, fmt.Errorf("%s must not be empty\n%s", name, Usage)
		}
	}
	return Args{
		DBName:     args[0],
		DBUser:     args[1],
		DBPassword: args[2],
		APIKey:     args[3],
	}, nil
}

// quoteIdent quotes a PostgreSQL identifier.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// quoteLiteral quotes a PostgreSQL string literal.
func quoteLiteral(s string) string {
	return `'` + strings.ReplaceAll(s, `'`, `''`) + `'`
}

// Statements renders the DDL that creates the role and database and grants
// the role full access plus server-side bulk loading.
func Statements(a Args) []string {
	role := quoteIdent(a.DBUser)
	name := quoteIdent(a.DBName)
	return []string{
		fmt.Sprintf("CREATE ROLE %s LOGIN PASSWORD %s", role, quoteLiteral(a.DBPassword)),
		fmt.Sprintf("CREATE DATABASE %s OWNER %s", name, role),
		fmt.Sprintf("GRANT ALL PRIVILEGES ON DATABASE %s TO %s", name, role),
		// Server-side COPY for bulk tick loads.
		fmt.Sprintf("GRANT pg_read_server_files TO %s", role),
	}
}

// Apply executes the provisioning statements on an admin connection.
func Apply(ctx context.Context, db *gorm.DB, statements []string) error {
	for _, stmt := range statements {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("execute %q: %w", stmt, err)
		}
	}
	return nil
}

// EnvFile renders the .env artifact consumed by the server and collector.
func EnvFile(a Args, host, port string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "DB_HOST=%s\n", host)
	fmt.Fprintf(&b, "DB_PORT=%s\n", port)
	fmt.Fprintf(&b, "DB_NAME=%s\n", a.DBName)
	fmt.Fprintf(&b, "DB_USER=%s\n", a.DBUser)
	fmt.Fprintf(&b, "DB_PASSWORD=%s\n", a.DBPassword)
	fmt.Fprintf(&b, "POLYGON_API_KEY=%s\n", a.APIKey)
	return b.String()
}

// WriteEnvFile writes the .env artifact with owner-only permissions; it
// carries credentials.
func WriteEnvFile(path string, a Args, host, port string) error {
	return os.WriteFile(path, []byte(EnvFile(a, host, port)), 0o600)
}
