package dbclient

import (
	"net"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"econmap/internal/domain"
)

// sqliteDSN opens Host as a local file. WAL lets mapgen read while a run writes.
func sqliteDSN(conn *domain.MirrorConnection) string {
	return conn.Host + "?_journal_mode=WAL&_busy_timeout=5000"
}

func mysqlDSN(conn *domain.MirrorConnection, password string) string {
	cfg := mysql.NewConfig()
	cfg.User = conn.Username
	cfg.Passwd = password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(conn.Host, strconv.Itoa(portOr(conn.Port, 3306)))
	cfg.DBName = conn.Database
	cfg.ParseTime = true
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	if conn.SSLMode == "require" {
		cfg.TLSConfig = "true"
	}
	return cfg.FormatDSN()
}

// postgresDSN builds a lib/pq key/value string. Values are quoted so
// passwords with spaces or quotes survive.
func postgresDSN(conn *domain.MirrorConnection, password string) string {
	sslMode := conn.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	kv := [][2]string{
		{"host", conn.Host},
		{"port", strconv.Itoa(portOr(conn.Port, 5432))},
		{"user", conn.Username},
		{"password", password},
		{"dbname", conn.Database},
		{"sslmode", sslMode},
	}
	parts := make([]string, 0, len(kv))
	for _, p := range kv {
		if p[1] == "" {
			continue
		}
		parts = append(parts, p[0]+"="+pqQuote(p[1]))
	}
	return strings.Join(parts, " ")
}

func pqQuote(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(v) + "'"
}

func portOr(port, def int) int {
	if port == 0 {
		return def
	}
	return port
}
