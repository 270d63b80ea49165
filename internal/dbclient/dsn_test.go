package dbclient

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econmap/internal/domain"
)

func TestMySQLDSN_DefaultsAndTLS(t *testing.T) {
	conn := &domain.MirrorConnection{
		Driver:   domain.MirrorDriverMySQL,
		Host:     "db.local",
		Database: "econ",
		Username: "etl",
		SSLMode:  "require",
	}

	cfg, err := mysql.ParseDSN(mysqlDSN(conn, "p@ss:w/rd"))
	require.NoError(t, err)

	assert.Equal(t, "db.local:3306", cfg.Addr)
	assert.Equal(t, "etl", cfg.User)
	assert.Equal(t, "p@ss:w/rd", cfg.Passwd)
	assert.Equal(t, "econ", cfg.DBName)
	assert.True(t, cfg.ParseTime)
	assert.Equal(t, "true", cfg.TLSConfig)
}

func TestMySQLDSN_ExplicitPortNoTLS(t *testing.T) {
	conn := &domain.MirrorConnection{Host: "10.0.0.5", Port: 3307, Database: "econ", Username: "etl"}

	cfg, err := mysql.ParseDSN(mysqlDSN(conn, ""))
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5:3307", cfg.Addr)
	assert.Empty(t, cfg.TLSConfig)
}

func TestPostgresDSN(t *testing.T) {
	tests := []struct {
		name     string
		conn     domain.MirrorConnection
		password string
		want     string
	}{
		{
			name:     "defaults",
			conn:     domain.MirrorConnection{Host: "localhost", Database: "econ", Username: "etl"},
			password: "secret",
			want:     "host=localhost port=5432 user=etl password=secret dbname=econ sslmode=disable",
		},
		{
			name:     "quoted password",
			conn:     domain.MirrorConnection{Host: "pg", Port: 6543, Database: "econ", Username: "etl", SSLMode: "require"},
			password: `it's a pass\word`,
			want:     `host=pg port=6543 user=etl password='it\'s a pass\\word' dbname=econ sslmode=require`,
		},
		{
			name: "empty password omitted",
			conn: domain.MirrorConnection{Host: "pg", Database: "econ", Username: "etl"},
			want: "host=pg port=5432 user=etl dbname=econ sslmode=disable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, postgresDSN(&tt.conn, tt.password))
		})
	}
}

func TestSQLiteDSN(t *testing.T) {
	conn := &domain.MirrorConnection{Host: "/tmp/mirror.db"}
	assert.Equal(t, "/tmp/mirror.db?_journal_mode=WAL&_busy_timeout=5000", sqliteDSN(conn))
}
