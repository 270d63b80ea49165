package domain

// MirrorDriver represents the engine the final table can be replicated into.
type MirrorDriver string

const (
	MirrorDriverNone     MirrorDriver = ""
	MirrorDriverSQLite   MirrorDriver = "sqlite"
	MirrorDriverPostgres MirrorDriver = "postgres"
	MirrorDriverMySQL    MirrorDriver = "mysql"
	MirrorDriverMongoDB  MirrorDriver = "mongodb"
)

// Valid reports whether d is a known driver (or disabled).
func (d MirrorDriver) Valid() bool {
	switch d {
	case MirrorDriverNone, MirrorDriverSQLite, MirrorDriverPostgres, MirrorDriverMySQL, MirrorDriverMongoDB:
		return true
	}
	return false
}

// MirrorConnection holds the metadata for connecting to the mirror store.
// The password is looked up separately in a SecretStore under PasswordKey.
type MirrorConnection struct {
	Driver      MirrorDriver `json:"driver" yaml:"driver"`
	Host        string       `json:"host" yaml:"host"`         // hostname, URI (mongodb) or file path (sqlite)
	Port        int          `json:"port" yaml:"port"`         // 0 = driver default
	Database    string       `json:"database" yaml:"database"` // empty for sqlite
	Username    string       `json:"username" yaml:"username"`
	SSLMode     string       `json:"sslMode" yaml:"ssl_mode"`
	Table       string       `json:"table" yaml:"table"` // table or collection name
	PasswordKey string       `json:"passwordKey" yaml:"password_key"`
}
