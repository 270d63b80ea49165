package secret

import (
	"os"
	"strings"
)

// EnvPrefix is prepended to the normalized key when reading the environment.
const EnvPrefix = "ECONMAP_SECRET_"

// EnvStore reads secrets from environment variables. A key such as
// "mirror-db" is looked up as ECONMAP_SECRET_MIRROR_DB.
type EnvStore struct {
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

// NewEnvStore creates an EnvStore over the process environment.
func NewEnvStore() *EnvStore {
	return &EnvStore{Getenv: os.Getenv}
}

// EnvName returns the variable name used for key.
func EnvName(key string) string {
	var b strings.Builder
	b.WriteString(EnvPrefix)
	for _, r := range strings.ToUpper(key) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func (e *EnvStore) Get(key string) ([]byte, error) {
	getenv := e.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(EnvName(key)); v != "" {
		return []byte(v), nil
	}
	return nil, nil
}

func (e *EnvStore) Set(string, []byte) error { return ErrReadOnly }

func (e *EnvStore) Delete(string) error { return ErrReadOnly }
