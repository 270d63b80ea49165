package secret

import (
	"errors"
	"fmt"
)

// ErrReadOnly is returned by stores that cannot persist values.
var ErrReadOnly = errors.New("secret store is read-only")

// SecretStore holds sensitive values such as the mirror database password.
// Implementations: EnvStore (process environment) and KeychainStore (macOS).
type SecretStore interface {
	// Set stores a secret value under the given key.
	Set(key string, value []byte) error

	// Get retrieves the secret value for the given key.
	// Returns an empty slice and nil error if the key does not exist.
	Get(key string) ([]byte, error)

	// Delete removes the secret for the given key.
	Delete(key string) error
}

// Chain reads from each store in turn and returns the first non-empty value.
// Writes go to the last store.
type Chain []SecretStore

func (c Chain) Get(key string) ([]byte, error) {
	for _, s := range c {
		v, err := s.Get(key)
		if err != nil {
			return nil, err
		}
		if len(v) > 0 {
			return v, nil
		}
	}
	return nil, nil
}

func (c Chain) Set(key string, value []byte) error {
	if len(c) == 0 {
		return ErrReadOnly
	}
	return c[len(c)-1].Set(key, value)
}

func (c Chain) Delete(key string) error {
	if len(c) == 0 {
		return ErrReadOnly
	}
	return c[len(c)-1].Delete(key)
}

// Lookup returns the secret for key as a string. An empty key yields "".
func Lookup(s SecretStore, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	v, err := s.Get(key)
	if err != nil {
		return "", fmt.Errorf("secret %s: %w", key, err)
	}
	return string(v), nil
}
