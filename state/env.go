package state

import "os"

// EnvOptions configure an EnvStore.
type EnvOptions struct {
	// Persist, when set, mirrors every Write and Clear into an external
	// environment mechanism (for example `azd env set`). Clears are passed
	// through with an empty value.
	Persist func(key, value string) error
}

// EnvStore reads and writes identifiers through the process environment.
// Writes are only visible to this process and its children unless a Persist
// hook mirrors them somewhere durable.
type EnvStore struct {
	persist func(key, value string) error
}

// NewEnvStore creates an environment-backed store.
func NewEnvStore(optFns ...func(o *EnvOptions)) *EnvStore {
	opts := EnvOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &EnvStore{persist: opts.Persist}
}

// Read looks the key up in the process environment.
func (s *EnvStore) Read(key string) (string, bool) {
	v := os.Getenv(key)
	if v == "" {
		return "", false
	}
	return v, true
}

// Write sets the key in the process environment and mirrors it through the
// Persist hook when one is configured.
func (s *EnvStore) Write(key, value string) error {
	if err := os.Setenv(key, value); err != nil {
		return err
	}
	if s.persist != nil {
		return s.persist(key, value)
	}
	return nil
}

// Clear unsets the key, mirroring the removal as an empty value.
func (s *EnvStore) Clear(key string) error {
	if err := os.Unsetenv(key); err != nil {
		return err
	}
	if s.persist != nil {
		return s.persist(key, "")
	}
	return nil
}
