// Package basic holds code under test for the basic deep-mocking scenario.
package basic

import "fmt"

// Store is the dependency surface the code under test needs.
type Store struct {
	Load   func(key string) (string, error)
	Save   func(key, value string) error
	Delete func(key string) error
}

// Archive copies a value from one key to another, then deletes the original.
func Archive(store *Store, from, to string) error {
	value, err := store.Load(from)
	if err != nil {
		return fmt.Errorf("loading %s: %w", from, err)
	}

	if err := store.Save(to, value); err != nil {
		return fmt.Errorf("saving %s: %w", to, err)
	}

	if err := store.Delete(from); err != nil {
		return fmt.Errorf("deleting %s: %w", from, err)
	}

	return nil
}
