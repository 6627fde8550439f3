package fixtures

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"resto_pos_backend/internal/models"
)

// Fixture file names expected under the fixtures directory.
const (
	MenuFile         = "menu-data.json"
	SalesHistoryFile = "sales-history.json"
	ReservationsFile = "reservations.json"
)

// Store holds the decoded fixture data for the lifetime of the process.
// Everything in it is read-only after Load returns.
type Store struct {
	Menu         models.MenuData
	SalesHistory []models.OrderRecord
	Reservations models.ReservationData
}

var store *Store

// Init loads all fixture files from dir into the global store, terminating
// the process on failure the same way a missing database would.
func Init(dir string) {
	s, err := Load(dir)
	if err != nil {
		log.Fatalf("Error loading fixtures: %q", err)
	}
	store = s
	fmt.Println("Successfully loaded fixture data!")
}

// Load reads and decodes the three fixture files from dir.
func Load(dir string) (*Store, error) {
	s := &Store{}

	if err := readJSON(filepath.Join(dir, MenuFile), &s.Menu); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, SalesHistoryFile), &s.SalesHistory); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, ReservationsFile), &s.Reservations); err != nil {
		return nil, err
	}

	return s, nil
}

func readJSON(path string, v interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read fixture file %s: %w", path, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("could not decode fixture file %s: %w", path, err)
	}
	return nil
}

// Get returns the global fixture store.
func Get() *Store {
	return store
}
