package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/homevista/homevista-backend/internal/domain"
)

// LoadSeedFile reads the startup property records from a JSON file holding
// an ordered array of objects. A missing file yields an empty set, not an
// error: the service starts with an empty store.
func LoadSeedFile(path string) ([]domain.Property, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}

	var records []domain.Property
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return records, nil
}
