package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/iljeong-app/iljeong/event"
)

type seedFile struct {
	Events []event.Event `json:"events"`
}

// LoadEvents reads a seed file of the form {"events": [...]} and returns the
// records in file order.
func LoadEvents(path string) ([]event.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}
	return seed.Events, nil
}
