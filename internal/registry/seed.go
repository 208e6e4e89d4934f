// internal/registry/seed.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"activities-api/internal/common/errors"
	"activities-api/internal/models"
)

// seedSchema validates a roster seed file before it replaces the
// compiled-in defaults. Every activity needs the four record fields;
// rosters are unique string lists and capacity is a non-negative integer.
const seedSchema = `{
  "type": "object",
  "minProperties": 1,
  "additionalProperties": {
    "type": "object",
    "required": ["description", "schedule", "max_participants", "participants"],
    "additionalProperties": false,
    "properties": {
      "description": {"type": "string"},
      "schedule": {"type": "string"},
      "max_participants": {"type": "integer", "minimum": 0},
      "participants": {
        "type": "array",
        "items": {"type": "string"},
        "uniqueItems": true
      }
    }
  }
}`

// DefaultSeed returns the built-in Mergington High School roster.
func DefaultSeed() map[string]models.Activity {
	return map[string]models.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}

// LoadSeed reads a roster seed from a JSON file and validates it
// against seedSchema.
func LoadSeed(path string) (map[string]models.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed validates and decodes raw seed JSON.
func ParseSeed(data []byte) (map[string]models.Activity, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(seedSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, errors.NewSeedInvalidError(err.Error())
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, errors.NewSeedInvalidError(strings.Join(details, "; "))
	}

	var seed map[string]models.Activity
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, errors.NewSeedInvalidError(err.Error())
	}
	return seed, nil
}
