package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "activities-api/internal/common/errors"
)

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()

	require.Len(t, seed, 3)
	require.Contains(t, seed, "Chess Club")
	require.Contains(t, seed, "Programming Class")
	require.Contains(t, seed, "Gym Class")

	for name, activity := range seed {
		assert.NotEmpty(t, activity.Description, name)
		assert.NotEmpty(t, activity.Schedule, name)
		assert.Greater(t, activity.MaxParticipants, 0, name)
	}
}

func TestParseSeed_Valid(t *testing.T) {
	data := []byte(`{
		"Drama Club": {
			"description": "Rehearse and perform the spring play",
			"schedule": "Wednesdays, 4:00 PM - 5:30 PM",
			"max_participants": 15,
			"participants": ["casey@mergington.edu"]
		}
	}`)

	seed, err := ParseSeed(data)

	require.NoError(t, err)
	require.Contains(t, seed, "Drama Club")
	assert.Equal(t, 15, seed["Drama Club"].MaxParticipants)
	assert.Equal(t, []string{"casey@mergington.edu"}, seed["Drama Club"].Participants)
}

func TestParseSeed_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "negative capacity",
			data: `{"Drama Club": {"description": "d", "schedule": "s", "max_participants": -1, "participants": []}}`,
		},
		{
			name: "non-string participant",
			data: `{"Drama Club": {"description": "d", "schedule": "s", "max_participants": 5, "participants": [42]}}`,
		},
		{
			name: "duplicate participant",
			data: `{"Drama Club": {"description": "d", "schedule": "s", "max_participants": 5, "participants": ["a@e.du", "a@e.du"]}}`,
		},
		{
			name: "missing schedule",
			data: `{"Drama Club": {"description": "d", "max_participants": 5, "participants": []}}`,
		},
		{
			name: "unknown field",
			data: `{"Drama Club": {"description": "d", "schedule": "s", "max_participants": 5, "participants": [], "extra": true}}`,
		},
		{
			name: "empty registry",
			data: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed([]byte(tt.data))

			require.Error(t, err)
			apiErr, ok := err.(*apierrors.APIError)
			require.True(t, ok, "expected *APIError, got %T", err)
			assert.Equal(t, apierrors.ErrCodeSeedInvalid, apiErr.Code)
		})
	}
}

func TestParseSeed_MalformedJSON(t *testing.T) {
	_, err := ParseSeed([]byte(`{not json`))
	require.Error(t, err)
}

func TestLoadSeed_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	data := `{
		"Robotics Club": {
			"description": "Build and program competition robots",
			"schedule": "Saturdays, 10:00 AM - 12:00 PM",
			"max_participants": 8,
			"participants": []
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	seed, err := LoadSeed(path)

	require.NoError(t, err)
	assert.Contains(t, seed, "Robotics Club")
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
