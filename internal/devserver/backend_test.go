package devserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-eightball/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_UpdateScheduleMerges(t *testing.T) {
	b := NewBackend(Fixtures{
		Schedules: []models.Schedule{{"id": "abc", "name": "old", "cron": "* * * * *"}},
	}, "test")

	got, err := b.UpdateSchedule("abc", models.Schedule{"name": "new", "id": "hijack"})

	require.NoError(t, err)
	assert.Equal(t, models.Schedule{"id": "abc", "name": "new", "cron": "* * * * *"}, got)
	assert.Equal(t, "new", b.Schedules()[0].Name())
}

func TestBackend_UpdateScheduleNotFound(t *testing.T) {
	b := NewBackend(DefaultFixtures(), "test")

	_, err := b.UpdateSchedule("missing", models.Schedule{})
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestBackend_ReturnsCopies(t *testing.T) {
	b := NewBackend(DefaultFixtures(), "test")

	cfg := b.Config()
	cfg["theme"] = "light"
	list := b.Schedules()
	list[0]["name"] = "mutated"

	assert.Equal(t, "dark", b.Config().Theme())
	assert.Equal(t, "Morning oracle", b.Schedules()[0].Name())
}

func TestBackend_Sessions(t *testing.T) {
	b := NewBackend(DefaultFixtures(), "test")

	id := b.NewSession()

	assert.True(t, b.ValidSession(id))
	assert.False(t, b.ValidSession("forged"))
	assert.NotEqual(t, id, b.NewSession())
}

func TestLoadFixtures_EmptyPath(t *testing.T) {
	f, err := LoadFixtures("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFixtures(), f)
}

func TestLoadFixtures_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"config":{"theme":"light"}}`), 0o644))

	f, err := LoadFixtures(path)

	require.NoError(t, err)
	assert.Equal(t, "light", f.Config.Theme())
	assert.Equal(t, DefaultFixtures().Profile, f.Profile)
	assert.Len(t, f.Schedules, 2)
}

func TestLoadFixtures_Errors(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{`), 0o644))
	_, err := LoadFixtures(broken)
	assert.ErrorIs(t, err, ErrInvalidFixtures)

	noID := filepath.Join(dir, "noid.json")
	require.NoError(t, os.WriteFile(noID, []byte(`{"schedules":[{"name":"x"}]}`), 0o644))
	_, err = LoadFixtures(noID)
	assert.ErrorIs(t, err, ErrInvalidFixtures)

	_, err = LoadFixtures(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
