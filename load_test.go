package usertimer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDescriptorFormats(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatYAML, `
name: backup
schedule: daily
executable: /usr/bin/backup.sh
recurring: true
enable_at_login: true
start_after_create: true
`},
		{FormatTOML, `
name = "backup"
schedule = "daily"
executable = "/usr/bin/backup.sh"
recurring = true
enable_at_login = true
start_after_create = true
`},
		{FormatJSON, `{
  "name": "backup",
  "schedule": "daily",
  "executable": "/usr/bin/backup.sh",
  "recurring": true,
  "enable_at_login": true,
  "start_after_create": true
}`},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			d, err := ParseDescriptor([]byte(tt.data), tt.format)
			require.NoError(t, err)

			require.NotNil(t, d.Name)
			assert.Equal(t, "backup", *d.Name)
			require.NotNil(t, d.Executable)
			assert.Equal(t, "/usr/bin/backup.sh", *d.Executable)
			require.NotNil(t, d.Recurring)
			assert.True(t, *d.Recurring)
			assert.Nil(t, d.OnCalendar)
			assert.Nil(t, d.Description)

			c, err := Normalize(d)
			require.NoError(t, err)
			assert.Equal(t, TriggerUnitActive, c.Trigger)
			assert.True(t, c.EnableAtLogin)
			assert.True(t, c.StartAfterCreate)
		})
	}
}

func TestParseDescriptorRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatYAML, "name: x\nrecuring: true\n"},
		{FormatTOML, "name = \"x\"\nrecuring = true\n"},
		{FormatJSON, `{"name": "x", "recuring": true}`},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			_, err := ParseDescriptor([]byte(tt.data), tt.format)
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestFormatForPath(t *testing.T) {
	for path, want := range map[string]Format{
		"a.yaml":  FormatYAML,
		"a.YML":   FormatYAML,
		"b.toml":  FormatTOML,
		"c.json":  FormatJSON,
		"d/e.yml": FormatYAML,
	} {
		got, err := FormatForPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatForPath("timer.ini")
	assert.ErrorIs(t, err, ErrConfig)
}

func TestLoadDescriptor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "once.yaml")
	data := "name: once\nalready_made_service: true\nservice: existing\nschedule: now\non_calendar: true\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	d, err := LoadDescriptor(path)
	require.NoError(t, err)

	c, err := Normalize(d)
	require.NoError(t, err)
	assert.Equal(t, "existing", c.ServiceUnit)
	assert.Equal(t, TriggerCalendar, c.Trigger)

	_, err = LoadDescriptor(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
