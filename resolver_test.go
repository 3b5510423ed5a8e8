package usertimer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverPath(t *testing.T) {
	tests := []struct {
		name     string
		env      Environment
		fallback string
		want     string
	}{
		{
			name:     "config home wins",
			env:      Environment{ConfigHome: "/cfg", Home: "/home/u"},
			fallback: "/fb",
			want:     "/cfg/systemd/user",
		},
		{
			name:     "home",
			env:      Environment{Home: "/home/u"},
			fallback: "/fb",
			want:     "/home/u/.config/systemd/user",
		},
		{
			name:     "empty config home falls through",
			env:      Environment{ConfigHome: "", Home: "/home/u"},
			fallback: "/fb",
			want:     "/home/u/.config/systemd/user",
		},
		{
			name:     "relative config home ignored",
			env:      Environment{ConfigHome: "cfg", Home: "/home/u"},
			fallback: "/fb",
			want:     "/home/u/.config/systemd/user",
		},
		{
			name:     "relative home ignored",
			env:      Environment{ConfigHome: "./cfg", Home: "home/u"},
			fallback: "/fb",
			want:     "/fb",
		},
		{
			name:     "fallback",
			env:      Environment{},
			fallback: "/fb",
			want:     "/fb",
		},
		{
			name: "default fallback",
			env:  Environment{},
			want: DefaultFallbackDir(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resolver{Env: tt.env, FallbackDir: tt.fallback}
			assert.Equal(t, tt.want, r.Path())
		})
	}
}

func TestResolverPathDoesNotCreate(t *testing.T) {
	home := t.TempDir()
	r := NewResolver(Environment{Home: home})

	_, err := os.Stat(r.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestResolverEnsureIdempotent(t *testing.T) {
	r := NewResolver(Environment{ConfigHome: t.TempDir()})

	first, err := r.Ensure()
	require.NoError(t, err)

	info, err := os.Stat(first)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	second, err := r.Ensure()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolverEnsureFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	r := NewResolver(Environment{ConfigHome: blocker})
	_, err := r.Ensure()
	require.ErrorIs(t, err, ErrResolve)

	var se *StepError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StepResolve, se.Step)
}

func TestUnitPaths(t *testing.T) {
	assert.Equal(t, "/d/backup.timer", TimerPath("/d", "backup"))
	assert.Equal(t, "/d/backup.service", ServicePath("/d", "backup"))
	assert.Equal(t, "/d/.single_use.txt", LedgerPath("/d"))
}
