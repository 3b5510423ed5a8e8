package usertimer

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/coreos/go-systemd/v22/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNormalize(t *testing.T, d Descriptor) *TimerConfig {
	t.Helper()
	c, err := Normalize(d)
	require.NoError(t, err)
	return c
}

func timerOptions(t *testing.T, text string) []*unit.UnitOption {
	t.Helper()
	opts, err := unit.DeserializeOptions(strings.NewReader(text))
	require.NoError(t, err)
	return opts
}

func TestGenerateBackupUnits(t *testing.T) {
	c := mustNormalize(t, Descriptor{
		Name:             String("backup"),
		Schedule:         String("daily"),
		Recurring:        Bool(true),
		Executable:       String("/usr/bin/backup.sh"),
		EnableAtLogin:    Bool(true),
		StartAfterCreate: Bool(true),
	})

	u := Generate(c)
	require.True(t, u.HasService())

	assert.Equal(t, "[Unit]\n"+
		"\n"+
		"[Service]\n"+
		"Type=oneshot\n"+
		"ExecStart=/bin/sh -c '/usr/bin/backup.sh'\n"+
		"Restart=no\n"+
		"\n"+
		"[Install]\n"+
		"WantedBy=default.target\n", u.Service)

	assert.Equal(t, "[Unit]\n"+
		"Description=Timer for backup\n"+
		"\n"+
		"[Timer]\n"+
		"Unit=backup.service\n"+
		"OnUnitActiveSec=daily\n"+
		"Persistent=no\n"+
		"RemainAfterElapse=yes\n"+
		"\n"+
		"[Install]\n"+
		"WantedBy=timers.target\n", u.Timer)
}

func TestGenerateServiceType(t *testing.T) {
	tests := []struct {
		normal      bool
		wantType    string
		wantRestart string
	}{
		{true, "Type=simple", "Restart=on-failure"},
		{false, "Type=oneshot", "Restart=no"},
	}

	for _, tt := range tests {
		t.Run(tt.wantType, func(t *testing.T) {
			svc := GenerateService(mustNormalize(t, Descriptor{
				Executable:    String("sleep 1"),
				NormalService: Bool(tt.normal),
			}))

			assert.Equal(t, 1, strings.Count(svc, "\nType="))
			assert.Equal(t, 1, strings.Count(svc, "\nRestart="))
			assert.Contains(t, svc, "\n"+tt.wantType+"\n")
			assert.Contains(t, svc, "\n"+tt.wantRestart+"\n")
		})
	}
}

func TestGenerateDescription(t *testing.T) {
	with := GenerateService(mustNormalize(t, Descriptor{
		Executable:  String("true"),
		Description: String("Nightly backup"),
	}))
	assert.True(t, strings.HasPrefix(with, "[Unit]\nDescription=Nightly backup\n\n[Service]\n"))

	without := GenerateService(mustNormalize(t, Descriptor{
		Executable:  String("true"),
		Description: String(""),
	}))
	assert.NotContains(t, without, "Description")
	assert.True(t, strings.HasPrefix(without, "[Unit]\n\n[Service]\n"))
}

func TestGenerateSingleTrigger(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
		key  string
	}{
		{"calendar wins", Descriptor{OnCalendar: Bool(true), FromBoot: Bool(true), Recurring: Bool(true)}, "OnCalendar"},
		{"boot over recurring", Descriptor{FromBoot: Bool(true), Recurring: Bool(true)}, "OnBootSec"},
		{"recurring", Descriptor{Recurring: Bool(true)}, "OnUnitActiveSec"},
		{"default", Descriptor{}, "OnActiveSec"},
	}

	triggerKeys := map[string]bool{"OnCalendar": true, "OnBootSec": true, "OnUnitActiveSec": true, "OnActiveSec": true}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.d.Executable = String("true")
			tt.d.Schedule = String("5min")

			var found []string
			for _, opt := range timerOptions(t, GenerateTimer(mustNormalize(t, tt.d))) {
				if opt.Section == "Timer" && triggerKeys[opt.Name] {
					found = append(found, opt.Name+"="+opt.Value)
				}
			}
			assert.Equal(t, []string{tt.key + "=5min"}, found)
		})
	}
}

func TestGenerateTimerFlags(t *testing.T) {
	timer := GenerateTimer(mustNormalize(t, Descriptor{
		Executable:   String("true"),
		ExecIfMissed: Bool(true),
	}))
	assert.Contains(t, timer, "\nPersistent=yes\n")
	assert.Contains(t, timer, "\nRemainAfterElapse=no\n")
}

func TestGenerateExistingService(t *testing.T) {
	c := mustNormalize(t, Descriptor{
		Name:               String("once"),
		AlreadyMadeService: Bool(true),
		Service:            String("existing"),
		Schedule:           String("now"),
		OnCalendar:         Bool(true),
	})

	u := Generate(c)
	assert.False(t, u.HasService())
	assert.Empty(t, u.Service)

	info, err := ParseTimer(strings.NewReader(u.Timer))
	require.NoError(t, err)
	assert.Equal(t, "existing.service", info.Unit)
	assert.Equal(t, TriggerCalendar, info.Trigger)
	assert.Equal(t, "now", info.Schedule)
	assert.Contains(t, u.Timer, "\nOnCalendar=now\n")
}

func TestShellSingleQuote(t *testing.T) {
	assert.Equal(t, `'plain'`, shellSingleQuote("plain"))
	assert.Equal(t, `'it'\''s'`, shellSingleQuote("it's"))
	assert.Equal(t, `''`, shellSingleQuote(""))
}

func TestExecStartSurvivesShell(t *testing.T) {
	RequireTool(t, "sh")

	inputs := []string{
		"/usr/bin/backup.sh",
		"echo 'hello world'",
		"it's a 'quoted' thing",
		"'",
		"''",
		`printf "%s\n" $HOME; echo \'done\'`,
		"a\tb  c",
	}

	const prefix = "ExecStart=/bin/sh -c "
	for _, in := range inputs {
		svc := GenerateService(mustNormalize(t, Descriptor{Executable: String(in)}))

		var quoted string
		for _, line := range strings.Split(svc, "\n") {
			if strings.HasPrefix(line, prefix) {
				quoted = strings.TrimPrefix(line, prefix)
			}
		}
		require.NotEmpty(t, quoted, in)

		out, err := exec.Command("sh", "-c", "printf '%s' "+quoted).Output()
		require.NoError(t, err, in)
		assert.Equal(t, in, string(out))
	}
}
