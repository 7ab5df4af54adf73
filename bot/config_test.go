package bot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m3rciful/schedulebot/schedule"
)

func TestLoadConfigFromYAML(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	for _, key := range []string{"SCHEDULE_BASE_URL", "SCHEDULE_SCHEDULE_BASE_URL", "SCHEDULE_TIMEZONE", "SCHEDULE_SCHEDULE_TIMEZONE", "DB_ENABLED", "DATABASE_DB_ENABLED"} {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { _ = os.Setenv(key, prev) })
			_ = os.Unsetenv(key)
		}
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
telegram:
  run_mode: longpoll
schedule:
  base_url: https://schedule.example.org/
  timezone: Asia/Yekaterinburg
groups:
  - id: ikbo-05-22
    description: evening
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Telegram.RunMode != "longpoll" || cfg.CoreConfig().Telegram.Token != "123:abc" {
		t.Fatalf("telegram = %+v", cfg.Telegram)
	}
	if cfg.Schedule.BaseURL != "https://schedule.example.org" || cfg.Schedule.Location().String() != "Asia/Yekaterinburg" {
		t.Fatalf("schedule = %+v", cfg.Schedule)
	}
	if len(cfg.Groups) != 1 || cfg.Groups[0].Description != "evening" {
		t.Fatalf("groups = %+v", cfg.Groups)
	}
	if cfg.Database.Enabled {
		t.Fatal("database should be off by default")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("SCHEDULE_BASE_URL", "")
	t.Setenv("SCHEDULE_TIMEZONE", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Schedule.BaseURL != schedule.DefaultBaseURL || cfg.Schedule.Timezone != schedule.DefaultTimezone {
		t.Fatalf("schedule = %+v", cfg.Schedule)
	}
	if len(cfg.Groups) != 1 || cfg.Groups[0].ID != schedule.DefaultGroups()[0].ID {
		t.Fatalf("groups = %+v", cfg.Groups)
	}
}

func TestLoadConfigRejectsDuplicateGroups(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "groups:\n  - id: A-1\n  - id: a-1\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected duplicate group error")
	}
}
