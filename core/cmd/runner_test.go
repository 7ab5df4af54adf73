package cmd

import (
	"context"
	"errors"
	"testing"

	coreconfig "github.com/m3rciful/schedulebot/core/config"
	coretelegram "github.com/m3rciful/schedulebot/core/telegram"
)

type carrier struct{ cfg *coreconfig.Config }

func (c carrier) CoreConfig() *coreconfig.Config { return c.cfg }

type app struct{}

func (app) TelegramRunOptions() (coretelegram.RunOptions, error) {
	return coretelegram.RunOptions{}, nil
}

func TestRunWiresLifecycleHooks(t *testing.T) {
	t.Setenv("SCHEDULEBOT_TEST_CONFIG", "custom.yaml")
	var loadedPath string
	var started, stopped bool

	err := Run(Options{
		ConfigEnvVar: "SCHEDULEBOT_TEST_CONFIG",
		LoadConfig: func(path string) (ConfigCarrier, error) {
			loadedPath = path
			return carrier{cfg: &coreconfig.Config{}}, nil
		},
		Bootstrap:      func(ConfigCarrier) (TelegramApp, error) { return app{}, nil },
		ShutdownLogger: func() error { return nil },
		RunTelegram: func(ctx context.Context, opts coretelegram.RunOptions) error {
			started = opts.OnStart(ctx, coretelegram.Runtime{}) == nil
			stopped = opts.OnStop(ctx, coretelegram.Runtime{}) == nil
			return nil
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if loadedPath != "custom.yaml" || !started || !stopped {
		t.Fatalf("path = %q, started = %v, stopped = %v", loadedPath, started, stopped)
	}
}

func TestRunStopsOnLoadError(t *testing.T) {
	boom := errors.New("no token")
	err := Run(Options{
		LoadConfig: func(string) (ConfigCarrier, error) { return nil, boom },
		Bootstrap:  func(ConfigCarrier) (TelegramApp, error) { t.Fatal("bootstrap must not run"); return nil, nil },
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}

func TestConfigPathDefault(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	if got := (Options{}).ConfigPath(); got != DefaultConfigPath {
		t.Fatalf("ConfigPath = %q", got)
	}
}
