package bot

import (
	"fmt"

	coreconfig "github.com/m3rciful/schedulebot/core/config"
	coredatabase "github.com/m3rciful/schedulebot/core/database"
	"github.com/m3rciful/schedulebot/schedule"
)

// Config is the full bot configuration: the core sections plus the schedule
// provider, the optional database and the group registry.
type Config struct {
	coreconfig.Config `yaml:",inline"`

	Schedule schedule.Config     `yaml:"schedule"`
	Database coredatabase.Config `yaml:"database"`
	// Groups seeds the registry. Empty means the built-in default group.
	Groups []schedule.Group `yaml:"groups" ignored:"true"`
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Config
}

// LoadConfig reads path (optional), .env and the environment, then validates.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := coreconfig.Decode(path, &cfg); err != nil {
		return nil, err
	}
	if err := coreconfig.Normalize(&cfg.Config); err != nil {
		return nil, err
	}
	if err := cfg.Schedule.Normalize(); err != nil {
		return nil, err
	}
	if len(cfg.Groups) == 0 {
		cfg.Groups = schedule.DefaultGroups()
	}
	if _, err := schedule.NewRegistry(cfg.Groups); err != nil {
		return nil, fmt.Errorf("groups: %w", err)
	}
	return &cfg, nil
}
