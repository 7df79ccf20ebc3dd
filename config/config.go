package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"click/report"
)

// ConfigFile is the name of the TOML configuration file inside the app dir.
const ConfigFile = "config.toml"

type Config struct {
	// User is the owner of every report on this machine.
	User string `toml:"user"`
	// HoursPerDay is the contractual work quota, in hours.
	HoursPerDay int `toml:"hours_per_day"`
	// NonWorkingDays lists weekday names the user is not obligated to work,
	// e.g. ["saturday", "sunday"].
	NonWorkingDays []string `toml:"non_working_days"`
}

func Default() Config {
	return Config{
		User:        "default",
		HoursPerDay: 8,
	}
}

// Load reads the config from dir, falling back to defaults when the file
// does not exist.
func Load(dir string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(filepath.Join(dir, ConfigFile), &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}
	if cfg.HoursPerDay <= 0 {
		cfg.HoursPerDay = Default().HoursPerDay
	}
	return cfg, nil
}

// ReportUser builds the user collaborator consumed by the calculators.
func (c Config) ReportUser() report.User {
	return report.User{Name: c.User, HoursPerDay: c.HoursPerDay}
}

// NonWorking reports whether a day falls on a configured non-working
// weekday.
func (c Config) NonWorking(day report.Date) bool {
	wd := strings.ToLower(day.Time().Weekday().String())
	for _, d := range c.NonWorkingDays {
		if strings.ToLower(d) == wd {
			return true
		}
	}
	return false
}

// PolicyFor resolves the balance policy for one report's day.
func (c Config) PolicyFor(r report.Report) report.BalancePolicy {
	return report.BalancePolicy{
		Quota:      c.ReportUser().Quota(),
		NonWorking: c.NonWorking(r.Day),
	}
}
