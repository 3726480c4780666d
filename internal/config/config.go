package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type PagerOptions struct {
	WheelStep int `toml:"wheel-step"`
	PageJump  int `toml:"page-jump"`
}

// Spotlight holds the distance/blend parameters of the spotlight tint.
// The default 1.5 distance floor keeps the blend pinned at its maximum
// everywhere; see DESIGN.md.
type Spotlight struct {
	AspectX     float64 `toml:"aspect-x"`
	AspectY     float64 `toml:"aspect-y"`
	MinDistance float64 `toml:"min-distance"`
	MaxBlend    float64 `toml:"max-blend"`
}

type Theme struct {
	Ink       string `toml:"ink"`
	Parchment string `toml:"parchment"`
	Shadow    string `toml:"shadow"`
}

type Log struct {
	Debug bool `toml:"debug"`
}

type Config struct {
	Pager     PagerOptions `toml:"pager"`
	Spotlight Spotlight    `toml:"spotlight"`
	Theme     Theme        `toml:"theme"`
	Log       Log          `toml:"log"`
}

func Default() Config {
	return Config{
		Pager: PagerOptions{
			WheelStep: 3,
			PageJump:  2,
		},
		Spotlight: Spotlight{
			AspectX:     1.6,
			AspectY:     3.0,
			MinDistance: 1.5,
			MaxBlend:    0.25,
		},
		Theme: Theme{
			Ink:       "#000000",
			Parchment: "#F0E68C",
			Shadow:    "#333333",
		},
		Log: Log{
			Debug: false,
		},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Pager.WheelStep > 0 {
		cfg.Pager.WheelStep = userCfg.Pager.WheelStep
	}
	if userCfg.Pager.PageJump > 0 {
		cfg.Pager.PageJump = userCfg.Pager.PageJump
	}
	if userCfg.Spotlight.AspectX > 0 {
		cfg.Spotlight.AspectX = userCfg.Spotlight.AspectX
	}
	if userCfg.Spotlight.AspectY > 0 {
		cfg.Spotlight.AspectY = userCfg.Spotlight.AspectY
	}
	if userCfg.Spotlight.MinDistance > 0 {
		cfg.Spotlight.MinDistance = userCfg.Spotlight.MinDistance
	}
	if userCfg.Spotlight.MaxBlend > 0 {
		cfg.Spotlight.MaxBlend = userCfg.Spotlight.MaxBlend
	}
	if userCfg.Theme.Ink != "" {
		cfg.Theme.Ink = userCfg.Theme.Ink
	}
	if userCfg.Theme.Parchment != "" {
		cfg.Theme.Parchment = userCfg.Theme.Parchment
	}
	if userCfg.Theme.Shadow != "" {
		cfg.Theme.Shadow = userCfg.Theme.Shadow
	}
	if userCfg.Log.Debug {
		cfg.Log.Debug = userCfg.Log.Debug
	}

	return cfg, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("QPAGE_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "qpage"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "qpage"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
