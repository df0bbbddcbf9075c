package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding settings,
// e.g. PARTICLES_WINDOW_WIDTH.
const EnvPrefix = "particles"

var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the runtime options of the hosts. Engine constants above are
// not part of them.
type Settings struct {
	Window       WindowSettings `mapstructure:"window"`
	Log          LogSettings    `mapstructure:"log"`
	Render       RenderSettings `mapstructure:"render"`
	Seed         int64          `mapstructure:"seed"`
	DebugOverlay bool           `mapstructure:"debug_overlay"`
	CursorGlow   bool           `mapstructure:"cursor_glow"`
	Dialogs      bool           `mapstructure:"dialogs"`
}

type WindowSettings struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type LogSettings struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// RenderSettings drive the headless renderer.
type RenderSettings struct {
	Frames int    `mapstructure:"frames"`
	Every  int    `mapstructure:"every"`
	Output string `mapstructure:"output"`
}

// SetDefaults registers every known key so env overrides reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("window.width", WindowWidth)
	v.SetDefault("window.height", WindowHeight)
	v.SetDefault("window.title", "Flowing particles - Esc/Q: Quit")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("render.frames", 300)
	v.SetDefault("render.every", 50)
	v.SetDefault("render.output", "frames")
	v.SetDefault("seed", 0)
	v.SetDefault("debug_overlay", false)
	v.SetDefault("cursor_glow", true)
	v.SetDefault("dialogs", true)
}

// Load reads settings from defaults, an optional config file and the
// environment. Flags must already be bound to v by the caller.
func Load(v *viper.Viper, configFile string) (Settings, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects negative window sizes and unusable render counts.
func (s Settings) Validate() error {
	if s.Window.Width < 0 || s.Window.Height < 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidSettings, s.Window.Width, s.Window.Height)
	}
	if s.Render.Frames <= 0 {
		return fmt.Errorf("%w: render.frames must be positive, got %d", ErrInvalidSettings, s.Render.Frames)
	}
	if s.Render.Every < 0 {
		return fmt.Errorf("%w: render.every must not be negative, got %d", ErrInvalidSettings, s.Render.Every)
	}
	return nil
}
