package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command line flags to settings keys.
var flagKeys = map[string]string{
	"width":         "window.width",
	"height":        "window.height",
	"title":         "window.title",
	"log_level":     "log.level",
	"log_file":      "log.file",
	"seed":          "seed",
	"debug_overlay": "debug_overlay",
	"cursor_glow":   "cursor_glow",
	"dialogs":       "dialogs",
	"frames":        "render.frames",
	"every":         "render.every",
	"output":        "render.output",
}

// AddGlobalFlags declares the flags shared by every command.
func AddGlobalFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "path to config file (json, yaml or toml)")
	fs.Int("width", WindowWidth, "viewport width")
	fs.Int("height", WindowHeight, "viewport height")
	fs.String("log_level", "info", "log level: trace, debug, info, warn, error or none")
	fs.String("log_file", "", "write logs to this file instead of stdout")
	fs.Int64("seed", 0, "random seed, 0 seeds from the clock")
}

// AddWindowFlags declares the flags of the windowed host.
func AddWindowFlags(fs *pflag.FlagSet) {
	fs.String("title", "", "window title")
	fs.Bool("debug_overlay", false, "show frame rate and link count")
	fs.Bool("cursor_glow", true, "draw a glow following the pointer")
	fs.Bool("dialogs", true, "show fatal errors in a dialog")
}

// AddRenderFlags declares the flags of the headless renderer.
func AddRenderFlags(fs *pflag.FlagSet) {
	fs.Int("frames", 300, "number of frames to simulate")
	fs.Int("every", 50, "write a snapshot every N frames, 0 for the last frame only")
	fs.StringP("output", "o", "frames", "directory for PNG snapshots")
}

// BindFlags binds every known flag in fs to its settings key. Unset flags
// fall back to config file, env and defaults in that order.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		err = v.BindPFlag(key, f)
	})
	return err
}

// LoadFlags binds fs to a fresh viper instance and loads settings, reading
// the config file named by the config flag if any.
func LoadFlags(fs *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	if err := BindFlags(v, fs); err != nil {
		return Settings{}, err
	}
	configFile, _ := fs.GetString("config")
	return Load(v, configFile)
}
