package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	overlay "github.com/grindlemire/go-overlay"
	"github.com/grindlemire/go-overlay/internal/document"
)

const (
	defaultViewportWidth  = 1920
	defaultViewportHeight = 1080
)

// Config holds the CLI settings.
type Config struct {
	Viewport struct {
		Width  float64 `mapstructure:"width"`
		Height float64 `mapstructure:"height"`
	} `mapstructure:"viewport"`
	UI struct {
		Scale float64 `mapstructure:"scale"`
	} `mapstructure:"ui"`
	Debug struct {
		Log string `mapstructure:"log"`
	} `mapstructure:"debug"`
}

// bindFlags maps the persistent flags onto their config keys.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	for key, flag := range map[string]string{
		"viewport.width":  "width",
		"viewport.height": "height",
		"ui.scale":        "scale",
		"debug.log":       "debug-log",
	} {
		// Lookup cannot fail for flags registered above.
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
}

// loadConfig reads the config file, if any, and the OVERLAY_* environment.
func loadConfig(v *viper.Viper, cfgFile string) (Config, error) {
	v.SetDefault("viewport.width", defaultViewportWidth)
	v.SetDefault("viewport.height", defaultViewportHeight)
	v.SetDefault("ui.scale", 1.0)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("overlay")
		v.SetConfigType("toml")
	}
	v.SetEnvPrefix("OVERLAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if cfg.UI.Scale <= 0 {
		return Config{}, fmt.Errorf("ui.scale must be positive, got %v", cfg.UI.Scale)
	}
	return cfg, nil
}

// Frame returns the recompute input for doc: the document's viewport and
// scale override the configured ones, and the viewport is divided by the
// UI scale before it reaches the layout.
func (c Config) Frame(doc *document.Document) overlay.Frame {
	width, height, scale := c.Viewport.Width, c.Viewport.Height, c.UI.Scale
	if vp := doc.Viewport; vp != nil {
		if vp.Width > 0 {
			width = vp.Width
		}
		if vp.Height > 0 {
			height = vp.Height
		}
		if vp.Scale > 0 {
			scale = vp.Scale
		}
	}
	return overlay.Frame{Viewport: overlay.Vec(float32(width/scale), float32(height/scale))}
}

func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}
	var cfg Config
	cfg.Viewport.Width = defaultViewportWidth
	cfg.Viewport.Height = defaultViewportHeight
	cfg.UI.Scale = 1
	return cfg
}
