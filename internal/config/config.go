package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Chart  ChartConfig  `mapstructure:"chart"`
	Map    MapConfig    `mapstructure:"map"`
	Log    LogConfig    `mapstructure:"log"`
	Export ExportConfig `mapstructure:"export"`
}

type ChartConfig struct {
	Color    string      `mapstructure:"color"`
	Fill     string      `mapstructure:"fill"`
	PinColor string      `mapstructure:"pin_color"`
	Padding  float64     `mapstructure:"padding"`
	Ticks    TicksConfig `mapstructure:"ticks"`
	// Pixel size of one terminal cell, used only for the tick policy.
	CellWidth  float64 `mapstructure:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height"`
}

type TicksConfig struct {
	WideWidth  float64 `mapstructure:"wide_width"`
	TallHeight float64 `mapstructure:"tall_height"`
	NarrowX    int     `mapstructure:"narrow_x"`
	WideX      int     `mapstructure:"wide_x"`
	ShortY     int     `mapstructure:"short_y"`
	TallY      int     `mapstructure:"tall_y"`
}

type MapConfig struct {
	// Share of the body height given to the route map; the profile gets the rest.
	HeightRatio float64 `mapstructure:"height_ratio"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File receives the log; empty discards it. The terminal belongs to the UI.
	File string `mapstructure:"file"`
}

type ExportConfig struct {
	Dir      string  `mapstructure:"dir"`
	WidthIn  float64 `mapstructure:"width_in"`
	HeightIn float64 `mapstructure:"height_in"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("chart.color", "#7C3AED")
	v.SetDefault("chart.fill", "#3B2A63")
	v.SetDefault("chart.pin_color", "#FFA500")
	v.SetDefault("chart.padding", 0)
	v.SetDefault("chart.ticks.wide_width", 768)
	v.SetDefault("chart.ticks.tall_height", 300)
	v.SetDefault("chart.ticks.narrow_x", 6)
	v.SetDefault("chart.ticks.wide_x", 12)
	v.SetDefault("chart.ticks.short_y", 4)
	v.SetDefault("chart.ticks.tall_y", 12)
	v.SetDefault("chart.cell_width", 8)
	v.SetDefault("chart.cell_height", 16)
	v.SetDefault("map.height_ratio", 0.5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "elevmap.log")
	v.SetDefault("export.dir", ".")
	v.SetDefault("export.width_in", 10)
	v.SetDefault("export.height_in", 3)
}

// Load reads configuration from defaults, an optional elevmap.yaml and
// environment variables. paths are searched for the config file in order;
// when empty, "." and "$HOME/.config/elevmap" are used.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Config file (optional)
	v.SetConfigName("elevmap")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "$HOME/.config/elevmap"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// Environment variables: ELEVMAP_CHART_PADDING → chart.padding
	v.SetEnvPrefix("ELEVMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	for key, val := range map[string]string{
		"chart.color":     c.Chart.Color,
		"chart.fill":      c.Chart.Fill,
		"chart.pin_color": c.Chart.PinColor,
	} {
		if !hexColor.MatchString(val) {
			errs = append(errs, fmt.Sprintf("%s must be #rgb or #rrggbb, got %q", key, val))
		}
	}
	if c.Chart.Padding < 0 {
		errs = append(errs, fmt.Sprintf("chart.padding must not be negative, got %g", c.Chart.Padding))
	}
	t := c.Chart.Ticks
	if t.NarrowX <= 0 || t.WideX <= 0 || t.ShortY <= 0 || t.TallY <= 0 {
		errs = append(errs, "chart.ticks counts must be positive")
	}
	if c.Chart.CellWidth <= 0 || c.Chart.CellHeight <= 0 {
		errs = append(errs, "chart.cell_width and chart.cell_height must be positive")
	}
	if c.Map.HeightRatio <= 0 || c.Map.HeightRatio >= 1 {
		errs = append(errs, fmt.Sprintf("map.height_ratio must be between 0 and 1, got %g", c.Map.HeightRatio))
	}
	if c.Export.WidthIn <= 0 || c.Export.HeightIn <= 0 {
		errs = append(errs, "export.width_in and export.height_in must be positive")
	}

	if len(errs) > 0 {
		sort.Strings(errs)
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

