// Package config gathers the settings of the minichart command from its
// flags, the environment and an optional configuration file.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "MINICHART"

const (
	KeyConfig        = "config"
	KeyWidth         = "width"
	KeyHeight        = "height"
	KeyMargin        = "margin"
	KeyRadius        = "radius"
	KeyFont          = "font"
	KeyFontColor     = "font-color"
	KeyLineColor     = "line-color"
	KeyLabels        = "labels"
	KeyLabelPosition = "label-position"
	KeyGrid          = "grid"
	KeySeed          = "seed"
	KeyPalette       = "palette"
	KeyFormat        = "format"
	KeyOutput        = "output"
	KeyLogLevel      = "log-level"
	KeyLogFormat     = "log-format"
	KeyJobs          = "jobs"
	KeyHover         = "hover"
)

// Config is the resolved configuration of a single rendering. A negative
// Margin means each chart keeps its own default.
type Config struct {
	Width         float64 `mapstructure:"width" yaml:"width"`
	Height        float64 `mapstructure:"height" yaml:"height"`
	Margin        float64 `mapstructure:"margin" yaml:"margin"`
	Radius        float64 `mapstructure:"radius" yaml:"radius"`
	Font          string  `mapstructure:"font" yaml:"font"`
	FontColor     string  `mapstructure:"font-color" yaml:"font-color"`
	LineColor     string  `mapstructure:"line-color" yaml:"line-color"`
	Labels        bool    `mapstructure:"labels" yaml:"labels"`
	LabelPosition string  `mapstructure:"label-position" yaml:"label-position"`
	Grid          bool    `mapstructure:"grid" yaml:"grid"`
	Seed          int64   `mapstructure:"seed" yaml:"seed"`
	Palette       string  `mapstructure:"palette" yaml:"palette"`
	Format        string  `mapstructure:"format" yaml:"format"`
	Output        string  `mapstructure:"output" yaml:"output"`
	Hover         string  `mapstructure:"hover" yaml:"hover"`

	LogLevel  string `mapstructure:"log-level" yaml:"-"`
	LogFormat string `mapstructure:"log-format" yaml:"-"`
	Jobs      int    `mapstructure:"jobs" yaml:"-"`
}

func Default() Config {
	return Config{
		Width:     800,
		Height:    600,
		Margin:    -1,
		Labels:    true,
		Grid:      true,
		Format:    "svg",
		LogLevel:  "info",
		LogFormat: "text",
		Jobs:      4,
	}
}

// Flags registers every setting on set with its default value.
func Flags(set *pflag.FlagSet) {
	def := Default()
	set.String(KeyConfig, "", "configuration file (yaml, toml or json)")
	set.Float64(KeyWidth, def.Width, "surface width in pixels")
	set.Float64(KeyHeight, def.Height, "surface height in pixels")
	set.Float64(KeyMargin, def.Margin, "margin around the drawing area, negative keeps the chart default")
	set.Float64(KeyRadius, def.Radius, "radius of pie charts, 0 fits the surface")
	set.String(KeyFont, def.Font, "font of the labels (css shorthand as \"12px Arial\")")
	set.String(KeyFontColor, def.FontColor, "color of the labels")
	set.String(KeyLineColor, def.LineColor, "color of lines, points and progress")
	set.Bool(KeyLabels, def.Labels, "draw the ticks labels of line charts")
	set.String(KeyLabelPosition, def.LabelPosition, "position of labels: above, below or inside")
	set.Bool(KeyGrid, def.Grid, "draw the grid of scatter charts")
	set.Int64(KeySeed, def.Seed, "seed of the random fallback colors, 0 uses the clock")
	set.String(KeyPalette, def.Palette, "fallback colors palette: category10 or tableau10")
	set.String(KeyFormat, def.Format, "output format: svg, png or trace")
	set.StringP(KeyOutput, "o", def.Output, "output file, standard output when empty")
	set.String(KeyHover, def.Hover, "x,y pointer position to test against the scatter points")
	set.String(KeyLogLevel, def.LogLevel, "log level")
	set.String(KeyLogFormat, def.LogFormat, "log format: text or json")
	set.Int(KeyJobs, def.Jobs, "number of charts rendered concurrently by batch")
}

// Load binds set to a new viper instance, reads the configuration file
// if any and returns the merged settings.
func Load(set *pflag.FlagSet) (Config, *viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(set); err != nil {
		return Config{}, nil, errors.Wrap(err, "bind flags")
	}
	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, nil, errors.Wrapf(err, "read configuration %s", file)
		}
	}
	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, nil, errors.Wrap(err, "decode configuration")
	}
	return cfg, v, nil
}

// Merge gives c overridden by the non zero settings of other. Booleans
// are taken from other only when explicitly set.
func (c Config) Merge(other Override) Config {
	if other.Width > 0 {
		c.Width = other.Width
	}
	if other.Height > 0 {
		c.Height = other.Height
	}
	if other.Margin != nil {
		c.Margin = *other.Margin
	}
	if other.Radius > 0 {
		c.Radius = other.Radius
	}
	if other.Font != "" {
		c.Font = other.Font
	}
	if other.FontColor != "" {
		c.FontColor = other.FontColor
	}
	if other.LineColor != "" {
		c.LineColor = other.LineColor
	}
	if other.Labels != nil {
		c.Labels = *other.Labels
	}
	if other.LabelPosition != "" {
		c.LabelPosition = other.LabelPosition
	}
	if other.Grid != nil {
		c.Grid = *other.Grid
	}
	if other.Seed != 0 {
		c.Seed = other.Seed
	}
	if other.Palette != "" {
		c.Palette = other.Palette
	}
	if other.Format != "" {
		c.Format = other.Format
	}
	return c
}

// Override is the part of a Config that a single job of a batch can
// change.
type Override struct {
	Width         float64  `yaml:"width"`
	Height        float64  `yaml:"height"`
	Margin        *float64 `yaml:"margin"`
	Radius        float64  `yaml:"radius"`
	Font          string   `yaml:"font"`
	FontColor     string   `yaml:"font-color"`
	LineColor     string   `yaml:"line-color"`
	Labels        *bool    `yaml:"labels"`
	LabelPosition string   `yaml:"label-position"`
	Grid          *bool    `yaml:"grid"`
	Seed          int64    `yaml:"seed"`
	Palette       string   `yaml:"palette"`
	Format        string   `yaml:"format"`
}

// Logger creates the logger described by the settings.
func (c Config) Logger() (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %s", c.LogLevel)
	}
	logger.SetLevel(level)
	switch strings.ToLower(c.LogFormat) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	default:
		return nil, errors.Errorf("%s: unsupported log format", c.LogFormat)
	}
	return logger, nil
}
