package config

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// FileName is looked up in the config directory. It is optional.
const FileName = "pathworld.cfg.json"

// ViewpointConfig holds the camera position
type ViewpointConfig struct {
	X float64 `json:"x" mapstructure:"x"`
	Y float64 `json:"y" mapstructure:"y"`
	Z float64 `json:"z" mapstructure:"z"`
}

// BoxConfig holds the box path generator settings
type BoxConfig struct {
	Input     string          `json:"input" mapstructure:"input"`
	Output    string          `json:"output" mapstructure:"output"`
	Length    float64         `json:"length" mapstructure:"length"`
	Width     float64         `json:"width" mapstructure:"width"`
	Height    float64         `json:"height" mapstructure:"height"`
	Viewpoint ViewpointConfig `json:"viewpoint" mapstructure:"viewpoint"`
}

// CylinderConfig holds the cylinder path generator settings
type CylinderConfig struct {
	Input  string `json:"input" mapstructure:"input"`
	Output string `json:"output" mapstructure:"output"`
}

// Config holds the settings of both generators
type Config struct {
	LogLevel string         `json:"logLevel" mapstructure:"logLevel"`
	Box      BoxConfig      `json:"box" mapstructure:"box"`
	Cylinder CylinderConfig `json:"cylinder" mapstructure:"cylinder"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("box.input", "bezier_curve_x_y_th.csv")
	v.SetDefault("box.output", "bezier_box.world")
	v.SetDefault("box.length", 0.24)
	v.SetDefault("box.width", 0.05)
	v.SetDefault("box.height", 0.0005)

	// looking straight down from above the path
	v.SetDefault("box.viewpoint.x", 4.0)
	v.SetDefault("box.viewpoint.y", 4.0)
	v.SetDefault("box.viewpoint.z", 20.0)

	v.SetDefault("cylinder.input", "bezier_curve_x_y.csv")
	v.SetDefault("cylinder.output", "bezier_cylinder.world")
}

// Load reads FileName from configDir on fs, falling back to the defaults for
// anything the file does not set. A missing file is not an error.
func Load(fs afero.Fs, configDir string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &cfg, nil
}
