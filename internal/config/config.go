// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ViewerConfig holds the model to display and how to display it.
type ViewerConfig struct {
	// Model is the path of the OBJ file to load.
	Model string `yaml:"model"`
	// Texture is the path of the image applied to the model. When the file
	// is missing the viewer falls back to an untextured white surface.
	Texture string `yaml:"texture"`
	// Triangulate splits faces with more than three corners into triangle
	// fans. When false such faces abort the load.
	Triangulate bool `yaml:"triangulate"`
	// SpinSpeed is the turntable rotation speed in radians per second.
	SpinSpeed float64 `yaml:"spin_speed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Viewer: ViewerConfig{
			Model:       "assets/cube.obj",
			Texture:     "textures/texture.png",
			Triangulate: true,
			SpinSpeed:   0.5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
