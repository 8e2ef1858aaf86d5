// Package config handles meshprep tool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds cache output settings.
type OutputConfig struct {
	Dir       string `yaml:"dir"`       // Directory for generated cache files
	Overwrite bool   `yaml:"overwrite"` // Replace existing cache files
}

// MeshConfig holds mesh preparation settings.
type MeshConfig struct {
	// StripNormals drops the normal stream before consolidation, packing
	// position-only or position+texcoord records.
	StripNormals bool `yaml:"strip_normals"`
	// StripTexCoords drops the texcoord stream before consolidation.
	StripTexCoords bool `yaml:"strip_texcoords"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:       ".",
			Overwrite: false,
		},
		Mesh: MeshConfig{
			StripNormals:   false,
			StripTexCoords: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
