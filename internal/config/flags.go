package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagOut       = flag.String("out", "", "Output directory for cache files")
	flagOverwrite = flag.Bool("overwrite", false, "Replace existing cache files")
	flagStripNorm = flag.Bool("strip-normals", false, "Drop normals before consolidation")
	flagStripTex  = flag.Bool("strip-texcoords", false, "Drop texcoords before consolidation")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagOverwrite {
		cfg.Output.Overwrite = true
	}
	if *flagStripNorm {
		cfg.Mesh.StripNormals = true
	}
	if *flagStripTex {
		cfg.Mesh.StripTexCoords = true
	}
}
