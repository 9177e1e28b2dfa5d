package config

import "flag"

var (
	flagConfig        = flag.String("config", "", "Path to config file")
	flagDebug         = flag.Bool("debug", false, "Enable debug logging")
	flagMaxVertices   = flag.Int("max-vertices", 0, "Maximum vertices per meshlet")
	flagMaxPrimitives = flag.Int("max-primitives", 0, "Maximum triangles per meshlet")
	flagChannels      = flag.Int("channels", 0, "Bytes per atlas texel")
	flagOut           = flag.String("out", "", "Output directory")
	flagNoBMP         = flag.Bool("no-bmp", false, "Skip writing atlas BMP layers")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments after ParseFlags.
func Args() []string {
	return flag.Args()
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
	if *flagMaxVertices > 0 {
		cfg.Meshlet.MaxVertices = *flagMaxVertices
	}
	if *flagMaxPrimitives > 0 {
		cfg.Meshlet.MaxPrimitives = *flagMaxPrimitives
	}
	if *flagChannels > 0 {
		cfg.Atlas.Channels = *flagChannels
	}
	if *flagOut != "" {
		cfg.Output.Directory = *flagOut
	}
	if *flagNoBMP {
		cfg.Output.DumpBMP = false
	}
}
