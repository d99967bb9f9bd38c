package config

const (
	defaultConfigPath = "~/.config/listone/config.toml"
	projectConfigName = "listone.toml"
	defaultInputPath  = "listone.m3u8"
	defaultOutputPath = "listone_ordinato.m3u8"
	defaultLogFormat  = "console"
	defaultLogLevel   = "warn"
)

// Default returns a Config populated with repository defaults. Playlist paths
// are relative to the working directory until Load expands them.
func Default() Config {
	return Config{
		Paths: Paths{
			Input:  defaultInputPath,
			Output: defaultOutputPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
