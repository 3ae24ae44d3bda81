package config

const (
	defaultLogDir         = "~/.local/share/datefix/logs"
	defaultExiftoolBinary = "exiftool"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultFutureDays     = 0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Scan: Scan{},
		Fix: Fix{
			FutureDays: defaultFutureDays,
		},
		Exiftool: Exiftool{
			Binary: defaultExiftoolBinary,
		},
		Report: Report{},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
