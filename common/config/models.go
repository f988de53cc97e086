package config

type MainConfig struct {
	General GeneralConfig `yaml:"general"`
	Canvas  CanvasConfig  `yaml:"canvas"`
	Metrics MetricsConfig `yaml:"metrics"`
	Sentry  SentryConfig  `yaml:"sentry"`
}

type GeneralConfig struct {
	LogDirectory string `yaml:"logDirectory"`
	LogColors    bool   `yaml:"logColors"`
	JsonLogs     bool   `yaml:"jsonLogs"`
	LogLevel     string `yaml:"logLevel"`
}

type CanvasConfig struct {
	DefaultDirection string         `yaml:"defaultDirection"`
	DefaultSteps     int            `yaml:"defaultSteps"`
	LimitBytes       int            `yaml:"limitBytes"`
	AutoOrient       bool           `yaml:"autoOrient"`
	OutputFormat     string         `yaml:"outputFormat"`
	JpegQuality      int            `yaml:"jpegQuality"`
	Blurhash         BlurhashConfig `yaml:"blurhash"`
}

type BlurhashConfig struct {
	Enabled     bool `yaml:"enabled"`
	XComponents int  `yaml:"xComponents"`
	YComponents int  `yaml:"yComponents"`
}

type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	TextFile string `yaml:"textFile"`
}

type SentryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Dsn         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
	Debug       bool   `yaml:"debug"`
}
