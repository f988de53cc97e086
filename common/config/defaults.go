package config

func NewDefaultMainConfig() MainConfig {
	return MainConfig{
		General: GeneralConfig{
			LogDirectory: "-",
			LogColors:    false,
			JsonLogs:     false,
			LogLevel:     "info",
		},
		Canvas: CanvasConfig{
			DefaultDirection: "right",
			DefaultSteps:     1,
			LimitBytes:       0, // disabled
			AutoOrient:       true,
			OutputFormat:     "png",
			JpegQuality:      95,
			Blurhash: BlurhashConfig{
				Enabled:     false,
				XComponents: 4,
				YComponents: 3,
			},
		},
		Metrics: MetricsConfig{
			Enabled:  false,
			TextFile: "media_canvas.prom",
		},
		Sentry: SentryConfig{
			Enabled:     false,
			Dsn:         "not supplied",
			Environment: "",
			Debug:       false,
		},
	}
}
