package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/t2bot/media-canvas/common/config"
)

// Flush writes the default registry in the text exposition format, for
// node_exporter's textfile collector. The tool is short lived so there is no
// listener to scrape.
func Flush() error {
	if !config.Get().Metrics.Enabled {
		logrus.Debug("Metrics disabled")
		return nil
	}
	return WriteTo(config.Get().Metrics.TextFile)
}

func WriteTo(file string) error {
	logrus.WithField("file", file).Debug("Writing metrics")
	return prometheus.WriteToTextfile(file, prometheus.DefaultGatherer)
}
