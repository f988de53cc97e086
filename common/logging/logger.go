package logging

import (
	"io"
	"os"
	"path"
	"time"

	"github.com/lestrrat/go-file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"github.com/t2bot/media-canvas/common/config"
)

const timestampFormat = "2006-01-02 15:04:05.000 Z07:00"

type utcFormatter struct {
	logrus.Formatter
}

func (f utcFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	entry.Time = entry.Time.UTC()
	return f.Formatter.Format(entry)
}

func newFormatter(colors bool, json bool) logrus.Formatter {
	if json {
		return &utcFormatter{&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
		}}
	}
	return &utcFormatter{&logrus.TextFormatter{
		TimestampFormat:  timestampFormat,
		FullTimestamp:    true,
		ForceColors:      colors,
		DisableColors:    !colors,
		QuoteEmptyFields: true,
	}}
}

// Setup configures the standard logger. Output goes to stderr because stdout
// carries tool output; a log directory of "" or "-" disables file logging.
func Setup(cfg config.GeneralConfig) error {
	return setup(cfg, os.Stderr)
}

func setup(cfg config.GeneralConfig, out io.Writer) error {
	level := cfg.LogLevel
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)

	formatter := newFormatter(cfg.LogColors, cfg.JsonLogs)
	logrus.SetFormatter(formatter)
	logrus.SetOutput(out)

	dir := cfg.LogDirectory
	if dir == "" || dir == "-" {
		return nil
	}
	if err = os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	logFile := path.Join(dir, "media_canvas.log")
	writer, err := rotatelogs.New(
		logFile+".%Y%m%d%H%M",
		rotatelogs.WithLinkName(logFile),
		rotatelogs.WithMaxAge((24*time.Hour)*14),  // keep for 14 days
		rotatelogs.WithRotationTime(24*time.Hour), // rotate every 24 hours
	)
	if err != nil {
		return err
	}

	logrus.AddHook(lfshook.NewHook(lfshook.WriterMap{
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
		logrus.PanicLevel: writer,
	}, formatter))

	return nil
}
