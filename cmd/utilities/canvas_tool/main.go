package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	"github.com/buckket/go-blurhash"
	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/t2bot/media-canvas/canvas"
	"github.com/t2bot/media-canvas/common/config"
	"github.com/t2bot/media-canvas/common/logging"
	"github.com/t2bot/media-canvas/common/rcontext"
	"github.com/t2bot/media-canvas/common/version"
	"github.com/t2bot/media-canvas/imageutil"
	"github.com/t2bot/media-canvas/metrics"
)

func main() {
	configPath := flag.String("config", "media-canvas.yaml", "The path to the configuration")
	inFile := flag.String("i", "", "The input image, or a file containing a base64 data URL")
	outFile := flag.String("o", "", "The output file to write the canvas to")
	direction := flag.String("rotate", "", "Rotate 'left' or 'right'. Defaults to the configured direction when -steps is given")
	steps := flag.Int("steps", -1, "Number of quarter turns to rotate by. Omit to skip rotation")
	limit := flag.Int("limit", -1, "Approximate byte size to compress to. Omit to use the configured limit, 0 to disable")
	autoOrient := flag.Bool("auto-orient", false, "Apply the EXIF orientation before anything else, regardless of config")
	format := flag.String("f", "", "Output format: png or jpeg. Defaults to the configured format")
	versionFlag := flag.Bool("version", false, "Prints the version and exits")
	flag.Parse()

	if *versionFlag {
		version.Print(false)
		return // exit 0
	}

	if inFile == nil || *inFile == "" {
		panic("No input file specified")
	}
	if outFile == nil || *outFile == "" {
		panic("No output file specified")
	}

	// Override config path with config for Docker users
	configEnv := os.Getenv("CANVAS_CONFIG")
	if configEnv != "" {
		configPath = &configEnv
	}
	config.Path = *configPath

	err := logging.Setup(config.Get().General)
	if err != nil {
		panic(err)
	}

	if config.Get().Sentry.Enabled {
		logrus.Info("Setting up Sentry for debugging...")
		err = sentry.Init(sentry.ClientOptions{
			Dsn:         config.Get().Sentry.Dsn,
			Environment: config.Get().Sentry.Environment,
			Debug:       config.Get().Sentry.Debug,
			Release:     version.Release(),
		})
		if err != nil {
			panic(err)
		}
	}
	defer sentry.Flush(2 * time.Second)
	defer sentry.Recover()

	ctx := rcontext.Initial().LogWithFields(logrus.Fields{"input": *inFile})
	opts := options{
		direction:  config.Get().Canvas.DefaultDirection,
		steps:      *steps,
		limit:      config.Get().Canvas.LimitBytes,
		autoOrient: config.Get().Canvas.AutoOrient || *autoOrient,
		format:     config.Get().Canvas.OutputFormat,
	}
	if *direction != "" {
		opts.direction = *direction
		if opts.steps < 0 {
			opts.steps = config.Get().Canvas.DefaultSteps
		}
	}
	if *limit >= 0 {
		opts.limit = *limit
	}
	if *format != "" {
		opts.format = *format
	}

	if err = run(ctx, *inFile, *outFile, opts); err != nil {
		sentry.CaptureException(err)
		ctx.Log.Error(err)
		_ = metrics.Flush()
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}

	if err = metrics.Flush(); err != nil {
		ctx.Log.Warn("Error writing metrics: ", err)
	}
	ctx.Log.Info("Done!")
}

type options struct {
	direction  string
	steps      int
	limit      int
	autoOrient bool
	format     string
}

func run(ctx rcontext.RequestContext, inFile string, outFile string, opts options) error {
	b, err := os.ReadFile(inFile)
	if err != nil {
		return err
	}

	var src *imageutil.Source
	raw := b
	if s := strings.TrimSpace(string(b)); strings.HasPrefix(s, "data:") {
		f, err := imageutil.DataURLToFile(s)
		if err != nil {
			return err
		}
		ctx.Log.WithFields(logrus.Fields{
			"name":    f.Name,
			"type":    f.Type,
			"sniffed": f.Sniff(),
			"size":    humanize.Bytes(uint64(f.Size())),
		}).Info("Read data URL")
		raw = f.Data
		if src, err = imageutil.NewSourceFromFile(f, s); err != nil {
			return err
		}
	} else if src, err = imageutil.SourceFromReader(bytes.NewReader(b)); err != nil {
		return err
	}
	ctx.Log.WithField("width", src.Width).WithField("height", src.Height).Info("Decoded source image")

	c := canvas.FromImage(src.Image)

	if opts.autoOrient {
		orientation, err := imageutil.GetOrientation(ctx, bytes.NewReader(raw))
		if err != nil {
			return err
		}
		if orientation > 1 {
			ctx.Log.WithField("orientation", orientation).Info("Applying EXIF orientation")
			if err = imageutil.AutoOrient(src, c, orientation); err != nil {
				return err
			}
			src = snapshot(src, c)
		}
	}

	if opts.steps >= 0 {
		dir := imageutil.ParseDirection(opts.direction)
		ctx.Log.WithField("direction", dir).WithField("steps", opts.steps).Info("Rotating")
		if err = imageutil.RotateImg(src, dir, c, opts.steps); err != nil {
			return err
		}
		src = snapshot(src, c)
	}

	if opts.limit > 0 {
		d, err := imageutil.CompressImg(src, c, opts.limit)
		if err != nil {
			return err
		}
		ctx.Log.WithFields(logrus.Fields{
			"limit":  humanize.Bytes(uint64(opts.limit)),
			"ratio":  imageutil.Ratio(opts.limit, len(src.Src)),
			"width":  d.Width,
			"height": d.Height,
		}).Info("Compressed")
	}

	if config.Get().Canvas.Blurhash.Enabled && c.Width() > 0 && c.Height() > 0 {
		hash, err := blurhash.Encode(config.Get().Canvas.Blurhash.XComponents, config.Get().Canvas.Blurhash.YComponents, c.Image())
		if err != nil {
			ctx.Log.Warn("Non-fatal error calculating blurhash: ", err)
		} else {
			fmt.Println(hash)
		}
	}

	return write(ctx, c.Image(), outFile, opts.format)
}

// snapshot keeps the original encoded string so later compression still
// measures against the input size.
func snapshot(src *imageutil.Source, c *canvas.Canvas) *imageutil.Source {
	next := imageutil.SourceFromImage(c.Image())
	next.Src = src.Src
	return next
}

func write(ctx rcontext.RequestContext, img image.Image, outFile string, format string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	encFormat := imaging.PNG
	var encOpts []imaging.EncodeOption
	if format == "jpeg" || format == "jpg" {
		encFormat = imaging.JPEG
		encOpts = append(encOpts, imaging.JPEGQuality(config.Get().Canvas.JpegQuality))
	}

	ctx.Log.WithField("format", encFormat.String()).WithField("output", outFile).Info("Writing canvas")
	return imaging.Encode(f, img, encFormat, encOpts...)
}
