package rcontext

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/t2bot/media-canvas/common"
	"github.com/t2bot/media-canvas/common/config"
)

func Initial() RequestContext {
	return RequestContext{
		Context: context.Background(),
		Log:     logrus.WithFields(logrus.Fields{"nocontext": true}),
		Config:  config.Get().Canvas,
	}.populate()
}

// Background is Initial without touching the config file, for library callers
// and tests.
func Background() RequestContext {
	return RequestContext{
		Context: context.Background(),
		Log:     logrus.NewEntry(logrus.StandardLogger()),
		Config:  config.NewDefaultMainConfig().Canvas,
	}.populate()
}

type RequestContext struct {
	context.Context

	// These are also stored on the context object itself
	Log    *logrus.Entry       // mc.logger
	Config config.CanvasConfig // mc.canvasConfig
}

func (c RequestContext) populate() RequestContext {
	c.Context = context.WithValue(c.Context, common.ContextLogger, c.Log)
	c.Context = context.WithValue(c.Context, common.ContextCanvasConfig, c.Config)
	return c
}

func (c RequestContext) ReplaceLogger(log *logrus.Entry) RequestContext {
	ctx := context.WithValue(c.Context, common.ContextLogger, log)
	return RequestContext{
		Context: ctx,
		Log:     log,
		Config:  c.Config,
	}
}

func (c RequestContext) LogWithFields(fields logrus.Fields) RequestContext {
	return c.ReplaceLogger(c.Log.WithFields(fields))
}
