package common

type CanvasContextKey string

const (
	ContextLogger       CanvasContextKey = "mc.logger"
	ContextCanvasConfig CanvasContextKey = "mc.canvasConfig"
)
