// Package logger wraps zerolog for the ghosting report backend: one process-wide
// structured logger plus the Gin request/recovery middleware built on it.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var root zerolog.Logger

// Init configures the process logger. Accepted levels are "debug", "info",
// "warn", "error" and "fatal"; anything else falls back to info. At debug
// level output switches to the human-readable console format for local runs;
// otherwise it is JSON on stdout for log collection.
func Init(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if lvl == zerolog.DebugLevel {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	root = zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
}

func init() {
	// Usable before main calls Init with the configured level.
	Init("info")
}

func Debug() *zerolog.Event { return root.Debug() }
func Info() *zerolog.Event  { return root.Info() }
func Warn() *zerolog.Event  { return root.Warn() }
func Error() *zerolog.Event { return root.Error() }
func Fatal() *zerolog.Event { return root.Fatal() }

// Printf-style helpers for startup and shutdown paths where structured
// fields add nothing.

func Infof(format string, v ...interface{}) {
	root.Info().Msgf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	root.Warn().Msgf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	root.Error().Msgf(format, v...)
}

// Fatalf logs and exits the process.
func Fatalf(format string, v ...interface{}) {
	root.Fatal().Msgf(format, v...)
}

// Get exposes the underlying logger for callers that need sub-loggers.
func Get() zerolog.Logger {
	return root
}

// GinLogger logs every handled request with method, path, status and latency.
// Health probes are demoted to debug so uptime checks do not drown out the
// report and stats traffic.
func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()

		var event *zerolog.Event
		switch {
		case status >= 500:
			event = root.Error()
		case status >= 400:
			event = root.Warn()
		case path == "/health":
			event = root.Debug()
		default:
			event = root.Info()
		}

		event.
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Str("ip", c.ClientIP()).
			Dur("latency", time.Since(start)).
			Int("size", c.Writer.Size()).
			Msg("request")
	}
}

// GinRecovery converts handler panics into logged 500s instead of dropped
// connections.
func GinRecovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		root.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("ip", c.ClientIP()).
			Msg("panic recovered")
		c.AbortWithStatus(500)
	})
}
