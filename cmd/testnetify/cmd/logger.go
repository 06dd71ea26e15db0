package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	tmlog "github.com/tendermint/tendermint/libs/log"
)

const (
	logFormatPlain = "plain"
	logFormatJSON  = "json"
)

// NewLogger returns a zerolog backed logger writing to w
func NewLogger(w io.Writer, level, format string) (tmlog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", flagLogLevel, level, err)
	}

	var out io.Writer
	switch strings.ToLower(format) {
	case logFormatPlain:
		out = zerolog.ConsoleWriter{Out: w}
	case logFormatJSON:
		out = w
	default:
		return nil, fmt.Errorf("invalid --%s %q, expected %s or %s", flagLogFormat, format, logFormatPlain, logFormatJSON)
	}

	return ZeroLogWrapper{zerolog.New(out).Level(lvl).With().Timestamp().Logger()}, nil
}

// ZeroLogWrapper provides a wrapper around a zerolog.Logger instance. It implements
// Tendermint's Logger interface.
type ZeroLogWrapper struct {
	zerolog.Logger
}

var _ tmlog.Logger = ZeroLogWrapper{}

// Info implements Tendermint's Logger interface and logs with level INFO.
func (z ZeroLogWrapper) Info(msg string, keyVals ...interface{}) {
	z.Logger.Info().Fields(getLogFields(keyVals...)).Msg(msg)
}

// Error implements Tendermint's Logger interface and logs with level ERR.
func (z ZeroLogWrapper) Error(msg string, keyVals ...interface{}) {
	z.Logger.Error().Fields(getLogFields(keyVals...)).Msg(msg)
}

// Debug implements Tendermint's Logger interface and logs with level DEBUG.
func (z ZeroLogWrapper) Debug(msg string, keyVals ...interface{}) {
	z.Logger.Debug().Fields(getLogFields(keyVals...)).Msg(msg)
}

// With returns a new wrapped logger with additional context provided by a set
// of key/value tuples.
func (z ZeroLogWrapper) With(keyVals ...interface{}) tmlog.Logger {
	return ZeroLogWrapper{z.Logger.With().Fields(getLogFields(keyVals...)).Logger()}
}

func getLogFields(keyVals ...interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keyVals)/2)
	for i := 0; i+1 < len(keyVals); i += 2 {
		fields[fmt.Sprint(keyVals[i])] = keyVals[i+1]
	}
	return fields
}
