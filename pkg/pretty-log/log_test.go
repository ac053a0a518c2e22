package prettylog_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	prettylog "vector2d.theprimeagen.com/pkg/pretty-log"
	quickmath "vector2d.theprimeagen.com/pkg/quick-math"
)

func getLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	prettyHandler := prettylog.New(&slog.HandlerOptions{
		Level:       level,
		AddSource:   false,
		ReplaceAttr: nil,
	}, prettylog.WithDestinationWriter(buf), prettylog.WithoutTime())

	return slog.New(prettyHandler), buf
}

func lines(buf *bytes.Buffer) []string {
	out := []string{}
	for _, v := range strings.Split(buf.String(), "\n") {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func TestPrettyLoggerPrefix(t *testing.T) {
	logger, buf := getLogger(slog.LevelDebug)

	logger.With("process", "t").With("area", "t").Info("both")
	logger.With("area", "Sim").Warn("area only")
	logger.Info("bare")

	parts := lines(buf)
	require.Equal(t, []string{
		"t:t INFO: both",
		"Sim WARN: area only",
		"INFO: bare",
	}, parts)
}

func TestPrettyLoggerWithArgs(t *testing.T) {
	logger, buf := getLogger(slog.LevelDebug)
	logger = logger.With("area", "t")

	logger.Info("step", "n", 2, "name", "two words")
	logger.WithGroup("world").Info("bounds", "w", 10.5, "ok", true)
	logger.Info("point", "pos", quickmath.NewVec2(3, -4))

	parts := lines(buf)
	require.Equal(t, []string{
		`t INFO: step n=2 name="two words"`,
		"t INFO: bounds world.ok=true world.w=10.5",
		"t INFO: point pos.x=3 pos.y=-4",
	}, parts)
}

func TestPrettyLoggerLevel(t *testing.T) {
	logger, buf := getLogger(slog.LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Error("shown")

	require.Equal(t, []string{"ERROR: shown"}, lines(buf))
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, prettylog.ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, prettylog.ParseLevel(" warning "))
	require.Equal(t, slog.LevelError, prettylog.ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, prettylog.ParseLevel(""))
	require.Equal(t, slog.LevelInfo, prettylog.ParseLevel("loud"))
}
