package prettylog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
)

const (
	timeFormat = "[15:04:05.000]"

	reset = "\033[0m"

	cyan         = 36
	lightGray    = 37
	darkGray     = 90
	lightRed     = 91
	lightYellow  = 93
	lightBlue    = 94
	lightMagenta = 95
	white        = 97
)

// attributes pulled out of the attr list and printed as a prefix
const (
	ProcessKey = "process"
	AreaKey    = "area"
)

func colorizer(colorCode int, v string) string {
	return fmt.Sprintf("\033[%sm%s%s", strconv.Itoa(colorCode), v, reset)
}

// Handler prints records as
//
//	[15:04:05.000] process:area LEVEL: msg key=value ...
//
// Attributes are produced by an inner JSON handler so groups and
// LogValuers behave exactly as they do with slog.JSONHandler.
type Handler struct {
	h        slog.Handler
	r        func([]string, slog.Attr) slog.Attr
	buf      *bytes.Buffer
	m        *sync.Mutex
	writer   io.Writer
	colorize bool
	withTime bool
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *Handler) clone(inner slog.Handler) *Handler {
	c := *h
	c.h = inner
	return &c
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.clone(h.h.WithAttrs(attrs))
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return h.clone(h.h.WithGroup(name))
}

func (h *Handler) computeAttrs(
	ctx context.Context,
	r slog.Record,
) (map[string]any, error) {
	h.m.Lock()
	defer func() {
		h.buf.Reset()
		h.m.Unlock()
	}()
	if err := h.h.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any
	err := json.Unmarshal(h.buf.Bytes(), &attrs)
	if err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}
	return attrs, nil
}

func (h *Handler) levelColor(level slog.Level) int {
	switch {
	case level <= slog.LevelDebug:
		return lightGray
	case level <= slog.LevelInfo:
		return cyan
	case level < slog.LevelWarn:
		return lightBlue
	case level < slog.LevelError:
		return lightYellow
	case level <= slog.LevelError+1:
		return lightRed
	default:
		return lightMagenta
	}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	colorize := func(code int, value string) string {
		return value
	}
	if h.colorize {
		colorize = colorizer
	}

	parts := []string{}

	if h.withTime {
		timeAttr := slog.Attr{
			Key:   slog.TimeKey,
			Value: slog.StringValue(r.Time.Format(timeFormat)),
		}
		if h.r != nil {
			timeAttr = h.r([]string{}, timeAttr)
		}
		if !timeAttr.Equal(slog.Attr{}) {
			parts = append(parts, colorize(lightGray, timeAttr.Value.String()))
		}
	}

	attrs, err := h.computeAttrs(ctx, r)
	if err != nil {
		return err
	}

	if prefix := takePrefix(attrs); prefix != "" {
		parts = append(parts, colorize(darkGray, prefix))
	}

	levelAttr := slog.Attr{
		Key:   slog.LevelKey,
		Value: slog.AnyValue(r.Level),
	}
	if h.r != nil {
		levelAttr = h.r([]string{}, levelAttr)
	}
	if !levelAttr.Equal(slog.Attr{}) {
		parts = append(parts, colorize(h.levelColor(r.Level), levelAttr.Value.String()+":"))
	}

	msgAttr := slog.Attr{
		Key:   slog.MessageKey,
		Value: slog.StringValue(r.Message),
	}
	if h.r != nil {
		msgAttr = h.r([]string{}, msgAttr)
	}
	if !msgAttr.Equal(slog.Attr{}) {
		parts = append(parts, colorize(white, msgAttr.Value.String()))
	}

	if len(attrs) > 0 {
		parts = append(parts, colorize(darkGray, formatAttrs(attrs)))
	}

	_, err = io.WriteString(h.writer, strings.Join(parts, " ")+"\n")
	return err
}

func takePrefix(attrs map[string]any) string {
	prefix := []string{}
	for _, key := range []string{ProcessKey, AreaKey} {
		if v, ok := attrs[key].(string); ok {
			prefix = append(prefix, v)
			delete(attrs, key)
		}
	}
	return strings.Join(prefix, ":")
}

func flatten(prefix string, in map[string]any, out map[string]any) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		if group, ok := v.(map[string]any); ok {
			flatten(key, group, out)
			continue
		}
		out[key] = v
	}
}

func formatAttrs(attrs map[string]any) string {
	flat := map[string]any{}
	flatten("", attrs, flat)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+formatValue(flat[k]))
	}
	return strings.Join(out, " ")
}

func formatValue(v any) string {
	switch value := v.(type) {
	case string:
		if strings.ContainsAny(value, " =\"") || value == "" {
			return strconv.Quote(value)
		}
		return value
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}

func suppressDefaults(
	next func([]string, slog.Attr) slog.Attr,
) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey ||
			a.Key == slog.LevelKey ||
			a.Key == slog.MessageKey {
			return slog.Attr{}
		}
		if next == nil {
			return a
		}
		return next(groups, a)
	}
}

func New(handlerOptions *slog.HandlerOptions, options ...Option) *Handler {
	if handlerOptions == nil {
		handlerOptions = &slog.HandlerOptions{}
	}

	buf := &bytes.Buffer{}
	handler := &Handler{
		buf: buf,
		h: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       handlerOptions.Level,
			AddSource:   handlerOptions.AddSource,
			ReplaceAttr: suppressDefaults(handlerOptions.ReplaceAttr),
		}),
		r:        handlerOptions.ReplaceAttr,
		m:        &sync.Mutex{},
		writer:   os.Stdout,
		withTime: true,
	}

	for _, opt := range options {
		opt(handler)
	}

	return handler
}

func NewHandler(opts *slog.HandlerOptions) *Handler {
	return New(opts, WithDestinationWriter(os.Stdout), WithColor())
}

type Option func(h *Handler)

func WithDestinationWriter(writer io.Writer) Option {
	return func(h *Handler) {
		h.writer = writer
	}
}

func WithColor() Option {
	return func(h *Handler) {
		h.colorize = true
	}
}

func WithoutTime() Option {
	return func(h *Handler) {
		h.withTime = false
	}
}

// ParseLevel maps debug|info|warn|error to a slog level, anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetProgramLevelPrettyLogger() *slog.Logger {
	prettyHandler := NewHandler(&slog.HandlerOptions{
		Level:       ParseLevel(os.Getenv("LOG_LEVEL")),
		AddSource:   false,
		ReplaceAttr: nil,
	})
	logger := slog.New(prettyHandler)
	slog.SetDefault(logger)
	return logger
}
