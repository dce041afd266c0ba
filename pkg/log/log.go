// Package log provides leveled key/value logging for winzigc with a compact
// terminal format
package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const timeFormat = "15:04:05.000"

// ParseLevel converts a level name into a slog level
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "trace":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error", "crit":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// New creates a logger writing to w. Colors are applied only when useColor is set.
func New(w io.Writer, level slog.Leveler, useColor bool) *slog.Logger {
	return slog.New(NewTerminalHandler(w, level, useColor))
}

// NewTerminal creates a logger on stderr that colors its output when stderr is a terminal
func NewTerminal(level slog.Leveler) *slog.Logger {
	fd := os.Stderr.Fd()
	useColor := (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) && !color.NoColor
	return New(colorable.NewColorable(os.Stderr), level, useColor)
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(NewTerminalHandler(io.Discard, slog.LevelError+1, false))
}

// TerminalHandler formats records as "LVL [time] message key=value ..."
type TerminalHandler struct {
	mu       *sync.Mutex
	w        io.Writer
	level    slog.Leveler
	useColor bool
	attrs    []slog.Attr
	group    string
}

// NewTerminalHandler creates the handler behind New
func NewTerminalHandler(w io.Writer, level slog.Leveler, useColor bool) *TerminalHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &TerminalHandler{
		mu:       &sync.Mutex{},
		w:        w,
		level:    level,
		useColor: useColor,
	}
}

// Enabled implements slog.Handler
func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler
func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	buf.WriteString(h.levelString(r.Level))
	if !r.Time.IsZero() {
		fmt.Fprintf(&buf, " [%s]", r.Time.Format(timeFormat))
	}
	buf.WriteByte(' ')
	buf.WriteString(r.Message)

	for _, a := range h.attrs {
		h.writeAttr(&buf, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&buf, h.group, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

// WithAttrs implements slog.Handler
func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

// WithGroup implements slog.Handler
func (h *TerminalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if clone.group != "" {
		clone.group += "." + name
	} else {
		clone.group = name
	}
	return &clone
}

// writeAttr writes one key=value pair. Attributes bound through WithAttrs
// already carry their group prefix.
func (h *TerminalHandler) writeAttr(buf *bytes.Buffer, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			ga.Key = a.Key + "." + ga.Key
			h.writeAttr(buf, group, ga)
		}
		return
	}

	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	buf.WriteByte(' ')
	buf.WriteString(h.paint(color.Faint, key))
	buf.WriteByte('=')
	buf.WriteString(formatValue(a.Value))
}

func formatValue(v slog.Value) string {
	s := v.String()
	if v.Kind() == slog.KindString && (s == "" || strings.ContainsAny(s, " =\"\t\n")) {
		return fmt.Sprintf("%q", s)
	}
	return s
}

func (h *TerminalHandler) levelString(level slog.Level) string {
	var name string
	var attr color.Attribute
	switch {
	case level >= slog.LevelError:
		name, attr = "EROR", color.FgRed
	case level >= slog.LevelWarn:
		name, attr = "WARN", color.FgYellow
	case level >= slog.LevelInfo:
		name, attr = "INFO", color.FgGreen
	default:
		name, attr = "DBUG", color.FgCyan
	}
	return h.paint(attr, name)
}

func (h *TerminalHandler) paint(attr color.Attribute, s string) string {
	if !h.useColor {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}
