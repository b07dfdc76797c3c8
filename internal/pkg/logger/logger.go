// Package logger implements ports.Logger on log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/doeshing/rkl-go/internal/ports"
)

// Common field keys.
const (
	KeyFragment   = "fragment"
	KeyPod        = "pod"
	KeyCommand    = "command"
	KeyCandidates = "candidates"
	KeyAction     = "action"
	KeyError      = "error"
)

// SlogLogger writes leveled text records. Info and above are always shown;
// Debug only when verbose.
type SlogLogger struct {
	logger *slog.Logger
}

// New creates a SlogLogger writing to w (stderr when nil).
func New(w io.Writer, verbose bool) *SlogLogger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return &SlogLogger{logger: slog.New(handler)}
}

// NewStd creates a SlogLogger on stderr.
func NewStd(verbose bool) *SlogLogger {
	return New(nil, verbose)
}

// Discard returns a logger that drops everything.
func Discard() *SlogLogger {
	return New(io.Discard, false)
}

func (l *SlogLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, attrs(fields)...)
}

func (l *SlogLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, attrs(fields)...)
}

func (l *SlogLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, attrs(fields)...)
}

func (l *SlogLogger) Error(msg string, err error, fields map[string]interface{}) {
	args := attrs(fields)
	if err != nil {
		args = append(args, slog.String(KeyError, err.Error()))
	}
	l.logger.Error(msg, args...)
}

// attrs converts fields to slog attributes in key order so output is stable.
func attrs(fields map[string]interface{}) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, slog.Any(k, fields[k]))
	}
	return out
}

var _ ports.Logger = (*SlogLogger)(nil)
