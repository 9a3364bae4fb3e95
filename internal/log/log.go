// Package log writes one JSON line per event. The shell logs user actions
// through Info, Audit, Security and Error; the core packages never log.
package log

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"marketplace/internal/domain"
)

var std = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Setup sets the level and, when file is not empty, appends to that file
// instead of stderr. An unknown level falls back to info. The returned
// closer releases the file.
func Setup(level, file string) (io.Closer, error) {
	var out io.WriteCloser = nopCloser{os.Stderr}
	if file != "" {
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, errors.Wrapf(domain.ErrStorage, "open log file %s: %v", file, err)
		}
		out = f
	}
	std.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		std.SetLevel(lvl)
		std.WithField("level_requested", level).Warn("log.level.invalid")
		return out, nil
	}
	std.SetLevel(lvl)
	return out, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// SetOutput redirects all entries to w.
func SetOutput(w io.Writer) { std.SetOutput(w) }

func Logger() *logrus.Logger { return std }

func write(level logrus.Level, kind, action string, err error, fields map[string]any) {
	e := std.WithFields(logrus.Fields(fields)).WithField("kind", kind)
	if err != nil {
		e = e.WithError(err).WithField("error_kind", domain.Kind(err))
	}
	e.Log(level, action)
}

func Info(action string, fields map[string]any) { write(logrus.InfoLevel, "info", action, nil, fields) }
func Audit(action string, fields map[string]any) {
	write(logrus.InfoLevel, "audit", action, nil, fields)
}
func Security(action string, fields map[string]any) {
	write(logrus.WarnLevel, "security", action, nil, fields)
}
func Error(action string, err error, fields map[string]any) {
	write(logrus.ErrorLevel, "error", action, err, fields)
}
