package main

import (
	"io"
	"os"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("snake")

// SetupLogger routes all modules to w at the given level
func SetupLogger(w io.Writer, level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return errors.Wrapf(err, "log level %q", level)
	}

	format := logging.MustStringFormatter(
		`%{color}%{time:15:04:05.000} %{module} %{shortfunc} ▶ %{level:.4s} %{id:03x}%{color:reset} %{message}`,
	)
	backend := logging.NewLogBackend(w, "", 0)
	formatter := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(lvl, "")

	logging.SetBackend(leveled)
	return nil
}

// logOutput picks where logs go. The terminal backend owns the screen, so
// without a file its logs are dropped.
func logOutput(path, backend string) (io.Writer, func(), error) {
	if path == "" {
		if backend == backendTerminal {
			return io.Discard, func() {}, nil
		}
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file")
	}
	return f, func() { f.Close() }, nil
}
