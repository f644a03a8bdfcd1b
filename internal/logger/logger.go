// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logger provides the shared structured logger. The TUI swallows
// stderr, so interactive runs direct logs to a file under the config
// directory while plain CLI runs default to stderr.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the process-wide logger. Replaced by Configure; packages that
// log grab it through L() so they always see the current instance.
var Logger = defaultLogger()

func defaultLogger() *log.Logger {
	l := log.New(os.Stderr)
	l.SetTimeFormat("15:04:05")
	l.SetLevel(log.WarnLevel)
	return l
}

// L returns the current logger.
func L() *log.Logger { return Logger }

// Configure rebuilds the logger. An empty level falls back to the
// CLOWNGPT_LOG_LEVEL environment variable, then to "warn". A non-empty
// file path redirects output there, appending.
func Configure(level, file string) error {
	if level == "" {
		level = os.Getenv("CLOWNGPT_LOG_LEVEL")
	}

	var out io.Writer = os.Stderr
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		out = f
	}

	l := log.New(out)
	l.SetTimeFormat("15:04:05")
	l.SetLevel(parseLevel(level))
	Logger = l
	return nil
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.WarnLevel
	}
}
