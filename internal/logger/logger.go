/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a process-wide logger that stays silent until an
// embedding program points it somewhere.
package logger

import (
	"io"
	"log"
	"sync"
)

var (
	mu     sync.RWMutex
	output io.Writer = io.Discard
	debug  bool
	logger = log.New(output, "teecfg: ", 0)
)

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	logger = log.New(output, "teecfg: ", 0)
}

// SetDebug enables or disables Debug messages.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = enabled
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Printf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Printf(format, args...)
}

// Debug logs a debug message when debugging is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if debug {
		logger.Printf("debug: "+format, args...)
	}
}

// DebugIf logs a debug message when enabled is set or debugging is enabled
// globally. It lets a caller hold its own debug switch.
func DebugIf(enabled bool, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if enabled || debug {
		logger.Printf("debug: "+format, args...)
	}
}
