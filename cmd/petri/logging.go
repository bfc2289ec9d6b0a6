package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	logDir      = "logs"
	logFileName = "petri.log"
)

const maxLogSize = 10 * 1024 * 1024

// setupLogging routes the standard logger to a debug file, or discards all
// output when debug is off. The screen owns the terminal, so logging to
// stderr would corrupt the display. Returns the open file for the caller to
// close, nil when disabled.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)

	// Rotate oversized logs instead of growing without bound.
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		os.Rename(logPath, logPath+".old")
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	return f
}
