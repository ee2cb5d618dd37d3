package main

import (
	"io"
	"log"
	"os"
)

type stdLogger struct {
	l       *log.Logger
	verbose bool
}

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *stdLogger {
	return &stdLogger{l: log.New(w, "huffpack: ", log.LstdFlags)}
}

func (l *stdLogger) SetVerbose(verbose bool) { l.verbose = verbose }

func (l *stdLogger) Infof(format string, v ...interface{}) {
	if l.verbose {
		l.l.Printf("[INFO] "+format, v...)
	}
}

func (l *stdLogger) Errorf(format string, v ...interface{}) {
	l.l.Printf("[ERROR] "+format, v...)
}
