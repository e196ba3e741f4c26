/*
Copyright 2020 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package debug

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// if this directory is defined, the loggers will write into it
const (
	debugLogDir = "TICKRANGE_DEBUG_LOG_DIRECTORY"
)

var (
	lock         sync.Mutex
	cleanupFuncs = make([]LoggerCleanupFunc, 0)
)

type LoggerCleanupFunc func()

func initNoopLogger() *logrus.Logger {
	lgr := logrus.New()
	lgr.SetOutput(io.Discard)
	return lgr
}

func registerCleanupFunc(cleanup func()) {
	lock.Lock()
	defer lock.Unlock()
	cleanupFuncs = append(cleanupFuncs, cleanup)
}

// Teardown closes every log file opened by NewDebugLogger.
func Teardown() {
	lock.Lock()
	defer lock.Unlock()
	for _, f := range cleanupFuncs {
		f()
	}
	cleanupFuncs = cleanupFuncs[:0]
}

// NewDebugLogger returns a logger writing to logfileName in the debug log
// directory, or one that discards everything if that isn't set.
func NewDebugLogger(logfileName string) *logrus.Logger {
	lgr := initNoopLogger()
	if l := os.Getenv(debugLogDir); l != "" {
		f, err := os.OpenFile(filepath.Join(l, logfileName), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err == nil {
			lgr.SetOutput(f)
			lgr.SetLevel(logrus.DebugLevel)
			lgr.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
			lgr.Infof("%v enabled", logfileName)
			registerCleanupFunc(func() {
				f.Close()
			})
		}
	}
	return lgr
}

// NewStderrLogger returns a logger for command line use, writing warnings and
// worse to w unless verbose is set.
func NewStderrLogger(w io.Writer, verbose bool) *logrus.Logger {
	lgr := logrus.New()
	lgr.SetOutput(w)
	lgr.SetLevel(logrus.WarnLevel)
	if verbose {
		lgr.SetLevel(logrus.DebugLevel)
	}
	return lgr
}

// NewLogger returns a debug logger if the debug log directory is set and a
// stderr logger on w otherwise.
func NewLogger(logfileName string, w io.Writer, verbose bool) *logrus.Logger {
	if os.Getenv(debugLogDir) != "" {
		return NewDebugLogger(logfileName)
	}
	return NewStderrLogger(w, verbose)
}
