package common

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type Logger interface {
	Info(message string)
	Warn(message string)
	Error(message string)
}

const (
	levelInfo  = "INFO"
	levelWarn  = "WARN"
	levelError = "ERROR"
)

type consoleLogger struct {
	writer io.Writer
	mutex  sync.Mutex
}

// NewConsoleLogger writes one line per message to `writer` (usually os.Stdout).
func NewConsoleLogger(writer io.Writer) Logger {
	return &consoleLogger{
		writer: writer,
	}
}

func (c *consoleLogger) Info(message string) {
	c.log(levelInfo, message)
}

func (c *consoleLogger) Warn(message string) {
	c.log(levelWarn, message)
}

func (c *consoleLogger) Error(message string) {
	c.log(levelError, message)
}

func (c *consoleLogger) log(level, message string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	_, _ = io.WriteString(c.writer, formatLine(level, message))
}

type fileLogger struct {
	path       string
	fileWriter *bufio.Writer
	console    *consoleLogger
	mutex      sync.Mutex
}

// NewFileLogger logs to the file specified by `path`. If the file is unavailable, writes to the console.
func NewFileLogger(path string) Logger {
	return &fileLogger{
		path:    path,
		console: &consoleLogger{writer: os.Stdout},
	}
}

func (f *fileLogger) Info(message string) {
	f.log(levelInfo, message)
}

func (f *fileLogger) Warn(message string) {
	f.log(levelWarn, message)
}

func (f *fileLogger) Error(message string) {
	f.log(levelError, message)
}

func (f *fileLogger) log(level, message string) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if !f.fileWriterReady() {
		f.console.log(level, message)
		return
	}
	_, err := f.fileWriter.WriteString(formatLine(level, message))
	if err != nil {
		f.logErrorToConsole(err.Error())
		f.console.log(level, message)
		return
	}
	err = f.fileWriter.Flush()
	if err != nil {
		f.logErrorToConsole(err.Error())
	}
}

func (f *fileLogger) logErrorToConsole(message string) {
	f.console.log(levelError, fmt.Sprintf("%s. Logging switched to console.", message))
}

func (f *fileLogger) fileWriterReady() bool {
	if f.fileWriter != nil {
		return true
	}
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		f.logErrorToConsole(err.Error())
		return false
	}
	f.fileWriter = bufio.NewWriter(file)
	return true
}

func formatLine(level, message string) string {
	return fmt.Sprintf("%s %-5s %s\n", time.Now().Format(time.RFC3339), level, message)
}
