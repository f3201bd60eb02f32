package logging

import (
	"fmt"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"www.velocidex.com/golang/sysmon-report/config"
)

var (
	ToolComponent   = "SysmonReport"
	ParserComponent = "Parser"

	mu       sync.Mutex
	contexts = make(map[*string]*LogContext)
)

// A wrapper around a logrus logger which provides printf style
// convenience methods.
type LogContext struct {
	*logrus.Logger
}

func (self *LogContext) Debug(format string, v ...interface{}) {
	if self.Logger != nil {
		self.Logger.Debug(fmt.Sprintf(format, v...))
	}
}

func (self *LogContext) Info(format string, v ...interface{}) {
	if self.Logger != nil {
		self.Logger.Info(fmt.Sprintf(format, v...))
	}
}

func (self *LogContext) Warn(format string, v ...interface{}) {
	if self.Logger != nil {
		self.Logger.Warn(fmt.Sprintf(format, v...))
	}
}

func (self *LogContext) Error(format string, v ...interface{}) {
	if self.Logger != nil {
		self.Logger.Error(fmt.Sprintf(format, v...))
	}
}

// GetLogger returns the logger for the named component, creating it
// on first use. Loggers are cached so each component logs through a
// single logrus instance for the lifetime of the process.
func GetLogger(config_obj *config.Config, component *string) *LogContext {
	mu.Lock()
	defer mu.Unlock()

	ctx, pres := contexts[component]
	if pres {
		return ctx
	}

	logger := logrus.New()
	logger.Out = os.Stderr
	logger.Level = logrus.InfoLevel
	if config_obj != nil && config_obj.Verbose {
		logger.Level = logrus.DebugLevel
	}

	logger.Formatter = &logrus.TextFormatter{
		DisableColors: !isatty.IsTerminal(os.Stderr.Fd()),
		FullTimestamp: true,
	}

	// Tee log messages into the log file as JSONL so they can be
	// post processed.
	if config_obj != nil && config_obj.LogFile != "" {
		logger.Hooks.Add(lfshook.NewHook(
			lfshook.PathMap{
				logrus.DebugLevel: config_obj.LogFile,
				logrus.InfoLevel:  config_obj.LogFile,
				logrus.WarnLevel:  config_obj.LogFile,
				logrus.ErrorLevel: config_obj.LogFile,
			}, &logrus.JSONFormatter{}))
	}

	ctx = &LogContext{logger}
	contexts[component] = ctx

	return ctx
}
