// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"go.uber.org/zap/zapcore"
)

// Config defines the configuration of a logger
type Config struct {
	RotatingWriterConfig
	DisableWriterDisplaying bool  `json:"disableWriterDisplaying"`
	LogLevel                Level `json:"logLevel"`
	DisplayLevel            Level `json:"displayLevel"`
	// MsgPrefix is the prefix to add to all log messages
	MsgPrefix string `json:"-"`
	// LoggerName is the name of the logger
	LoggerName string `json:"-"`
}

// RotatingWriterConfig defines the configuration of the rotating file writer
type RotatingWriterConfig struct {
	MaxSize   int    `json:"maxSize"` // in megabytes
	MaxFiles  int    `json:"maxFiles"`
	MaxAge    int    `json:"maxAge"` // in days
	Directory string `json:"directory"`
	Compress  bool   `json:"compress"`
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("[01-02|15:04:05.000]"),
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

func fileEncoderConfig() zapcore.EncoderConfig {
	config := consoleEncoderConfig()
	config.CallerKey = "caller"
	config.EncodeCaller = zapcore.ShortCallerEncoder
	return config
}

// levelEncoder formats our custom levels, including the ones zap has no name
// for.
func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).String())
}
