// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"go.uber.org/zap"
)

var NoLog Logger = noLog{}

type noLog struct{}

func (noLog) Write(p []byte) (int, error) {
	return len(p), nil
}

func (noLog) Fatal(string, ...zap.Field) {}

func (noLog) Error(string, ...zap.Field) {}

func (noLog) Warn(string, ...zap.Field) {}

func (noLog) Info(string, ...zap.Field) {}

func (noLog) Debug(string, ...zap.Field) {}

func (noLog) Verbo(string, ...zap.Field) {}

func (noLog) Stop() {}
