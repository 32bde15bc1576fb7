package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a development style console logger writing to w at the
// named level (debug, info, warn or error).
func newLogger(verbosity string, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(verbosity)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000 02/01/2006 -07:00")

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		level,
	)

	return zap.New(core), nil
}
