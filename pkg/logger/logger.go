package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction. Filename enables the rotating file
// sink in addition to stdout/stderr.
type Options struct {
	Level      string // debug | info | warn | error
	Format     string // console | json
	Output     string // stdout | stderr
	Filename   string // rotating file path, empty to disable
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New builds a zap logger writing leveled, structured records to the console
// and, when configured, to a size/age-rotated file.
func New(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if opts.Format == "console" {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	console := zapcore.Lock(os.Stdout)
	if opts.Output == "stderr" {
		console = zapcore.Lock(os.Stderr)
	}

	cores := []zapcore.Core{zapcore.NewCore(enc, console, level)}
	if opts.Filename != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.Filename,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		fileEnc := zapcore.NewJSONEncoder(encCfg)
		cores = append(cores, zapcore.NewCore(fileEnc, zapcore.AddSync(rotator), level))
	}

	lg := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	zap.ReplaceGlobals(lg)
	return lg, nil
}
