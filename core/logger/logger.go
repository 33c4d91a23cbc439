package logger

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the process logger. Pretty console output in development,
// plain JSON otherwise.
func Init(env string) {
	if env == "development" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
}

func Info(msg string, args ...any) {
	withArgs(log.Info(), args).Msg(msg)
}

func Warn(msg string, args ...any) {
	withArgs(log.Warn(), args).Msg(msg)
}

func Error(msg string, args ...any) {
	withArgs(log.Error(), args).Msg(msg)
}

func Fatal(msg string, args ...any) {
	withArgs(log.Fatal(), args).Msg(msg)
}

// withArgs accepts loose "key", value pairs; a bare error is attached under
// the standard error key.
func withArgs(ev *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i < len(args); i++ {
		if err, ok := args[i].(error); ok {
			ev = ev.Err(err)
			continue
		}
		if key, ok := args[i].(string); ok && i+1 < len(args) {
			ev = ev.Interface(key, args[i+1])
			i++
			continue
		}
		ev = ev.Str(fmt.Sprintf("arg%d", i), fmt.Sprint(args[i]))
	}
	return ev
}
