// Package errx provides logging-aware error propagation helpers,
// extending the standard library errors package.
package errx

import (
	"log/slog"
	"runtime"
	"strconv"
)

// Log logs the given error via slog if it is non-nil, then returns it
// unchanged. The intended usage is:
//
//	return errx.Log(doThing())
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return err
}

// Log1 logs err if non-nil and returns v regardless. The intended usage is:
//
//	result := errx.Log1(doThing())
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return v
}

// Must panics if err is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns v, panicking if err is non-nil.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// callerInfo reports the function, file, and line of the code that called
// the helper (Log or Log1) which calls callerInfo.
func callerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	name := "unknown"
	if fn != nil {
		name = fn.Name()
	}
	return name + " " + file + ":" + strconv.Itoa(line)
}
