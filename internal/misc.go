package internal

import (
	"reflect"
	"runtime"
	"sync/atomic"
)

var (
	currentVersion = "0.1.0"
)

var (
	id atomic.Int64 // default value is 0
)

// Version returns the library version, recorded in saved picker state.
func Version() string {
	return currentVersion
}

// NextId returns a unique integer (for the given process), used to tell picker sessions apart in logs. This function is thread-safe.
func NextId() int64 {
	return id.Add(1)
}

// GetFunctionName returns the name of the function that the interface is a pointer to.
func GetFunctionName(i interface{}) string {
	if i == nil {
		return "<nil>"
	}
	v := reflect.ValueOf(i)
	if v.Kind() == reflect.Func && v.IsNil() {
		return "<nil>"
	}
	return runtime.FuncForPC(v.Pointer()).Name()
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}
