//go:build !debug
// +build !debug

package waveoptics

func DebugLog(format string, args ...interface{})     {}
func DebugLogOnce(format string, args ...interface{}) {}
