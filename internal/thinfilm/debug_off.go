//go:build !debug
// +build !debug

package thinfilm

func DebugLog(format string, args ...interface{})     {}
func DebugLogOnce(format string, args ...interface{}) {}
