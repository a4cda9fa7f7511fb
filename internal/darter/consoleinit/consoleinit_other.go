//go:build !windows

// Package consoleinit sets up the console for UTF-8 output before any
// report is printed. On non-Windows platforms this is a no-op, since the
// terminal already speaks UTF-8.
package consoleinit

// Init is a no-op outside of Windows.
func Init() {}
