//go:build windows

// Package consoleinit sets up the console for UTF-8 output before any
// report is printed. On non-Windows platforms this is a no-op, since the
// terminal already speaks UTF-8; on Windows the console codepage otherwise
// defaults to the system locale and mangles the ε, ·, and # glyphs this
// program prints throughout its reports.
package consoleinit

import (
	"log"

	"golang.org/x/sys/windows"
)

const utf8CodePage = 65001

// Init switches the current console's input and output codepages to UTF-8.
// Failure is logged and otherwise ignored: a wrong codepage degrades
// display, it never affects correctness.
func Init() {
	if err := windows.SetConsoleOutputCP(utf8CodePage); err != nil {
		log.Printf("WARN  could not set console output codepage to UTF-8: %s", err)
	}
	if err := windows.SetConsoleCP(utf8CodePage); err != nil {
		log.Printf("WARN  could not set console input codepage to UTF-8: %s", err)
	}
}
