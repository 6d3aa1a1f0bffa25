//go:build windows

package object

// nativeNewline is the host line terminator.
const nativeNewline = "\r\n"
