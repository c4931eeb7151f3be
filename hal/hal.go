// Package hal is the only contact point between the application and the
// hardware: a 1-bit display, a piezo buzzer, one button, time and logging.
// Exactly one backend is compiled per platform.
package hal

import "errors"

var ErrNotImplemented = errors.New("not implemented")

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Display is a 1-bit monochrome panel. Drawing mutates an off-screen
// buffer; Present pushes it to the panel.
type Display interface {
	Size() (w, h int)
	SetPixel(x, y int, on bool)
	Clear()
	Present() error
}

// Buzzer drives a square-wave tone. SetTone(0) and Stop both silence it.
type Buzzer interface {
	SetTone(freqHz uint16) error
	Stop() error
}

// Button reports the current level of the single input button. Edge
// detection is the caller's job.
type Button interface {
	Pressed() bool
}

// Time provides millisecond timestamps for animation and sequencing.
type Time interface {
	Millis() uint64
}

// HAL bundles the platform devices handed to the application.
type HAL interface {
	Logger() Logger
	Display() Display
	Buzzer() Buzzer
	Button() Button
	Time() Time
}
