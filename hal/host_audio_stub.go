//go:build !tinygo && !cgo

package hal

// nullBuzzer stands in when no audio backend is compiled.
type nullBuzzer struct{}

func newHostBuzzer() Buzzer { return nullBuzzer{} }

func (nullBuzzer) SetTone(uint16) error { return nil }
func (nullBuzzer) Stop() error          { return nil }
