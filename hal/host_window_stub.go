//go:build !tinygo && !cgo

package hal

import "fmt"

// RunWindow needs ebiten, which needs cgo. Without it only -headless works.
func RunWindow(_ func(h HAL) func() error) error {
	return fmt.Errorf("%w: window mode requires cgo, rebuild with CGO_ENABLED=1 or run with -headless", ErrNotImplemented)
}
