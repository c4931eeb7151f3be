//go:build tinygo

package main

import (
	"desktoy/app"
	"desktoy/hal"
)

func main() {
	app.Run(hal.New())
}
