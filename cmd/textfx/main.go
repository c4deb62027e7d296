// Command textfx renders layered text effects to images.
//
// Usage:
//
//	textfx layers init logo.json
//	textfx layers add logo.json outerGlow
//	textfx render logo.json --text "Hello" -o hello.png
//	textfx inspect logo.json --text "Hello"
//	textfx watch logo.json --text "Hello" -o hello.png
//	textfx batch -o out/ presets/*.toml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
