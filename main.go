package main

import (
	"flag"
	"log"

	"github.com/dailly-ideas/editor-app/internal/ui"
)

func main() {
	bg := flag.String("background", "", "background image path or http(s) URL")
	width := flag.Int("width", 800, "surface width in pixels")
	height := flag.Int("height", 600, "surface height in pixels")
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatalf("width and height must be positive, got %dx%d", *width, *height)
	}

	ui.RunApp(ui.Config{
		Background: *bg,
		Width:      *width,
		Height:     *height,
	})
}
