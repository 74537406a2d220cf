package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Config holds the three component inputs: the background image source and
// the surface dimensions.
type Config struct {
	Background string
	Width      int
	Height     int
}

func RunApp(cfg Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Canvas Annotator")

	surface := NewSurface(cfg.Width, cfg.Height, cfg.Background)

	status := widget.NewLabel("Ready")
	surface.OnStatus = status.SetText

	toolbar := NewToolbar(surface, func() {
		ShowExportDialog(myWindow, surface)
	})

	content := container.NewBorder(toolbar, status, nil, nil, container.NewCenter(surface))
	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(float32(cfg.Width)+40, float32(cfg.Height)+120))

	// Teardown must release the surface on every exit path.
	myWindow.SetOnClosed(surface.Close)
	myWindow.ShowAndRun()
}
