package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/dailly-ideas/editor-app/internal/export"
)

// ShowExportDialog rasterizes the current surface contents and writes the
// PNG through a save dialog. The surface state is unchanged either way.
func ShowExportDialog(win fyne.Window, surface *Surface) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer func() {
			if cerr := writer.Close(); cerr != nil {
				log.Printf("export: closing file: %v", cerr)
			}
		}()

		img := export.Render(
			surface.BackgroundImage(),
			surface.Shapes(),
			surface.CanvasWidth(),
			surface.CanvasHeight(),
		)
		if werr := export.WritePNG(writer, img); werr != nil {
			log.Printf("export: %v", werr)
			surface.setStatus("export failed")
			return
		}
		surface.setStatus("exported " + writer.URI().Name())
	}, win)
	d.SetFileName(export.DefaultFileName)
	d.Show()
}
