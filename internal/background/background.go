// Package background loads and scales the image a surface is bound to.
package background

import (
	"fmt"
	"image"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
)

// Load reads the background image from source, which is either an http(s)
// URL or a local file path. There is no retry and no cancellation: a slow or
// failed load only delays the surface's first snapshot.
func Load(source string) (image.Image, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("fetch background: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch background: unexpected status %s", resp.Status)
		}
		img, err := imaging.Decode(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("decode background: %w", err)
		}
		return img, nil
	}

	img, err := imaging.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open background: %w", err)
	}
	return img, nil
}

// Fit scales img to exactly cover width x height, ignoring the source aspect
// ratio so the surface and the image always coincide.
func Fit(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
