// ABOUTME: Animated GIF rendering of per-day agent snapshots.
// ABOUTME: One frame per day; agents drawn as status-colored dots on a square canvas.

package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"

	"github.com/flufighter/flufighter/backend/models"
)

// pointRadius is the dot radius in pixels for one agent.
const pointRadius = 3.0

var background = color.RGBA{R: 250, G: 250, B: 250, A: 255}

// Animation encodes the snapshot sequence as an animated GIF. Each frame
// scatters the population over a size×size canvas with positions scaled
// from the unit square; delay is per frame in 1/100ths of a second.
func Animation(snapshots []models.DaySnapshot, size, delay int) ([]byte, error) {
	if len(snapshots) == 0 {
		return nil, fmt.Errorf("no snapshots to animate")
	}

	out := &gif.GIF{}
	for _, snap := range snapshots {
		frame := drawFrame(snap, size)

		// GIF frames need a paletted image.
		paletted := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.Draw(paletted, frame.Bounds(), frame, frame.Bounds().Min, draw.Src)

		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, delay)
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, out); err != nil {
		return nil, fmt.Errorf("encode animation: %w", err)
	}
	return buf.Bytes(), nil
}

func drawFrame(snap models.DaySnapshot, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for _, agent := range snap.Agents {
		cx := agent.Position.X * float64(size)
		cy := agent.Position.Y * float64(size)
		fillCircle(img, cx, cy, pointRadius, statusColor(agent.Status))
	}
	return img
}

func statusColor(status models.Status) color.RGBA {
	switch status {
	case models.StatusInfected:
		return color.RGBA{R: 214, G: 39, B: 40, A: 255}
	case models.StatusRecovered:
		return color.RGBA{R: 44, G: 160, B: 44, A: 255}
	default:
		return color.RGBA{R: 255, G: 165, B: 0, A: 255}
	}
}

func fillCircle(img *image.RGBA, cx, cy, radius float64, c color.RGBA) {
	r := int(radius + 1)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if float64(dx*dx+dy*dy) > radius*radius {
				continue
			}
			img.SetRGBA(int(cx)+dx, int(cy)+dy, c)
		}
	}
}
