package imagemeta

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"io"

	"github.com/jobmoz/job-board/internal/job"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

const (
	Width  = 1200
	Height = 628
)

var (
	backgroundColor = color.RGBA{R: 4, G: 120, B: 87, A: 255}
	panelColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	mainTextColor   = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	accentColor     = color.RGBA{R: 5, G: 150, B: 105, A: 255}
)

// GenerateImageForJob draws the social share card of a job as a PNG.
func GenerateImageForJob(j job.Job) (io.ReadWriter, error) {
	dc := gg.NewContext(Width, Height)
	w := bytes.NewBuffer([]byte{})

	dc.SetColor(backgroundColor)
	dc.Clear()
	margin := 60.0
	dc.SetColor(panelColor)
	dc.DrawRoundedRectangle(margin, margin, Width-2*margin, Height-2*margin, 24)
	dc.Fill()

	textMargin := margin + 50
	maxWidth := float64(Width) - 2*textMargin
	title := fmt.Sprintf("%s\n\n%s\n\n%s", j.Title, j.Company, j.Location)
	dc.SetColor(mainTextColor)
	dc.DrawStringWrapped(title, textMargin, textMargin, 0, 0, maxWidth, 1.5, gg.AlignLeft)

	footer := fmt.Sprintf("%s  |  %s", j.Type, job.SalaryRangeLabel(j.SalaryRange))
	dc.SetColor(accentColor)
	dc.DrawStringAnchored(footer, textMargin, Height-margin-50, 0, 0)

	if err := png.Encode(w, dc.Image()); err != nil {
		return w, errors.Wrap(err, "unable to encode job image")
	}
	return w, nil
}
