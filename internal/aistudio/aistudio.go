// Package aistudio prepares uploaded photos for AI editing and runs them
// through an Editor. The bundled editor is a stand-in that only simulates
// the processing time.
package aistudio

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"strings"
	"time"

	"github.com/jobmoz/job-board/internal/latency"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"
)

const (
	MaxUploadBytes = 5 << 20
	MaxDimension   = 1024

	DefaultEditLatency = 2 * time.Second

	contentTypePNG  = "image/png"
	contentTypeJPEG = "image/jpeg"
)

// UserError carries a message meant to be shown to the user as is.
type UserError struct {
	Message string
}

func (e *UserError) Error() string { return e.Message }

var (
	ErrPromptRequired   = &UserError{Message: "Por favor, descreva como deseja editar a imagem."}
	ErrImageRequired    = &UserError{Message: "Por favor, carregue uma imagem."}
	ErrUnsupportedImage = &UserError{Message: "Formato de imagem não suportado. Use PNG ou JPEG."}
	ErrImageTooLarge    = &UserError{Message: "A imagem deve ter no máximo 5 MB."}
	ErrEditFailed       = &UserError{Message: "Falha ao processar imagem com IA."}
)

type Editor interface {
	Edit(ctx context.Context, img image.Image, prompt string) (image.Image, error)
}

// MockEditor waits for Delay and hands back the image it was given.
type MockEditor struct {
	Delay time.Duration
	Sleep latency.Sleeper
}

func (e MockEditor) Edit(ctx context.Context, img image.Image, prompt string) (image.Image, error) {
	sleep := e.Sleep
	if sleep == nil {
		sleep = latency.Real
	}
	if err := sleep(ctx, e.Delay); err != nil {
		return nil, err
	}
	return img, nil
}

type Result struct {
	MediaID     string `json:"mediaId"`
	ContentType string `json:"contentType"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Image       []byte `json:"-"`
}

type Studio struct {
	editor Editor
	logger zerolog.Logger
}

func NewStudio(editor Editor, logger zerolog.Logger) *Studio {
	return &Studio{editor: editor, logger: logger.With().Str("component", "aistudio").Logger()}
}

// Edit validates the upload, scales it down to fit MaxDimension and returns
// the edited image encoded in the upload's format.
func (s *Studio) Edit(ctx context.Context, data []byte, prompt string) (Result, error) {
	if len(data) == 0 {
		return Result{}, ErrImageRequired
	}
	if strings.TrimSpace(prompt) == "" {
		return Result{}, ErrPromptRequired
	}
	if len(data) > MaxUploadBytes {
		return Result{}, ErrImageTooLarge
	}
	contentType := http.DetectContentType(data)
	if contentType != contentTypePNG && contentType != contentTypeJPEG {
		return Result{}, ErrUnsupportedImage
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		s.logger.Warn().Err(err).Msg("unable to decode upload")
		return Result{}, ErrUnsupportedImage
	}
	img = FitWithin(img, MaxDimension)

	edited, err := s.editor.Edit(ctx, img, prompt)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}
		s.logger.Error().Err(err).Msg("editor failed")
		return Result{}, ErrEditFailed
	}

	buf := &bytes.Buffer{}
	switch contentType {
	case contentTypePNG:
		err = png.Encode(buf, edited)
	default:
		err = jpeg.Encode(buf, edited, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return Result{}, errors.Wrap(err, "unable to encode edited image")
	}
	bounds := edited.Bounds()
	res := Result{
		MediaID:     ksuid.New().String(),
		ContentType: contentType,
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Image:       buf.Bytes(),
	}
	s.logger.Info().Str("media_id", res.MediaID).Int("width", res.Width).Int("height", res.Height).Msg("image edited")
	return res, nil
}

// FitWithin scales img down, keeping its aspect ratio, so neither side
// exceeds max. Smaller images are returned untouched.
func FitWithin(img image.Image, max int) image.Image {
	b := img.Bounds()
	if b.Dx() <= max && b.Dy() <= max {
		return img
	}
	if b.Dx() >= b.Dy() {
		return resize.Resize(uint(max), 0, img, resize.Lanczos3)
	}
	return resize.Resize(0, uint(max), img, resize.Lanczos3)
}
