package imagemeta

import (
	"image/png"
	"testing"

	"github.com/jobmoz/job-board/internal/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateImageForJob(t *testing.T) {
	for _, j := range job.MockJobs {
		r, err := GenerateImageForJob(j)
		require.NoError(t, err)

		img, err := png.Decode(r)
		require.NoError(t, err)
		assert.Equal(t, Width, img.Bounds().Dx())
		assert.Equal(t, Height, img.Bounds().Dy())
	}
}
