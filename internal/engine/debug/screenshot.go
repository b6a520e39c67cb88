// Package debug provides developer tooling for the viewer.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/logger"
)

// Screenshots writes frame captures as PNG files.
type Screenshots struct {
	outputDir string
	prefix    string
	now       func() time.Time
	seq       int
}

// NewScreenshots creates a capture writer. An empty outputDir writes to the
// working directory.
func NewScreenshots(outputDir, prefix string) *Screenshots {
	return &Screenshots{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// Capture saves RGBA pixels read back from the framebuffer. Rows are stored
// bottom-up and are flipped while copying.
func (s *Screenshots) Capture(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}

	name, err := s.write(img)
	if err != nil {
		return "", err
	}
	logger.Info("screenshot saved", zap.String("path", name), zap.Int("width", width), zap.Int("height", height))
	return name, nil
}

func (s *Screenshots) write(img image.Image) (string, error) {
	if s.outputDir != "" {
		if err := os.MkdirAll(s.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	name := s.filename()
	file, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return name, nil
}

// filename returns the next capture path. Captures within the same second
// get a sequence suffix.
func (s *Screenshots) filename() string {
	s.seq++
	name := fmt.Sprintf("%s_%s_%03d.png", s.prefix, s.now().Format("2006-01-02_15-04-05"), s.seq)
	if s.outputDir != "" {
		name = filepath.Join(s.outputDir, name)
	}
	return name
}
