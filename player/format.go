package player

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// ErrUnsupportedFormat indicates the input's extension is neither a known
// image nor a known video format.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Kind is the media category of an input file.
type Kind int

const (
	// KindImage is a still image, rendered once.
	KindImage Kind = iota + 1
	// KindVideo is a video, played frame by frame with audio.
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	}

	return "unknown"
}

var (
	imageExts = []string{".jpg", ".jpeg", ".png", ".bmp", ".webp", ".tif", ".tiff"}
	videoExts = []string{".mp4", ".mov", ".mkv", ".webm", ".avi"}
)

// SupportedExtensions returns every accepted extension, images first.
func SupportedExtensions() []string {
	return slices.Concat(imageExts, videoExts)
}

// Classify maps path to a [Kind] by its extension, case-insensitively.
// Unknown extensions wrap [ErrUnsupportedFormat].
func Classify(path string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case slices.Contains(imageExts, ext):
		return KindImage, nil
	case slices.Contains(videoExts, ext):
		return KindVideo, nil
	}

	if ext == "" {
		return 0, fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}
