package video

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"go.jacobcolvin.com/asciify/ascii"
)

// ErrNoVideoStream indicates the probed file has no video stream.
var ErrNoVideoStream = errors.New("no video stream")

// Info describes the first video stream of a file.
type Info struct {
	Codec string
	// Width and Height are the stored (coded) size, before rotation.
	Width  int
	Height int
	// Rotation is the display rotation in degrees, normalized to
	// 0, 90, 180 or 270.
	Rotation  int
	FrameRate float64
}

// DisplaySize returns the frame size after ffmpeg applies the display
// rotation: width and height swap for quarter turns.
func (i Info) DisplaySize() (int, int) {
	if i.Rotation == 90 || i.Rotation == 270 {
		return i.Height, i.Width
	}

	return i.Width, i.Height
}

type probeOutput struct {
	Streams []struct {
		CodecType    string `json:"codec_type"`
		CodecName    string `json:"codec_name"`
		RFrameRate   string `json:"r_frame_rate"`
		AvgFrameRate string `json:"avg_frame_rate"`
		Tags         struct {
			Rotate string `json:"rotate"`
		} `json:"tags"`
		SideData []struct {
			Rotation float64 `json:"rotation"`
		} `json:"side_data_list"`
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"streams"`
}

// Probe runs ffprobe against path and returns the first video stream's
// metadata. Failures wrap [ascii.ErrDecode].
func Probe(path string) (Info, error) {
	data, err := ffmpeg.Probe(path)
	if err != nil {
		return Info{}, fmt.Errorf("%w: ffprobe %s: %w", ascii.ErrDecode, path, err)
	}

	return parseProbe(data)
}

func parseProbe(data string) (Info, error) {
	var out probeOutput

	err := json.Unmarshal([]byte(data), &out)
	if err != nil {
		return Info{}, fmt.Errorf("%w: parsing ffprobe output: %w", ascii.ErrDecode, err)
	}

	for _, s := range out.Streams {
		if s.CodecType != "video" {
			continue
		}

		if s.Width <= 0 || s.Height <= 0 {
			return Info{}, fmt.Errorf("%w: video stream has size %dx%d", ascii.ErrDecode, s.Width, s.Height)
		}

		rate := parseRate(s.AvgFrameRate)
		if rate == 0 {
			rate = parseRate(s.RFrameRate)
		}

		rotation := 0
		for _, sd := range s.SideData {
			if sd.Rotation != 0 {
				rotation = int(math.Round(sd.Rotation))
			}
		}

		if rotation == 0 && s.Tags.Rotate != "" {
			rotation, _ = strconv.Atoi(s.Tags.Rotate)
		}

		return Info{
			Codec:     s.CodecName,
			Width:     s.Width,
			Height:    s.Height,
			Rotation:  normalizeRotation(rotation),
			FrameRate: rate,
		}, nil
	}

	return Info{}, fmt.Errorf("%w: %w", ascii.ErrDecode, ErrNoVideoStream)
}

// normalizeRotation maps a rotation in degrees, possibly negative, onto
// [0, 360).
func normalizeRotation(deg int) int {
	return ((deg % 360) + 360) % 360
}

// parseRate parses an ffprobe rational such as "30000/1001". Malformed or
// undefined ("0/0") rates yield 0.
func parseRate(s string) float64 {
	num, den, found := strings.Cut(s, "/")

	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}

	if !found {
		return n
	}

	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}

	return n / d
}
