package hostvideo

import (
	"image"
	"image/color/palette"
	"image/gif"
	"os"

	"golang.org/x/image/draw"

	"nitro65/internal/video"
)

// GIFRecorder captures presented frames into an animated GIF, disabling
// itself on any I/O failure rather than aborting the emulator, matching
// original_source/video.c's record_gif falling back to RECORD_GIF_DISABLED
// when GifBegin fails to open its output file.
type GIFRecorder struct {
	path    string
	scale   draw.Interpolator
	out     *os.File
	g       *gif.GIF
	enabled bool
}

// NewGIFRecorder opens path for writing and starts a new animation. On
// failure it returns a disabled recorder instead of an error: the caller
// keeps running the emulator and just doesn't get a recording.
func NewGIFRecorder(path string) *GIFRecorder {
	f, err := os.Create(path)
	if err != nil {
		return &GIFRecorder{enabled: false}
	}
	return &GIFRecorder{
		path:    path,
		out:     f,
		g:       &gif.GIF{},
		scale:   draw.NearestNeighbor,
		enabled: true,
	}
}

// Enabled reports whether frames are actually being captured.
func (r *GIFRecorder) Enabled() bool { return r.enabled }

// AddFrame down-samples the RGBA framebuffer to a paletted image and
// appends it to the animation at the given frame delay (in 1/100s units,
// GIF's native timing resolution).
func (r *GIFRecorder) AddFrame(fb []uint8, delayCentis int) {
	if !r.enabled {
		return
	}
	src := image.NewRGBA(image.Rect(0, 0, video.ScreenWidth, video.ScreenHeight))
	copy(src.Pix, fb)

	paletted := image.NewPaletted(src.Bounds(), palette.WebSafe)
	r.scale.Scale(paletted, paletted.Bounds(), src, src.Bounds(), draw.Src, nil)

	r.g.Image = append(r.g.Image, paletted)
	r.g.Delay = append(r.g.Delay, delayCentis)
}

// Close flushes the animation to disk. A write failure disables the
// recorder for any future AddFrame calls but is not itself fatal.
func (r *GIFRecorder) Close() error {
	if !r.enabled {
		return nil
	}
	defer r.out.Close()
	r.enabled = false
	return gif.EncodeAll(r.out, r.g)
}
