// pkg/filter/scale.go
package filter

import (
	"context"
	"fmt"
	"image"

	"github.com/spf13/pflag"
)

func init() {
	Register(&Scale{})
}

var scaleOptions = []Option{
	{Aliases: []string{"-w", "--width"}, Dest: "w", Kind: Int, Default: 128, Metavar: "INT",
		Help: "width of the scaled image"},
	{Aliases: []string{"-z", "--height"}, Dest: "h", Kind: Int, Default: 128, Metavar: "INT",
		Help: "height of the scaled image"},
}

// Scale resizes an image to the given dimensions using nearest-neighbor
// resampling.
type Scale struct{}

func (Scale) Name() string      { return "scale" }
func (Scale) Synopsis() string  { return "resize an image to the given dimensions" }
func (Scale) Options() []Option { return scaleOptions }

func (Scale) Arguments() []string { return []string{"input", "output"} }

func (Scale) Run(ctx context.Context, opts *pflag.FlagSet, args []string) error {
	img, err := loadImage(args[0])
	if err != nil {
		return err
	}

	w, _ := opts.GetInt("width")
	h, _ := opts.GetInt("height")
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid target dimensions %dx%d", w, h)
	}

	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		srcY := bounds.Min.Y + y*bounds.Dy()/h
		for x := 0; x < w; x++ {
			srcX := bounds.Min.X + x*bounds.Dx()/w
			out.Set(x, y, img.At(srcX, srcY))
		}
	}

	return saveImage(args[1], out)
}
