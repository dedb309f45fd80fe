// pkg/filter/grayscale.go
package filter

import (
	"context"
	"image"

	"github.com/spf13/pflag"
)

func init() {
	Register(&Grayscale{})
}

// Grayscale converts an image to 8-bit grayscale. It takes no options.
type Grayscale struct{}

func (Grayscale) Name() string      { return "grayscale" }
func (Grayscale) Synopsis() string  { return "convert an image to 8-bit grayscale" }
func (Grayscale) Options() []Option { return nil }

func (Grayscale) Arguments() []string { return []string{"input", "output"} }

func (Grayscale) Run(ctx context.Context, opts *pflag.FlagSet, args []string) error {
	img, err := loadImage(args[0])
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			out.Set(x, y, img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	return saveImage(args[1], out)
}
