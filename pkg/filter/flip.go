// pkg/filter/flip.go
package filter

import (
	"context"
	"fmt"
	"image"

	"github.com/spf13/pflag"
)

func init() {
	Register(&Flip{})
}

var flipOptions = []Option{
	{Aliases: []string{"-d", "--direction"}, Dest: "direction", Kind: String,
		Default: "vertical", Metavar: "DIR",
		Help: "mirror axis, \"vertical\" or \"horizontal\""},
}

// Flip mirrors an image around its vertical or horizontal axis.
type Flip struct{}

func (Flip) Name() string      { return "flip" }
func (Flip) Synopsis() string  { return "mirror an image around one of its axes" }
func (Flip) Options() []Option { return flipOptions }

func (Flip) Arguments() []string { return []string{"input", "output"} }

func (Flip) Run(ctx context.Context, opts *pflag.FlagSet, args []string) error {
	img, err := loadImage(args[0])
	if err != nil {
		return err
	}

	direction, _ := opts.GetString("direction")

	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	switch direction {
	case "vertical":
		for y := 0; y < bounds.Dy(); y++ {
			for x := 0; x < bounds.Dx(); x++ {
				out.Set(x, bounds.Dy()-1-y, img.At(bounds.Min.X+x, bounds.Min.Y+y))
			}
		}
	case "horizontal":
		for y := 0; y < bounds.Dy(); y++ {
			for x := 0; x < bounds.Dx(); x++ {
				out.Set(bounds.Dx()-1-x, y, img.At(bounds.Min.X+x, bounds.Min.Y+y))
			}
		}
	default:
		return fmt.Errorf("unknown direction %q (want \"vertical\" or \"horizontal\")", direction)
	}

	return saveImage(args[1], out)
}
