// pkg/filter/crop.go
package filter

import (
	"context"
	"fmt"
	"image"
	"image/draw"

	"github.com/spf13/pflag"
)

func init() {
	Register(&Crop{})
}

// cropOptions is the schema declared once for the crop variant.
var cropOptions = []Option{
	{Aliases: []string{"-x"}, Dest: "x", Kind: Int, Default: 0, Metavar: "INT",
		Help: "offset in x"},
	{Aliases: []string{"-y"}, Dest: "y", Kind: Int, Default: 0, Metavar: "INT",
		Help: "offset in y"},
	{Aliases: []string{"-w", "--width"}, Dest: "w", Kind: Int, Default: 128, Metavar: "INT",
		Help: "width of the cropped image"},
	{Aliases: []string{"-z", "--height"}, Dest: "h", Kind: Int, Default: 128, Metavar: "INT",
		Help: "height of the cropped image"},
}

// Crop cuts a rectangular region out of an image, given an offset in (x, y)
// plus width and height.
type Crop struct{}

func (Crop) Name() string      { return "crop" }
func (Crop) Synopsis() string  { return "crop an image to a rectangular region" }
func (Crop) Options() []Option { return cropOptions }

func (Crop) Arguments() []string { return []string{"input", "output"} }

func (Crop) Run(ctx context.Context, opts *pflag.FlagSet, args []string) error {
	img, err := loadImage(args[0])
	if err != nil {
		return err
	}

	x, _ := opts.GetInt("x")
	y, _ := opts.GetInt("y")
	w, _ := opts.GetInt("width")
	h, _ := opts.GetInt("height")

	region := image.Rect(x, y, x+w, y+h)
	if !region.In(img.Bounds()) {
		return fmt.Errorf("crop region %v exceeds image bounds %v", region, img.Bounds())
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), img, region.Min, draw.Src)

	return saveImage(args[1], out)
}
