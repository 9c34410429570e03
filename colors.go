package theta

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a plain RGB value. Colors are copied, never shared: hue
// rotation always returns a new value.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// DefaultColor is the base stroke color charts use when the caller
// supplies none.
var DefaultColor = Color{R: 0x00, G: 0x00, B: 0xdd}

func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

func ParseColor(str string) (Color, error) {
	c, err := colorful.Hex(str)
	if err != nil {
		return Color{}, fmt.Errorf("%s: invalid color", str)
	}
	r, g, b := c.RGB255()
	return NewColor(r, g, b), nil
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ShiftHueDegreesIndex rotates the hue by shift*index degrees, keeping
// saturation and lightness. Index 0, or any rotation that is a multiple
// of 360, returns the color unchanged.
func (c Color) ShiftHueDegreesIndex(shift float64, index int) Color {
	deg := math.Mod(shift*float64(index), 360)
	if deg == 0 {
		return c
	}
	if deg < 0 {
		deg += 360
	}
	h, s, l := c.colorful().Hsl()
	r, g, b := colorful.Hsl(math.Mod(h+deg, 360), s, l).Clamped().RGB255()
	return NewColor(r, g, b)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func (p Palette) Color(i int) string {
	if len(p) == 0 {
		return DefaultColor.Hex()
	}
	return p[i%len(p)]
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}
