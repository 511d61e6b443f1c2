package mecanum

import (
	"fmt"

	"github.com/robotalks/pixy.go/pkg/sim/visualization/see"
)

const botSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-150 -150 300 300">
	<g>
		<rect x="-110" y="-110" width="60" height="40" rx="5" />
		<rect x="50" y="-110" width="60" height="40" rx="5" />
		<rect x="-110" y="70" width="60" height="40" rx="5" />
		<rect x="50" y="70" width="60" height="40" rx="5" />
		<rect x="-80" y="-70" width="160" height="140" fill="none" stroke="black" stroke-width="4" />
		<path d="M 80 -20 L 120 0 L 80 20 Z" />
	</g>
</svg>`

var signatureColors = []string{"red", "orange", "gold", "green", "cyan", "blue", "purple"}

// MapObject implements see.ObjectMapper for the bot and its targets.
func (c *Controller) MapObject(obj see.VisibleObject) []see.Object {
	switch o := obj.(type) {
	case *Controller:
		return []see.Object{
			see.ObjectFrom("image", o).With("src", "data:image/svg+xml;utf8,"+botSVG),
		}
	case *Target:
		color := signatureColors[int(o.Signature)%len(signatureColors)]
		style := fmt.Sprintf("fill: %s", color)
		if o.ColorCoded {
			style += "; stroke: black; stroke-width: 4"
		}
		return []see.Object{see.ObjectFrom("circle", o).With(see.PropStyle, style)}
	}
	return nil
}
