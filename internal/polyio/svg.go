package polyio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/polygeom/geom"
	"github.com/osuushi/polygeom/internal/names"
	"github.com/pkg/errors"
)

// LineTypeAttribute marks a shape's boundary as a spline, e.g.
// <polygon data-line-type="curve" points="...">.
const LineTypeAttribute = "data-line-type"

// This is not a full SVG reader. It walks the document in order and picks up
// the points attribute of every <polygon> and <polyline>, ignoring transforms,
// styles and everything else. Elements keep their id as the label; elements
// without an id get a generated one.
func ReadSVG(in io.Reader) (shapes []Shape, err error) {
	defer func() {
		recoveredErr := HandleParsePanicRecover(recover())
		if recoveredErr != nil {
			shapes = nil
			err = recoveredErr
		}
	}()

	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var walk func(el *svgparser.Element)
	walk = func(el *svgparser.Element) {
		if el.Name == "polygon" || el.Name == "polyline" {
			shapes = append(shapes, shapeFromElement(el, len(shapes)))
		}
		for _, child := range el.Children {
			walk(child)
		}
	}
	walk(root)

	if len(shapes) == 0 {
		return nil, errors.New("no polygon or polyline elements found")
	}
	return shapes, nil
}

func shapeFromElement(el *svgparser.Element, index int) Shape {
	label := el.Attributes["id"]
	if label == "" {
		label = names.Label(fmt.Sprintf("svg-%s-%d", el.Name, index))
	}

	lineType, err := geom.ParseLineType(el.Attributes[LineTypeAttribute])
	if err != nil {
		fatalf("%s %q: %v", el.Name, label, err)
	}

	return Shape{
		Label:    label,
		LineType: lineType,
		Polygon:  geom.Polygon{Points: parsePointList(el.Attributes["points"], label)},
	}
}

// SVG point lists are numbers separated by any mix of whitespace and commas.
func parsePointList(list string, label string) []geom.Point {
	fields := strings.Fields(strings.ReplaceAll(list, ",", " "))
	if len(fields) == 0 {
		fatalf("%q has no points", label)
	}
	if len(fields)%2 != 0 {
		fatalf("%q has an odd number of coordinates (%d)", label, len(fields))
	}

	coords := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			fatalf("%q: invalid coordinate %q", label, field)
		}
		coords[i] = v
	}
	return geom.Unflatten(coords)
}
