package polyio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/polygeom/geom"
	"github.com/pkg/errors"
)

// ReadPolygons reads newline separated points in the form "x y", with each
// polygon separated by an extra blank line. Lines starting with # are
// ignored.
func ReadPolygons(in io.Reader) (polygons []geom.Polygon, err error) {
	defer func() {
		recoveredErr := HandleParsePanicRecover(recover())
		if recoveredErr != nil {
			polygons = nil
			err = recoveredErr
		}
	}()

	scanner := bufio.NewScanner(in)
	points := []geom.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, geom.Polygon{Points: points})
				points = []geom.Point{}
			}
			continue
		}

		points = append(points, parsePointLine(line, lineNumber))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, geom.Polygon{Points: points})
	}
	return polygons, nil
}

func parsePointLine(line string, lineNumber int) geom.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		fatalf("line %d: expected \"x y\", got %q", lineNumber, line)
	}
	return geom.Point{
		X: parseCoordinate(parts[0], lineNumber),
		Y: parseCoordinate(parts[1], lineNumber),
	}
}

func parseCoordinate(s string, lineNumber int) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fatalf("line %d: invalid coordinate %q", lineNumber, s)
	}
	return v
}

// ParsePoint parses a single point written as "x,y" or "x y".
func ParsePoint(s string) (geom.Point, error) {
	parts := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(parts) != 2 {
		return geom.Point{}, errors.Errorf("expected \"x,y\", got %q", s)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid x in %q", s)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid y in %q", s)
	}
	return geom.Point{X: x, Y: y}, nil
}

// WritePolygons writes polygons in the format ReadPolygons reads.
func WritePolygons(out io.Writer, polygons []geom.Polygon) error {
	w := bufio.NewWriter(out)
	for i, poly := range polygons {
		if i > 0 {
			w.WriteByte('\n')
		}
		for _, p := range poly.Points {
			w.WriteString(formatCoordinate(p.X))
			w.WriteByte(' ')
			w.WriteString(formatCoordinate(p.Y))
			w.WriteByte('\n')
		}
	}
	return errors.Wrap(w.Flush(), "writing polygons")
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
