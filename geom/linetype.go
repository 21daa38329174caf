package geom

import (
	"fmt"
	"strings"
)

// LineType says how the vertices of a polygon are joined. Straight polygons
// use their vertices as-is. Curve polygons are the closed spline through their
// vertices.
type LineType int

const (
	Straight LineType = iota
	Curve
)

func (lt LineType) String() string {
	switch lt {
	case Straight:
		return "straight"
	case Curve:
		return "curve"
	}
	return fmt.Sprintf("LineType(%d)", int(lt))
}

// ParseLineType accepts "straight" (or "line") and "curve", ignoring case.
func ParseLineType(s string) (LineType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "straight", "line":
		return Straight, nil
	case "curve":
		return Curve, nil
	}
	return Straight, fmt.Errorf("unknown line type %q", s)
}

func (lt LineType) MarshalText() ([]byte, error) {
	return []byte(lt.String()), nil
}

func (lt *LineType) UnmarshalText(text []byte) error {
	parsed, err := ParseLineType(string(text))
	if err != nil {
		return err
	}
	*lt = parsed
	return nil
}
