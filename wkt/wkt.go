// Package wkt implements a minimal Well-Known-Text encoder/decoder for the
// POINT, LINESTRING, and POLYGON geometries this module's obstacle and
// roadmap packages persist to JSON.
//
// No WKT library appears in this module's dependency corpus (see
// DESIGN.md), so this is a deliberately narrow hand-rolled codec limited to
// the three geometries geometry.Shape actually produces — it is not a
// general WKT parser.
package wkt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for WKT decoding.
var (
	// ErrSyntax indicates the input does not parse as a supported WKT geometry.
	ErrSyntax = errors.New("wkt: syntax error")
)

// EncodePoint renders a single point as "POINT (x y)".
func EncodePoint(p r2.Vec) string {
	return fmt.Sprintf("POINT (%s %s)", formatFloat(p.X), formatFloat(p.Y))
}

// EncodeLineString renders two or more points as "LINESTRING (x0 y0, x1 y1, ...)".
func EncodeLineString(pts []r2.Vec) string {
	return fmt.Sprintf("LINESTRING (%s)", joinPoints(pts))
}

// EncodePolygon renders a closed ring as "POLYGON ((x0 y0, ..., x0 y0))".
// The ring is closed automatically if the caller did not repeat the first
// vertex at the end.
func EncodePolygon(pts []r2.Vec) string {
	ring := pts
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(append([]r2.Vec{}, ring...), ring[0])
	}

	return fmt.Sprintf("POLYGON ((%s))", joinPoints(ring))
}

func joinPoints(pts []r2.Vec) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = formatFloat(p.X) + " " + formatFloat(p.Y)
	}

	return strings.Join(parts, ", ")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// DecodePoint parses "POINT (x y)".
func DecodePoint(s string) (r2.Vec, error) {
	body, ok := unwrap(s, "POINT")
	if !ok {
		return r2.Vec{}, ErrSyntax
	}

	return parsePoint(body)
}

// DecodeLineString parses "LINESTRING (x0 y0, x1 y1, ...)".
func DecodeLineString(s string) ([]r2.Vec, error) {
	body, ok := unwrap(s, "LINESTRING")
	if !ok {
		return nil, ErrSyntax
	}

	return parsePoints(body)
}

// DecodePolygon parses "POLYGON ((x0 y0, ..., xn yn))", returning the ring
// without the duplicated closing vertex.
func DecodePolygon(s string) ([]r2.Vec, error) {
	body, ok := unwrap(s, "POLYGON")
	if !ok {
		return nil, ErrSyntax
	}

	body = strings.TrimSpace(body)
	if !strings.HasPrefix(body, "(") || !strings.HasSuffix(body, ")") {
		return nil, ErrSyntax
	}
	inner := body[1 : len(body)-1]

	pts, err := parsePoints(inner)
	if err != nil {
		return nil, err
	}
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}

	return pts, nil
}

func unwrap(s, tag string) (string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, tag) {
		return "", false
	}

	rest := strings.TrimSpace(s[len(tag):])
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return "", false
	}

	return rest[1 : len(rest)-1], true
}

func parsePoint(s string) (r2.Vec, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return r2.Vec{}, ErrSyntax
	}

	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return r2.Vec{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return r2.Vec{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return r2.Vec{X: x, Y: y}, nil
}

func parsePoints(s string) ([]r2.Vec, error) {
	parts := strings.Split(s, ",")
	pts := make([]r2.Vec, 0, len(parts))
	for _, part := range parts {
		p, err := parsePoint(part)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}

	return pts, nil
}
