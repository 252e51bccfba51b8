package obstacle

import (
	"encoding/json"
	"fmt"

	"github.com/timeaware/taprm/geometry"
	"github.com/timeaware/taprm/interval"
	"github.com/timeaware/taprm/wkt"
	"gonum.org/v1/gonum/spatial/r2"
)

// jsonInterval mirrors interval.Interval with JSON field names, and is the
// nullable wire representation of Obstacle.Interval.
type jsonInterval struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

// jsonObstacle is the tagged-JSON wire format: shape as WKT, radius, a
// nullable interval, and the recurrence name.
type jsonObstacle struct {
	ID         int           `json:"id"`
	Shape      string        `json:"shape"`
	Radius     float64       `json:"radius"`
	Interval   *jsonInterval `json:"interval"`
	Recurrence string        `json:"recurrence"`
}

// MarshalJSON implements json.Marshaler.
func (o Obstacle) MarshalJSON() ([]byte, error) {
	shapeWKT, err := encodeShape(o.Shape)
	if err != nil {
		return nil, err
	}

	jo := jsonObstacle{
		ID:         o.ID,
		Shape:      shapeWKT,
		Radius:     o.Radius,
		Recurrence: o.Recurrence.String(),
	}
	if o.Interval != nil {
		jo.Interval = &jsonInterval{Left: o.Interval.L, Right: o.Interval.R}
	}

	return json.Marshal(jo)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Obstacle) UnmarshalJSON(data []byte) error {
	var jo jsonObstacle
	if err := json.Unmarshal(data, &jo); err != nil {
		return err
	}

	shape, err := decodeShape(jo.Shape)
	if err != nil {
		return err
	}

	o.ID = jo.ID
	o.Shape = shape
	o.Radius = jo.Radius
	o.Recurrence = interval.ParseRecurrence(jo.Recurrence)
	if jo.Interval != nil {
		iv := interval.Interval{L: jo.Interval.Left, R: jo.Interval.Right}
		o.Interval = &iv
	} else {
		o.Interval = nil
	}

	return nil
}

func encodeShape(s geometry.Shape) (string, error) {
	switch v := s.(type) {
	case geometry.Point:
		return wkt.EncodePoint(v.P), nil
	case geometry.Segment:
		return wkt.EncodeLineString([]r2.Vec{v.A, v.B}), nil
	case geometry.Polygon:
		return wkt.EncodePolygon(v.Vertices), nil
	default:
		return "", fmt.Errorf("obstacle: unsupported shape kind %T", s)
	}
}

func decodeShape(s string) (geometry.Shape, error) {
	switch {
	case hasPrefix(s, "POINT"):
		p, err := wkt.DecodePoint(s)
		if err != nil {
			return nil, err
		}

		return geometry.NewPoint(p), nil
	case hasPrefix(s, "LINESTRING"):
		pts, err := wkt.DecodeLineString(s)
		if err != nil {
			return nil, err
		}
		if len(pts) != 2 {
			return nil, fmt.Errorf("obstacle: segment WKT must have exactly 2 points, got %d", len(pts))
		}

		return geometry.NewSegment(pts[0], pts[1])
	case hasPrefix(s, "POLYGON"):
		pts, err := wkt.DecodePolygon(s)
		if err != nil {
			return nil, err
		}

		return geometry.NewPolygon(pts)
	default:
		return nil, fmt.Errorf("obstacle: unrecognized WKT shape %q", s)
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
