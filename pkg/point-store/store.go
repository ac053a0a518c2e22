package pointstore

import (
	"errors"
	"fmt"
	"sort"

	quickmath "vector2d.theprimeagen.com/pkg/quick-math"
)

var ErrNotFound = errors.New("point not found")
var ErrUnknownStore = errors.New("unknown point store kind")

// Point is a named position. Pos maps onto the x and y columns of the
// Points table through the "pos.x" and "pos.y" aliases.
type Point struct {
	Name      string         `db:"name" json:"name"`
	Pos       quickmath.Vec2 `db:"pos" json:"pos"`
	UpdatedAt string         `db:"updated_at" json:"updated_at"`
}

func (p *Point) String() string {
	return fmt.Sprintf("Point(%s): %s at %s", p.Name, p.Pos, p.UpdatedAt)
}

type Store interface {
	Put(point Point) error
	PutAll(points []Point) error
	Get(name string) (*Point, error)
	All() ([]Point, error)
	Count() (int, error)
	Within(center quickmath.Vec2, radius float64) ([]Point, error)
	Close() error
}

func filterWithin(points []Point, center quickmath.Vec2, radius float64) []Point {
	r2 := radius * radius
	out := []Point{}
	for _, p := range points {
		if p.Pos.DistSq(center) <= r2 {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Pos.DistSq(center) < out[b].Pos.DistSq(center)
	})
	return out
}

// Open picks a backend, kind is "json" or "sqlite".
func Open(kind, path string) (Store, error) {
	switch kind {
	case "json":
		return NewJSONMemory(path)
	case "sqlite":
		return NewSqlite(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, kind)
	}
}
