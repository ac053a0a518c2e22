package bounce

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"
	quickmath "vector2d.theprimeagen.com/pkg/quick-math"
)

type Vec2 = quickmath.Vec2

var ErrInvalidParams = errors.New("invalid bounce params")

type Params struct {
	Bounds   quickmath.AABB
	Count    int
	MinSpeed float64
	MaxSpeed float64

	// Turn rotates every velocity by this many radians per second.
	Turn float64

	Workers   int
	ChunkSize int
	Seed      int64
}

func DefaultParams() Params {
	return Params{
		Bounds:    quickmath.NewAABB(quickmath.Zero(), quickmath.NewVec2(100, 100)),
		Count:     256,
		MinSpeed:  5,
		MaxSpeed:  40,
		Workers:   4,
		ChunkSize: 64,
		Seed:      69,
	}
}

func (p Params) Validate() error {
	size := p.Bounds.Size()
	switch {
	case size.X <= 0 || size.Y <= 0:
		return fmt.Errorf("%w: bounds %s to %s are empty", ErrInvalidParams, p.Bounds.Min, p.Bounds.Max)
	case p.Count < 0:
		return fmt.Errorf("%w: negative count %d", ErrInvalidParams, p.Count)
	case p.MinSpeed < 0 || p.MinSpeed > p.MaxSpeed:
		return fmt.Errorf("%w: speed range [%g, %g]", ErrInvalidParams, p.MinSpeed, p.MaxSpeed)
	case p.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidParams, p.Workers)
	case p.ChunkSize <= 0:
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidParams, p.ChunkSize)
	}
	return nil
}

type Body struct {
	Pos Vec2
	Vel Vec2
}

type World struct {
	Params
	Bodies []Body
	Steps  int

	logger *slog.Logger
}

// NewWorld scatters Count bodies uniformly inside Bounds, each heading in
// a random direction at a speed in [MinSpeed, MaxSpeed]. The same seed
// always produces the same world.
func NewWorld(params Params) (*World, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	r := rand.New(rand.NewSource(params.Seed))
	size := params.Bounds.Size()

	bodies := make([]Body, 0, params.Count)
	for range params.Count {
		offset := size.Mul(quickmath.NewVec2(r.Float64(), r.Float64()))
		speed := params.MinSpeed + r.Float64()*(params.MaxSpeed-params.MinSpeed)
		heading := quickmath.FromAngle(r.Float64() * 2 * math.Pi)

		bodies = append(bodies, Body{
			Pos: params.Bounds.Min.Add(offset),
			Vel: heading.Scale(speed),
		})
	}

	return &World{
		Params: params,
		Bodies: bodies,
		logger: slog.Default().With("area", "BounceWorld"),
	}, nil
}

// Step advances every body by dt. Chunks of ChunkSize bodies run on up to
// Workers goroutines. If ctx is cancelled mid step some chunks may already
// have moved, Steps is only incremented when all of them did.
func (w *World) Step(ctx context.Context, dt float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.Workers)

	turn := w.Turn * dt
	for start := 0; start < len(w.Bodies); start += w.ChunkSize {
		chunk := w.Bodies[start:min(start+w.ChunkSize, len(w.Bodies))]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := range chunk {
				w.stepBody(&chunk[i], dt, turn)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	w.Steps++
	w.logger.Debug("step", "steps", w.Steps, "bodies", len(w.Bodies))
	return nil
}

var (
	wallLeft   = quickmath.NewVec2(1, 0)
	wallRight  = quickmath.NewVec2(-1, 0)
	wallBottom = quickmath.NewVec2(0, 1)
	wallTop    = quickmath.NewVec2(0, -1)
)

func (w *World) stepBody(b *Body, dt, turn float64) {
	if turn != 0 {
		b.Vel = b.Vel.Rotate(turn)
	}

	b.Pos.AddAssign(b.Vel.Scale(dt))

	if !w.Bounds.Contains(b.Pos) {
		for _, wall := range w.hitWalls(b.Pos) {
			// only bounce when still heading out, a body sliding back in keeps going
			if b.Vel.Dot(wall) < 0 {
				b.Vel = b.Vel.Reflect(wall)
			}
		}
		b.Pos = w.Bounds.ClampPoint(b.Pos)
	}

	b.Vel = b.Vel.ClampLen(w.MinSpeed, w.MaxSpeed)
}

// hitWalls returns the inward normals of every wall p is past.
func (w *World) hitWalls(p Vec2) []Vec2 {
	walls := make([]Vec2, 0, 2)
	if p.X < w.Bounds.Min.X {
		walls = append(walls, wallLeft)
	} else if p.X > w.Bounds.Max.X {
		walls = append(walls, wallRight)
	}

	if p.Y < w.Bounds.Min.Y {
		walls = append(walls, wallBottom)
	} else if p.Y > w.Bounds.Max.Y {
		walls = append(walls, wallTop)
	}
	return walls
}

func (w *World) Snapshot() []Vec2 {
	out := make([]Vec2, len(w.Bodies))
	for i, b := range w.Bodies {
		out[i] = b.Pos
	}
	return out
}

// Centroid is the mean body position, zero for an empty world.
func (w *World) Centroid() Vec2 {
	if len(w.Bodies) == 0 {
		return quickmath.Zero()
	}

	sum := quickmath.Zero()
	for _, b := range w.Bodies {
		sum.AddAssign(b.Pos)
	}
	return sum.DivScalar(float64(len(w.Bodies)))
}

func (w *World) MeanSpeed() float64 {
	if len(w.Bodies) == 0 {
		return 0
	}

	total := 0.0
	for _, b := range w.Bodies {
		total += b.Vel.Len()
	}
	return total / float64(len(w.Bodies))
}
