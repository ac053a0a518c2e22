package pointstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sort"
	"sync"

	quickmath "vector2d.theprimeagen.com/pkg/quick-math"
	"vector2d.theprimeagen.com/pkg/utils"
)

type JSONMemoryFile struct {
	Points []Point `json:"points"`
}

// JSONMemory keeps every point in memory and rewrites the whole file on
// each Put. Fine for the handful of points a simulation run produces.
type JSONMemory struct {
	file   string
	points []Point
	mutex  sync.Mutex
	logger *slog.Logger
}

// NewJSONMemory loads path if it exists, otherwise starts empty.
func NewJSONMemory(path string) (*JSONMemory, error) {
	j := &JSONMemory{
		file:   path,
		logger: slog.Default().With("area", "JSONMemory"),
	}

	if err := j.Refresh(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return j, nil
}

func NewJSONMemoryAndClear(path string) (*JSONMemory, error) {
	err := os.WriteFile(path, []byte(`{"points": []}`), 0644)
	if err != nil {
		return nil, err
	}
	return NewJSONMemory(path)
}

// Refresh reloads the file, picking up writes from other processes.
func (j *JSONMemory) Refresh() error {
	contents, err := os.ReadFile(j.file)
	if err != nil {
		return err
	}

	var data JSONMemoryFile
	if err := json.Unmarshal(contents, &data); err != nil {
		return fmt.Errorf("unable to decode json file %s: %w", j.file, err)
	}

	j.mutex.Lock()
	j.points = data.Points
	j.mutex.Unlock()
	return nil
}

func (j *JSONMemory) flush(points []Point) error {
	bytes, err := json.MarshalIndent(JSONMemoryFile{Points: points}, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode points: %w", err)
	}
	return os.WriteFile(j.file, bytes, 0644)
}

func (j *JSONMemory) Put(point Point) error {
	return j.PutAll([]Point{point})
}

// PutAll upserts every point with a single file write. Memory only
// changes once the file was written, a failed write leaves both as they were.
func (j *JSONMemory) PutAll(points []Point) error {
	now := utils.SQLiteNow()

	j.mutex.Lock()
	defer j.mutex.Unlock()

	next := slices.Clone(j.points)
	for _, point := range points {
		if point.UpdatedAt == "" {
			point.UpdatedAt = now
		}

		idx := slices.IndexFunc(next, func(p Point) bool {
			return p.Name == point.Name
		})
		if idx >= 0 {
			next[idx] = point
		} else {
			next = append(next, point)
		}
	}

	if err := j.flush(next); err != nil {
		return err
	}

	j.points = next
	j.logger.Debug("PutAll", "count", len(points), "total", len(next))
	return nil
}

func (j *JSONMemory) Get(name string) (*Point, error) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	for _, p := range j.points {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// All is sorted by name, matching the sqlite store.
func (j *JSONMemory) All() ([]Point, error) {
	j.mutex.Lock()
	out := make([]Point, len(j.points))
	copy(out, j.points)
	j.mutex.Unlock()

	sort.Slice(out, func(a, b int) bool {
		return out[a].Name < out[b].Name
	})
	return out, nil
}

func (j *JSONMemory) Within(center quickmath.Vec2, radius float64) ([]Point, error) {
	all, err := j.All()
	if err != nil {
		return nil, err
	}
	return filterWithin(all, center, radius), nil
}

func (j *JSONMemory) Count() (int, error) {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return len(j.points), nil
}

func (j *JSONMemory) Close() error {
	return nil
}
