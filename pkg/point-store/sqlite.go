package pointstore

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/tursodatabase/go-libsql"
	quickmath "vector2d.theprimeagen.com/pkg/quick-math"
	"vector2d.theprimeagen.com/pkg/utils"
)

const selectPoints = `SELECT name, x AS "pos.x", y AS "pos.y", updated_at
FROM Points`

type Sqlite struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func getLogger() *slog.Logger {
	return slog.Default().With("area", "Sqlite")
}

// EnsureSqliteURI turns a bare path into the file: URI libsql expects.
func EnsureSqliteURI(path string) string {
	if strings.HasPrefix(path, "file:") || strings.Contains(path, "://") {
		return path
	}
	return "file:" + path
}

func ClearSQLiteFiles(path string) {
	path = strings.TrimPrefix(path, "file:")
	os.Remove(path)
	os.Remove(fmt.Sprintf("%s-shm", path))
	os.Remove(fmt.Sprintf("%s-wal", path))
}

func NewSqlite(path string) (*Sqlite, error) {
	db, err := sqlx.Open("libsql", EnsureSqliteURI(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", path, err)
	}

	s := &Sqlite{
		db:     db,
		logger: getLogger(),
	}

	if err := s.SetSqliteModes(); err != nil {
		db.Close()
		return nil, err
	}

	if err := s.CreatePoints(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Sqlite) CreatePoints() error {
	query := `
    CREATE TABLE IF NOT EXISTS Points (
        name TEXT PRIMARY KEY,
        x REAL NOT NULL,
        y REAL NOT NULL,
        updated_at TEXT NOT NULL
    );`

	_, err := s.db.Exec(query)
	if err != nil {
		return fmt.Errorf("unable to create Points table: %w", err)
	}
	return nil
}

func (s *Sqlite) setPragma(name string, value string) error {
	row := s.db.QueryRowx(fmt.Sprintf("PRAGMA %s=%s;", name, value))
	var v string
	if err := row.Scan(&v); err != nil {
		return fmt.Errorf("could not set pragma %s=%s: %w", name, value, err)
	}
	s.logger.Debug(name, "value", v)
	return nil
}

func (s *Sqlite) SetSqliteModes() error {
	if err := s.setPragma("busy_timeout", "3000"); err != nil {
		return err
	}
	return s.setPragma("journal_mode", "WAL")
}

const upsertPoint = `INSERT OR REPLACE INTO Points (name, x, y, updated_at)
VALUES (?, ?, ?, ?);`

func (s *Sqlite) Put(point Point) error {
	if point.UpdatedAt == "" {
		point.UpdatedAt = utils.SQLiteNow()
	}

	s.logger.Debug("Put", "name", point.Name, "pos", point.Pos)
	_, err := s.db.Exec(upsertPoint, point.Name, point.Pos.X, point.Pos.Y, point.UpdatedAt)
	return err
}

// PutAll upserts every point inside one transaction.
func (s *Sqlite) PutAll(points []Point) error {
	now := utils.SQLiteNow()

	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("unable to begin PutAll: %w", err)
	}

	for _, point := range points {
		if point.UpdatedAt == "" {
			point.UpdatedAt = now
		}

		_, err := tx.Exec(upsertPoint, point.Name, point.Pos.X, point.Pos.Y, point.UpdatedAt)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("unable to put %s: %w", point.Name, err)
		}
	}

	s.logger.Debug("PutAll", "count", len(points))
	return tx.Commit()
}

func (s *Sqlite) Get(name string) (*Point, error) {
	var p Point
	err := s.db.Get(&p, selectPoints+`
WHERE name=?;`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Sqlite) All() ([]Point, error) {
	var points []Point
	err := s.db.Select(&points, selectPoints+`
ORDER BY name;`)
	if err != nil {
		return nil, err
	}
	return points, nil
}

func (s *Sqlite) Count() (int, error) {
	var count int
	err := s.db.Get(&count, `SELECT COUNT(*) FROM Points;`)
	return count, err
}

// Within returns the points no further than radius from center, closest
// first. The box prefilter runs in sql, the exact distance check in Go.
func (s *Sqlite) Within(center quickmath.Vec2, radius float64) ([]Point, error) {
	var candidates []Point
	err := s.db.Select(&candidates, selectPoints+`
WHERE x BETWEEN ? AND ? AND y BETWEEN ? AND ?;`,
		center.X-radius, center.X+radius, center.Y-radius, center.Y+radius)
	if err != nil {
		return nil, err
	}

	return filterWithin(candidates, center, radius), nil
}

func (s *Sqlite) Close() error {
	return s.db.Close()
}
