package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"vector2d.theprimeagen.com/pkg/assert"
	"vector2d.theprimeagen.com/pkg/bounce"
	"vector2d.theprimeagen.com/pkg/ctrlc"
	pointstore "vector2d.theprimeagen.com/pkg/point-store"
	prettylog "vector2d.theprimeagen.com/pkg/pretty-log"
	quickmath "vector2d.theprimeagen.com/pkg/quick-math"
)

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	assert.NoError(err, "env var is not an int", "key", key, "value", v)
	return n
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseFloat(v, 64)
	assert.NoError(err, "env var is not a float", "key", key, "value", v)
	return n
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

type worldDump struct {
	world *bounce.World
}

func (w worldDump) Dump() string {
	return fmt.Sprintf("steps=%d bodies=%d bounds=%v centroid=%v",
		w.world.Steps, len(w.world.Bodies), w.world.Params.Bounds.Max, w.world.Centroid())
}

func main() {
	godotenv.Load()
	prettylog.SetProgramLevelPrettyLogger()
	logger := slog.Default().With("area", "SimMain")

	params := bounce.DefaultParams()

	var width, height float64
	flag.IntVar(&params.Count, "points", envInt("SIM_POINTS", params.Count), "number of bodies")
	flag.IntVar(&params.Workers, "workers", envInt("SIM_WORKERS", params.Workers), "parallel step workers")
	flag.Int64Var(&params.Seed, "seed", int64(envInt("SIM_SEED", int(params.Seed))), "rng seed")
	flag.Float64Var(&params.Turn, "turn", envFloat("SIM_TURN", 0), "velocity rotation in rad/s")
	flag.Float64Var(&width, "width", envFloat("SIM_WIDTH", params.Bounds.Size().X), "world width")
	flag.Float64Var(&height, "height", envFloat("SIM_HEIGHT", params.Bounds.Size().Y), "world height")
	steps := flag.Int("steps", envInt("SIM_STEPS", 1000), "steps to simulate")
	dt := flag.Float64("dt", envFloat("SIM_DT", 1.0/60.0), "seconds per step")
	report := flag.Int("report", envInt("SIM_REPORT", 100), "log every n steps")
	storeKind := flag.String("store", envString("STORE_KIND", "json"), "json or sqlite")
	storePath := flag.String("store-path", envString("STORE_PATH", "points.json"), "where final positions go")
	flag.Parse()

	params.Bounds = quickmath.NewAABB(quickmath.Zero(), quickmath.NewVec2(width, height))

	world, err := bounce.NewWorld(params)
	if err != nil {
		logger.Error("bad simulation params", "error", err)
		os.Exit(1)
	}

	store, err := pointstore.Open(*storeKind, *storePath)
	assert.NoError(err, "unable to open point store", "kind", *storeKind, "path", *storePath)

	assert.AddAssertData("world", worldDump{world: world})
	defer assert.RemoveAssertData("world")

	// ctrl-c may land while the final positions are written, storeMu keeps
	// the close from cutting that write in half
	var storeMu sync.Mutex
	closed := false
	closeStore := func() error {
		storeMu.Lock()
		defer storeMu.Unlock()
		if closed {
			return nil
		}
		closed = true
		return store.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	ctrlc.HandleCtrlC(cancel, func() {
		closeStore()
	})

	logger.Info("starting", "points", params.Count, "steps", *steps, "workers", params.Workers, "bounds", params.Bounds.Max)
	start := time.Now()

	for i := 1; i <= *steps; i++ {
		if err := world.Step(ctx, *dt); err != nil {
			logger.Warn("simulation stopped", "step", i, "error", err)
			break
		}

		if *report > 0 && i%*report == 0 {
			logger.Info("progress", "step", i, "centroid", world.Centroid(), "meanSpeed", world.MeanSpeed())
		}
	}

	logger.Info("finished", "steps", world.Steps, "took", time.Since(start).String())

	snapshot := world.Snapshot()
	points := make([]pointstore.Point, 0, len(snapshot))
	for i, pos := range snapshot {
		points = append(points, pointstore.Point{Name: fmt.Sprintf("p%d", i), Pos: pos})
	}

	storeMu.Lock()
	if closed || ctx.Err() != nil {
		storeMu.Unlock()
		logger.Warn("interrupted, final positions not stored")
		closeStore()
		return
	}
	err = store.PutAll(points)
	assert.NoError(err, "unable to store final positions", "count", len(points))

	count, err := store.Count()
	assert.NoError(err, "unable to count stored points")
	storeMu.Unlock()
	logger.Info("stored", "count", count, "kind", *storeKind, "path", *storePath)

	cancel()
	assert.NoError(closeStore(), "unable to close point store")
}
