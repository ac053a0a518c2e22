package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	quickmath "vector2d.theprimeagen.com/pkg/quick-math"
)

var ErrUnknownOp = errors.New("unknown op")
var ErrArity = errors.New("wrong number of arguments")

type Vec2 = quickmath.Vec2

type op struct {
	usage string
	arity int
	run   func(a []float64) any
}

func v(a []float64, i int) Vec2 {
	return quickmath.NewVec2(a[i], a[i+1])
}

var ops = map[string]op{
	"new":          {"x y", 2, func(a []float64) any { return v(a, 0) }},
	"fromangle":    {"rad", 1, func(a []float64) any { return quickmath.FromAngle(a[0]) }},
	"fromangledeg": {"deg", 1, func(a []float64) any { return quickmath.FromAngleDeg(a[0]) }},

	"len":        {"x y", 2, func(a []float64) any { return v(a, 0).Len() }},
	"lensq":      {"x y", 2, func(a []float64) any { return v(a, 0).LenSq() }},
	"dot":        {"x y x y", 4, func(a []float64) any { return v(a, 0).Dot(v(a, 2)) }},
	"dist":       {"x y x y", 4, func(a []float64) any { return v(a, 0).Dist(v(a, 2)) }},
	"distsq":     {"x y x y", 4, func(a []float64) any { return v(a, 0).DistSq(v(a, 2)) }},
	"angleto":    {"x y x y", 4, func(a []float64) any { return v(a, 0).AngleTo(v(a, 2)) }},
	"angletodeg": {"x y x y", 4, func(a []float64) any { return v(a, 0).AngleToDeg(v(a, 2)) }},

	"norm":      {"x y", 2, func(a []float64) any { return v(a, 0).Norm() }},
	"lerp":      {"x y x y t", 5, func(a []float64) any { return v(a, 0).Lerp(v(a, 2), a[4]) }},
	"reflect":   {"x y nx ny", 4, func(a []float64) any { return v(a, 0).Reflect(v(a, 2)) }},
	"rotate":    {"x y rad", 3, func(a []float64) any { return v(a, 0).Rotate(a[2]) }},
	"rotatedeg": {"x y deg", 3, func(a []float64) any { return v(a, 0).RotateDeg(a[2]) }},
	"recip":     {"x y", 2, func(a []float64) any { return v(a, 0).Recip() }},
	"abs":       {"x y", 2, func(a []float64) any { return v(a, 0).Abs() }},
	"absdiff":   {"x y x y", 4, func(a []float64) any { return v(a, 0).AbsDiff(v(a, 2)) }},
	"ceil":      {"x y", 2, func(a []float64) any { return v(a, 0).Ceil() }},
	"floor":     {"x y", 2, func(a []float64) any { return v(a, 0).Floor() }},
	"trunc":     {"x y", 2, func(a []float64) any { return v(a, 0).Trunc() }},
	"clamp":     {"x y minx miny maxx maxy", 6, func(a []float64) any { return v(a, 0).Clamp(v(a, 2), v(a, 4)) }},
	"clamplen":  {"x y min max", 4, func(a []float64) any { return v(a, 0).ClampLen(a[2], a[3]) }},
	"normal":    {"x y", 2, func(a []float64) any { return v(a, 0).Normal() }},

	"add":       {"x y x y", 4, func(a []float64) any { return v(a, 0).Add(v(a, 2)) }},
	"sub":       {"x y x y", 4, func(a []float64) any { return v(a, 0).Sub(v(a, 2)) }},
	"mul":       {"x y x y", 4, func(a []float64) any { return v(a, 0).Mul(v(a, 2)) }},
	"div":       {"x y x y", 4, func(a []float64) any { return v(a, 0).Div(v(a, 2)) }},
	"addscalar": {"x y s", 3, func(a []float64) any { return v(a, 0).AddScalar(a[2]) }},
	"subscalar": {"x y s", 3, func(a []float64) any { return v(a, 0).SubScalar(a[2]) }},
	"scale":     {"x y s", 3, func(a []float64) any { return v(a, 0).Scale(a[2]) }},
	"divscalar": {"x y s", 3, func(a []float64) any { return v(a, 0).DivScalar(a[2]) }},
	"neg":       {"x y", 2, func(a []float64) any { return v(a, 0).Neg() }},
}

func eval(name string, args []string) (any, error) {
	o, ok := ops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOp, name)
	}

	if len(args) != o.arity {
		return nil, fmt.Errorf("%w: %s takes %s", ErrArity, name, o.usage)
	}

	nums := make([]float64, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", arg, err)
		}
		nums = append(nums, n)
	}

	return o.run(nums), nil
}

func usage() string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)

	out := "usage: vec [-json|-hex] [-save name] <op> args...\n\nops:\n"
	for _, name := range names {
		out += fmt.Sprintf("  %-13s %s\n", name, ops[name].usage)
	}
	return out
}
