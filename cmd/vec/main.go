package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	pointstore "vector2d.theprimeagen.com/pkg/point-store"
	prettylog "vector2d.theprimeagen.com/pkg/pretty-log"
	"vector2d.theprimeagen.com/pkg/utils"
)

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func format(result any, asJSON, asHex bool) (string, error) {
	vec, isVec := result.(Vec2)

	switch {
	case asHex && isVec:
		data, err := vec.MarshalBinary()
		if err != nil {
			return "", err
		}
		return utils.PrettyPrintBytes(data, len(data)), nil

	case asJSON:
		data, err := json.Marshal(result)
		if err != nil {
			return "", err
		}
		return string(data), nil

	case isVec:
		return vec.String(), nil
	}

	return strconv.FormatFloat(result.(float64), 'g', -1, 64), nil
}

func run() error {
	asJSON := flag.Bool("json", false, "print the result as json")
	asHex := flag.Bool("hex", false, "print a vector result in its binary form")
	save := flag.String("save", "", "store a vector result under this name")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage())
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return errors.New("missing op")
	}

	result, err := eval(flag.Arg(0), flag.Args()[1:])
	if err != nil {
		return err
	}

	out, err := format(result, *asJSON, *asHex)
	if err != nil {
		return err
	}
	fmt.Println(out)

	if *save == "" {
		return nil
	}

	vec, ok := result.(Vec2)
	if !ok {
		return fmt.Errorf("-save needs a vector result, %s returns a number", flag.Arg(0))
	}

	kind := getEnv("STORE_KIND", "json")
	path := getEnv("STORE_PATH", "points.json")
	store, err := pointstore.Open(kind, path)
	if err != nil {
		return err
	}
	defer store.Close()

	slog.Debug("saving", "area", "VecMain", "name", *save, "pos", vec, "store", kind)
	return store.Put(pointstore.Point{Name: *save, Pos: vec})
}

func main() {
	godotenv.Load()
	prettylog.SetProgramLevelPrettyLogger()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vec:", err)
		os.Exit(1)
	}
}
