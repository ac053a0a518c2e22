package assert

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
)

type AssertData interface {
	Dump() string
}

var assertData map[string]AssertData = map[string]AssertData{}
var writer io.Writer = os.Stderr

// swapped out in tests
var exit = os.Exit

func AddAssertData(key string, value AssertData) {
	assertData[key] = value
}

func RemoveAssertData(key string) {
	delete(assertData, key)
}

func ToWriter(w io.Writer) {
	writer = w
}

func runAssert(msg string, args ...any) {
	slogValues := []any{"area", "Assert"}
	slogValues = append(slogValues, args...)

	for k, v := range assertData {
		slogValues = append(slogValues, k, v.Dump())
	}

	slog.Error(msg, slogValues...)

	fmt.Fprintf(writer, "ASSERT: %s\n", msg)
	for i := 0; i+1 < len(slogValues); i += 2 {
		fmt.Fprintf(writer, "   %v=%v\n", slogValues[i], slogValues[i+1])
	}
	fmt.Fprintln(writer, string(debug.Stack()))
	exit(1)
}

func Assert(truth bool, msg string, data ...any) {
	if !truth {
		runAssert(msg, data...)
	}
}

func Never(msg string, data ...any) {
	Assert(false, msg, data...)
}

func NoError(err error, msg string, data ...any) {
	if err != nil {
		data = append(data, "error", err)
		runAssert(msg, data...)
	}
}
