// Command deposit-lock runs the deposit lock verifier against a JSON
// transaction fixture and exits with the resulting verr.Code.
//
// Usage:
//
//	deposit-lock --fixture tx.json
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leapdao/parent-bridge/locks/depositlock"
	"github.com/leapdao/parent-bridge/log"
	"github.com/leapdao/parent-bridge/memtx"
	"github.com/leapdao/parent-bridge/verr"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the actual entry point, returning the process exit code so it
// can be exercised directly in tests.
func run(args []string) int {
	fs := flag.NewFlagSet("deposit-lock", flag.ContinueOnError)
	fixturePath := fs.String("fixture", "", "path to a JSON transaction fixture")
	if err := fs.Parse(args); err != nil {
		return int(verr.Encoding)
	}
	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "deposit-lock: -fixture is required")
		return int(verr.Encoding)
	}

	logger := log.Default().Module("deposit-lock")

	tx, err := memtx.LoadFixture(*fixturePath)
	if err != nil {
		logger.Error("failed to load fixture", "error", err)
		return int(verr.Encoding)
	}

	if err := depositlock.Verify(tx.Accessor()); err != nil {
		code := verr.CodeOf(err)
		logger.Warn("verification failed", "code", code, "error", err)
		return int(code)
	}

	logger.Info("verification succeeded")
	return 0
}
