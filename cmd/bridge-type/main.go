// Command bridge-type runs the bridge type verifier against a JSON
// transaction fixture and exits with the resulting verr.Code.
//
// Usage:
//
//	bridge-type --fixture tx.json [--params params.json]
//
// params.json overrides individual fields of policy.Default; fields left
// unset (zero/empty) fall back to the default value.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leapdao/parent-bridge/bridgetype"
	"github.com/leapdao/parent-bridge/log"
	"github.com/leapdao/parent-bridge/memtx"
	"github.com/leapdao/parent-bridge/policy"
	"github.com/leapdao/parent-bridge/verr"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("bridge-type", flag.ContinueOnError)
	fixturePath := fs.String("fixture", "", "path to a JSON transaction fixture")
	paramsPath := fs.String("params", "", "path to a JSON policy params file (optional)")
	if err := fs.Parse(args); err != nil {
		return int(verr.Encoding)
	}
	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "bridge-type: -fixture is required")
		return int(verr.Encoding)
	}

	logger := log.Default().Module("bridge-type")

	p := policy.Default
	if *paramsPath != "" {
		loaded, err := policy.Load(*paramsPath)
		if err != nil {
			logger.Error("failed to load params", "error", err)
			return int(verr.Encoding)
		}
		p = loaded
	}

	tx, err := memtx.LoadFixture(*fixturePath)
	if err != nil {
		logger.Error("failed to load fixture", "error", err)
		return int(verr.Encoding)
	}

	if err := bridgetype.Verify(tx.Accessor(), p); err != nil {
		code := verr.CodeOf(err)
		logger.Warn("verification failed", "code", code, "error", err)
		return int(code)
	}

	logger.Info("verification succeeded")
	return 0
}
