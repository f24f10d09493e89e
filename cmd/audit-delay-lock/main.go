// Command audit-delay-lock runs the audit-delay lock verifier against a
// JSON transaction fixture and exits with the resulting verr.Code.
//
// Usage:
//
//	audit-delay-lock --fixture tx.json
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leapdao/parent-bridge/locks/auditdelay"
	"github.com/leapdao/parent-bridge/log"
	"github.com/leapdao/parent-bridge/memtx"
	"github.com/leapdao/parent-bridge/verr"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("audit-delay-lock", flag.ContinueOnError)
	fixturePath := fs.String("fixture", "", "path to a JSON transaction fixture")
	if err := fs.Parse(args); err != nil {
		return int(verr.Encoding)
	}
	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "audit-delay-lock: -fixture is required")
		return int(verr.Encoding)
	}

	logger := log.Default().Module("audit-delay-lock")

	tx, err := memtx.LoadFixture(*fixturePath)
	if err != nil {
		logger.Error("failed to load fixture", "error", err)
		return int(verr.Encoding)
	}

	if err := auditdelay.Verify(tx.Accessor()); err != nil {
		code := verr.CodeOf(err)
		logger.Warn("verification failed", "code", code, "error", err)
		return int(code)
	}

	logger.Info("verification succeeded")
	return 0
}
