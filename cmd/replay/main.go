// cmd/replay/main.go

// The offline batch processor: replay a CSV transaction log into final
// per-client account balances.
//
//	replay transactions.csv > accounts.csv
//
// The snapshot goes to stdout; diagnostics (skipped rows, absorbed
// no-ops at debug level) go to stderr so they never pollute the output.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"payments/internal/replay"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: replay <transactions.csv>")
		os.Exit(1)
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Error("cannot open transaction log", zap.Error(err))
		os.Exit(1)
	}
	defer f.Close()

	if err := replay.Run(f, os.Stdout, log); err != nil {
		log.Error("replay failed", zap.Error(err))
		os.Exit(1)
	}
}
