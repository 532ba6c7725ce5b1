// Command lvroute finds the shortest route that starts at one location,
// ends at another and visits every selected location exactly once.
//
// Usage:
//
//	lvroute solve --locations capitals.json --start "Des Moines" --end Olympia --prefix M
//	lvroute solve --matrix instance.json
//	lvroute import --locations capitals.json --db lvroute.db
//
// Every flag can also be set through an LVROUTE_* environment variable,
// e.g. LVROUTE_DB or LVROUTE_MAX_NODES. Flags win over the environment.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvroute:", err)
		os.Exit(1)
	}
}
