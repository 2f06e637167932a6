// Command fortuna scans a time window for conjunctions between the Part of
// Fortune and the seven classical bodies.
package main

import (
	"os"

	"github.com/Nubicola/fortuna/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
