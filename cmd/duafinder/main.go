// Command duafinder searches a multilingual corpus of short
// devotional texts from the terminal.
package main

import (
	"os"

	"github.com/hidayah-labs/duafinder/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
