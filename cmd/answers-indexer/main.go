package main

import (
	"os"

	"github.com/discord-account-support-corp/answers-indexer/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
