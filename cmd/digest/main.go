package main

import (
	"os"

	"ResearchDigest/internal/logger"
)

func main() {
	err := newRootCmd().Execute()
	_ = logger.Close()
	if err != nil {
		os.Exit(1)
	}
}
