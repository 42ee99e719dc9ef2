package main

import (
	"os"
	"time"

	"github.com/dksylla/ecoledoc/internal"
)

func init() {
	internal.InitDefaultLogger(internal.INFO)
}

func main() {
	startTime := time.Now()

	customFlag := parseFlag()
	if customFlag.Verbose {
		internal.GetDefaultLogger().SetLevel(internal.DEBUG)
	}

	if err := processFiles(customFlag); err != nil {
		internal.Error("Generation failed: %s", err.Error())
		os.Exit(1)
	}

	internal.Info("Program completed in %v", time.Since(startTime))
}
