package main

import (
	"flag"
	"fmt"
	"os"
)

type Flag struct {
	InputPaths    []string
	OutputDir     string
	MaxConcurrent int
	Verbose       bool
}

func parseFlag() *Flag {
	help := flag.Bool("h", false, "Display this help message and exit")
	outputDir := flag.String("o", ".", "Output directory for the generated PDF files")
	maxConcurrent := flag.Int("x", 4, "Maximum number of documents rendered concurrently")
	verbose := flag.Bool("v", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ecoledoc [options] payload.json [payload.json ...]")
		fmt.Fprintln(os.Stderr, "Options:")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *help {
		fmt.Println("ecoledoc - render school document payloads to PDF")
		fmt.Println("Usage: ecoledoc [options] payload.json [payload.json ...]")
		flag.PrintDefaults()
		fmt.Println("\nEach payload file is a JSON envelope: {\"kind\": \"...\", \"payload\": {...}}")
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		fmt.Println("At least one payload file is required")
		flag.Usage()
		os.Exit(1)
	}

	return &Flag{
		InputPaths:    flag.Args(),
		OutputDir:     *outputDir,
		MaxConcurrent: *maxConcurrent,
		Verbose:       *verbose,
	}
}
