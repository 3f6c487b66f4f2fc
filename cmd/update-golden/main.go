package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/clems4ever/pjdsplit/splitter"
)

func main() {
	// Paths are relative to the repository root
	inputFile := "splitter/testdata/mixed.txt"
	outputFile := "splitter/testdata/mixed_golden.txt"

	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		log.Fatalf("Input file not found: %s. Please run this command from the repository root.", inputFile)
	}

	fmt.Printf("Reading %s...\n", inputFile)
	text, err := splitter.ReadFile(inputFile)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	dir, err := os.MkdirTemp("", "pjdsplit-golden")
	if err != nil {
		log.Fatalf("Failed to create scratch directory: %v", err)
	}
	defer os.RemoveAll(dir)

	fmt.Println("Splitting fragments...")
	s := splitter.New(splitter.Options{HTMLDecode: true, Policy: splitter.PolicySkip}, splitter.NewWriter(dir), nil, zerolog.Nop())
	summary, err := s.Run(text)
	if err != nil {
		log.Fatalf("Split failed: %v", err)
	}

	fmt.Printf("Writing to %s...\n", outputFile)
	if err := os.WriteFile(outputFile, []byte(summary.Listing()), 0644); err != nil {
		log.Fatalf("Failed to write output file: %v", err)
	}

	fmt.Println("Done. Golden file updated.")
}
