package main

import (
	"fmt"
	"os"

	"github.com/vancomm/minesweeper-annotator/internal/anagram"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <word> [candidate]...\n", os.Args[0])
		os.Exit(2)
	}
	for _, match := range anagram.Detect(os.Args[1], os.Args[2:]) {
		fmt.Println(match)
	}
}
