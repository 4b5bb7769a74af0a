package main

import (
	"fmt"
	"strings"
)

// builtinCases returns inputs that expose fragmentation issues.
func builtinCases() []testCase {
	return []testCase{
		{
			name: "Fox example (common anchor word)",
			a:    []string{"The", "quick", "brown", "fox", "jumps"},
			b:    []string{"A", "slow", "red", "fox", "leaps"},
		},
		{
			name: "Prose with common words",
			a:    strings.Split("The quick brown fox jumps over the lazy dog in the park", " "),
			b:    strings.Split("A slow red fox leaps over the sleeping cat in the garden", " "),
		},
		{
			name: "Code-like tokens",
			a:    strings.Split("func main ( ) { fmt . Println ( hello ) }", " "),
			b:    strings.Split("func main ( ) { log . Printf ( world ) }", " "),
		},
		{
			name: "Classic ABCABBA / CBABAC",
			a:    strings.Split("ABCABBA", ""),
			b:    strings.Split("CBABAC", ""),
		},
		{
			name: "Large file (500 lines, scattered changes)",
			a:    generateLargeText(500, 0),
			b:    generateLargeText(500, 42),
		},
	}
}

func generateLargeText(lines int, seed int) []string {
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"func", "main", "return", "if", "else", "for", "range", "var", "const",
		"import", "package", "type", "struct", "interface", "map", "slice"}

	result := make([]string, lines)
	for i := range result {
		lineWords := make([]string, 5+i%3)
		for j := range lineWords {
			lineWords[j] = words[(i*7+j*13)%len(words)]
		}
		result[i] = strings.Join(lineWords, " ")
	}

	for i := seed % 10; i < lines; i += 10 + seed%5 {
		result[i] = fmt.Sprintf("CHANGED LINE %d", i)
	}

	return result
}
