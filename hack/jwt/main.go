package main

import (
	"fmt"
	"os"
	"strings"

	b64p "github.com/ghostsecurity/b64p/pkg"
)

// This is a hack to check whether a JWT or base64-encoded string embeds a plain-text string.
func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run main.go <jwt_or_base64_string> <search_string>")
		fmt.Println("Example: go run main.go eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9.eyJpc3MiOiJhY2NvdW50cy5nb29nbGUuY29tIiwic3ViIjoiMTIzNDU2Nzg5MCIsImF1ZCI6InlvdXItYXBwLWlkIiwiZXhwIjoxNjMwNTAwMDAwfQ.signature \"accounts.google.com\"")
		os.Exit(1)
	}

	token := os.Args[1]
	searchString := os.Args[2]

	found, matchedPattern, err := findPartialsInToken(token, searchString)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to compute partials: %v\n", err)
		os.Exit(1)
	}
	if found {
		fmt.Printf("✅ Found '%s' in the token (matched pattern: %s)\n", searchString, matchedPattern)
	} else {
		fmt.Printf("❌ '%s' not found in the token\n", searchString)
	}
}

// findPartialsInToken checks every dot-separated segment of the token against
// the partials of the search string in both base64 alphabets. Each JWT segment
// is encoded on its own, so alignment is relative to the segment start.
func findPartialsInToken(token, searchString string) (bool, string, error) {
	fmt.Printf("🔍 Searching for base64 partials of '%s' in raw token...\n", searchString)

	for _, urlSafe := range []bool{true, false} {
		partials, err := b64p.ComputePartialsWithEncoding([]byte(searchString), b64p.SelectEncoding(urlSafe))
		if err != nil {
			return false, "", err
		}

		for a, p := range partials {
			fmt.Printf("   - alignment %d (url=%v): %s\n", a, urlSafe, p)
		}

		for _, segment := range strings.Split(token, ".") {
			if a, ok := partials.FoundIn(segment); ok {
				return true, partials[a], nil
			}
		}
	}

	return false, "", nil
}
