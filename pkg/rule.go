package b64p

import (
	"encoding/base64"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// RuleFile represents the structure of a YAML rule file
type RuleFile struct {
	Rules []Rule `yaml:"rules"`
}

// Rule is a secret scanning rule that detects a marker through its base64
// partials. The field layout matches the poltergeist rule format so the
// generated files can be dropped into a poltergeist rules directory.
type Rule struct {
	// Name is a human-readable rule name.
	Name string `yaml:"name"`

	// ID is a machine-readable identifier.
	ID string `yaml:"id"`

	// Description is a human-readable description of the rule.
	Description string `yaml:"description"`

	// Tags are categorization tags.
	Tags []string `yaml:"tags"`

	// Pattern is an alternation of the escaped partials.
	Pattern string `yaml:"pattern"`

	// Redact is the number of leading and trailing characters of a match
	// left visible when it is redacted.
	Redact []int `yaml:"redact"`

	// Entropy is the minimum entropy threshold for matches.
	Entropy float64 `yaml:"entropy"`

	// Tests are test cases for rule validation.
	Tests Test `yaml:"tests"`

	// History is a list of change history entries.
	History []string `yaml:"history"`
}

// Test represents test cases for rule validation
type Test struct {
	Assert    []string `yaml:"assert"`
	AssertNot []string `yaml:"assert_not,omitempty"`
}

// NewRule builds a rule matching any of the partials of marker. Each assert
// case is the encoding of marker shifted into one alignment by leading
// quote bytes, with a trailing quote as right context.
func NewRule(name, id string, marker []byte, p Partials, enc *base64.Encoding) (Rule, error) {
	distinct := p.Distinct()
	if len(distinct) == 0 {
		return Rule{}, fmt.Errorf("rule %s: marker of %d bytes has no usable partials", id, len(marker))
	}

	quoted := make([]string, len(distinct))
	entropy := math.Inf(1)
	for i, s := range distinct {
		quoted[i] = regexp.QuoteMeta(s)
		entropy = min(entropy, ShannonEntropy(s))
	}

	var asserts []string
	for _, a := range Alignments {
		if p[a] == "" {
			continue
		}
		content := strings.Repeat("\"", int(a)) + string(marker) + "\""
		asserts = append(asserts, enc.EncodeToString([]byte(content)))
	}

	return Rule{
		Name:        name,
		ID:          id,
		Description: fmt.Sprintf("Base64 encoded content containing a known %d-byte marker.", len(marker)),
		Tags:        []string{"base64", "marker"},
		Pattern:     "(?:" + strings.Join(quoted, "|") + ")",
		Redact:      []int{2, 2},
		Entropy:     math.Floor(entropy*100) / 100,
		Tests:       Test{Assert: asserts},
		History:     []string{"Generated by b64p " + Version},
	}, nil
}

// Compile compiles the rule pattern with Go regex.
func (r *Rule) Compile() (*regexp.Regexp, error) {
	re, err := regexp.Compile(r.Pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to compile rule '%s': %w", r.Name, err)
	}
	return re, nil
}

// ShannonEntropy calculates the entropy of a string using the Shannon entropy formula
func ShannonEntropy(s string) float64 {
	counts := make(map[rune]int)
	for _, r := range s {
		counts[r]++
	}

	entropy := 0.0
	totalRunes := utf8.RuneCountInString(s)

	for _, count := range counts {
		p := float64(count) / float64(totalRunes)
		entropy -= p * math.Log2(p)
	}

	return entropy
}
