package b64p

import (
	"encoding/base64"
	"errors"
	"strings"
)

// Filler is the placeholder byte prepended to the input to shift it into
// each alignment. Its value never reaches a partial: the characters it
// influences are always trimmed.
const Filler = '0'

// ErrEmptyInput is returned when asked to compute partials of an empty string.
var ErrEmptyInput = errors.New("b64p: input cannot be empty")

// Alignment is the number of unknown bytes (0, 1 or 2) that precede the
// input inside its base64 3-byte group.
type Alignment int

// Alignments lists every possible alignment in output order.
var Alignments = [3]Alignment{0, 1, 2}

// Partials holds one guaranteed base64 substring per alignment, indexed by
// Alignment.
type Partials [3]string

// Detail describes how a single partial was derived.
type Detail struct {
	Alignment Alignment
	Padded    []byte // Filler bytes followed by the input
	Encoded   string // Base64 of Padded, untrimmed
	Left      int    // Unknown leading bytes in the first group
	Right     int    // Unknown trailing bytes in the last group
	Partial   string // Encoded with the unstable edges removed
}

// ComputePartials returns the three base64 substrings, using the standard
// alphabet, one of which appears in the base64 encoding of any text that
// contains input verbatim.
func ComputePartials(input []byte) (Partials, error) {
	return ComputePartialsWithEncoding(input, base64.StdEncoding)
}

// ComputePartialsWithEncoding is like ComputePartials but encodes with enc.
func ComputePartialsWithEncoding(input []byte, enc *base64.Encoding) (Partials, error) {
	details, err := Explain(input, enc)
	if err != nil {
		return Partials{}, err
	}

	return PartialsFromDetails(details), nil
}

// PartialsFromDetails collects the partial of each detail.
func PartialsFromDetails(details [3]Detail) Partials {
	var p Partials
	for i, d := range details {
		p[i] = d.Partial
	}
	return p
}

// Explain returns the derivation of every partial of input under enc.
func Explain(input []byte, enc *base64.Encoding) ([3]Detail, error) {
	var details [3]Detail
	if len(input) == 0 {
		return details, ErrEmptyInput
	}
	if enc == nil {
		enc = base64.StdEncoding
	}

	for i, a := range Alignments {
		details[i] = explainAlignment(input, enc, a)
	}
	return details, nil
}

// explainAlignment encodes input shifted by a filler bytes and trims the
// characters that depend on bytes outside of input.
func explainAlignment(input []byte, enc *base64.Encoding, a Alignment) Detail {
	padded := make([]byte, 0, int(a)+len(input))
	for range int(a) {
		padded = append(padded, Filler)
	}
	padded = append(padded, input...)

	encoded := enc.EncodeToString(padded)
	left := int(a)
	right := rightOffset(len(input), a)

	return Detail{
		Alignment: a,
		Padded:    padded,
		Encoded:   encoded,
		Left:      left,
		Right:     right,
		Partial:   trim(encoded, left, right),
	}
}

// rightOffset is the number of bytes of the final 3-byte group that come
// after the input.
func rightOffset(n int, a Alignment) int {
	return (3 - (n+int(a))%3) % 3
}

// offsetChars converts a count of unknown bytes in a group into the number
// of base64 characters they contaminate.
func offsetChars(offset int) int {
	switch offset {
	case 0:
		return 0
	case 1:
		return 2
	default:
		return 3
	}
}

func trim(encoded string, left, right int) string {
	cut := min(offsetChars(left), len(encoded))
	encoded = encoded[cut:]

	if right == 0 {
		return encoded
	}
	cut = offsetChars(right)
	if cut >= len(encoded) {
		return ""
	}
	return encoded[:len(encoded)-cut]
}

// Strings returns the partials as a slice in alignment order.
func (p Partials) Strings() []string {
	return []string{p[0], p[1], p[2]}
}

// Distinct returns the non-empty partials in alignment order, without
// duplicates. An empty partial carries no information and is left out.
func (p Partials) Distinct() []string {
	var out []string
	seen := make(map[string]bool)
	for _, s := range p {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// FoundIn reports the first alignment whose non-empty partial occurs in
// encoded. Inputs shorter than a base64 group can have empty partials and
// are never reported for those alignments.
func (p Partials) FoundIn(encoded string) (Alignment, bool) {
	for _, a := range Alignments {
		if p[a] != "" && strings.Contains(encoded, p[a]) {
			return a, true
		}
	}
	return 0, false
}
