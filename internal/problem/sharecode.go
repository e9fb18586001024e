package problem

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// Share codes are the base64 of a's decimal digits, matching the web
// version's problem_id query parameter. The round trip must be exact:
// decoding a code re-derives c, b and target through the same formulas
// as generation.

// EncodeShareCode returns the share code for p.
func EncodeShareCode(p Problem) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(p.A)))
}

// DecodeShareCode reconstructs a Problem from a share code. Tampered
// codes (junk bytes, a out of range, a ≤ 1) are rejected here with a
// clear error; nothing downstream ever sees an invalid a.
func DecodeShareCode(code string) (Problem, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(code))
	if err != nil {
		return Problem{}, fmt.Errorf("invalid share code: %w", err)
	}
	a, err := strconv.Atoi(string(raw))
	if err != nil {
		return Problem{}, fmt.Errorf("invalid share code: not a problem number")
	}
	p, err := New(a)
	if err != nil {
		return Problem{}, fmt.Errorf("invalid share code: %w", err)
	}
	return p, nil
}
