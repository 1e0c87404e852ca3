// Package jsonextract pulls a JSON value out of free-form model output.
package jsonextract

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Shape selects which kind of top-level JSON value to look for.
type Shape int

const (
	ShapeObject Shape = iota
	ShapeArray
)

func (s Shape) String() string {
	if s == ShapeArray {
		return "array"
	}
	return "object"
}

func (s Shape) delimiters() (open, close byte) {
	if s == ShapeArray {
		return '[', ']'
	}
	return '{', '}'
}

var (
	// ErrNoJSONFound means the text holds no balanced span of the requested shape.
	ErrNoJSONFound = errors.New("no JSON found in response")
	// ErrMalformedJSON means balanced spans were found but none decoded.
	ErrMalformedJSON = errors.New("malformed JSON in response")
)

// Extract decodes the first well-formed JSON value of the given shape in text.
func Extract(text string, shape Shape) (any, error) {
	var v any
	if err := ExtractInto(text, shape, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// ExtractInto decodes the first well-formed JSON value of the given shape into v.
//
// Candidates are scanned left to right. Each candidate starts at an opening
// delimiter and ends where the nesting depth returns to zero; delimiters inside
// string literals are ignored. A candidate that fails to decode is skipped
// as a whole, so fragments nested inside it are never returned.
func ExtractInto(text string, shape Shape, v any) error {
	open, _ := shape.delimiters()

	var firstErr error
	for i := 0; i < len(text); i++ {
		if text[i] != open {
			continue
		}

		end, ok := balancedEnd(text, i, shape)
		if !ok {
			continue
		}

		candidate := text[i : end+1]
		err := json.Unmarshal([]byte(candidate), v)
		if err == nil {
			return nil
		}
		if firstErr == nil {
			firstErr = err
		}
		i = end
	}

	if firstErr != nil {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, firstErr)
	}
	return fmt.Errorf("%w: expected %s", ErrNoJSONFound, shape)
}

// balancedEnd returns the index of the delimiter closing the one at start.
func balancedEnd(text string, start int, shape Shape) (int, bool) {
	open, close := shape.delimiters()

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
