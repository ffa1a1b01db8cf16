// Package lineexpr implements the small boolean query language used to
// filter lines of text: identifiers joined with "and", "or", "not" and
// parentheses. An identifier is true for a line when the line contains it.
package lineexpr

import (
	"fmt"
)

// New creates a parser for the given expression and parses it.
// Example usage:
//
//	p, err := lineexpr.New("dog or cat and pig")
//	if err != nil {
//		log.Fatalf("failed to parse expression: %v", err)
//	}
//	matched, err := p.Eval("there once was a cat named pig")
//	fmt.Println(matched) // Output: true
func New(expression string) (*Parser, error) {
	p := NewParser(expression)
	if err := p.Parse(); err != nil {
		return nil, fmt.Errorf("failed to parse expression '%s': %w", expression, err)
	}
	return p, nil
}
