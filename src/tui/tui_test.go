package tui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/eriklarko/line-query/src/lineexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintMatch(t *testing.T) {
	match := Match{
		Expression:  "dog or cat",
		Line:        "a cat",
		Identifiers: map[string]bool{"dog": false, "cat": true},
		Names:       []string{"cat", "dog"},
		Result:      true,
	}

	t.Run("with identifiers", func(t *testing.T) {
		var out bytes.Buffer
		ui := New()
		ui.SetOutput(&out)

		ui.PrintMatch(match, true)

		assert.Equal(t, `Input:  dog or cat
Search: a cat

cat: true
dog: false

result: true
`, out.String())
	})

	t.Run("without identifiers", func(t *testing.T) {
		var out bytes.Buffer
		ui := New()
		ui.SetOutput(&out)

		ui.PrintMatch(match, false)

		assert.Equal(t, "Input:  dog or cat\nSearch: a cat\n\nresult: true\n", out.String())
	})
}

func TestPrintParseError(t *testing.T) {
	testCases := map[string]string{
		"dog cat": "Invalid Token: cat\n",
		"dog and": "Invalid Token: and\n",
		"( dog":   "Missing a closing parenthesis\n",
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			_, err := lineexpr.New(expression)
			require.Error(t, err)

			var out bytes.Buffer
			ui := New()
			ui.SetErrorOutput(&out)
			ui.PrintParseError(err)

			assert.Equal(t, expected, out.String())
		})
	}

	t.Run("unknown", func(t *testing.T) {
		var out bytes.Buffer
		ui := New()
		ui.SetErrorOutput(&out)
		ui.PrintParseError(&lineexpr.ParseError{Kind: lineexpr.Unknown})

		assert.Equal(t, "Encountered an unknown error\n", out.String())
	})

	t.Run("not a parse error", func(t *testing.T) {
		var out bytes.Buffer
		ui := New()
		ui.SetErrorOutput(&out)
		ui.PrintParseError(errors.New("boom"))

		assert.Equal(t, "Error: boom\n", out.String())
	})
}
