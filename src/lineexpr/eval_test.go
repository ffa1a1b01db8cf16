package lineexpr_test

import (
	"testing"

	"github.com/eriklarko/line-query/src/lineexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type evalCase struct {
	expression  string
	identifiers []string
	line        string
	expected    bool
}

func TestEval(t *testing.T) {
	food := []string{"burger", "pizza", "hotdog", "pasta", "egg"}
	animals := []string{"dog", "cat", "horse", "pizza", "cop"}
	menu := []string{"dog", "cat", "fish", "bear", "pizza", "cake", "cheese", "cracker"}

	runEvalTests(t, []evalCase{
		{"dog", []string{"dog"}, "there better be dog in this searched text", true},
		{"not dog", []string{"dog"}, "there better be dog in this searched text", false},
		{"not dog", []string{"dog"}, "there is no d o g in this searched text", true},

		{"dog or cat and pig", []string{"dog", "cat", "pig"}, "there once was a cat named pig", true},
		{"dog or cat and pig", []string{"dog", "cat", "pig"}, "there once was a cat named shark", false},

		{"( burger or pizza or hotdog or pasta ) and not egg", food, "I am having a pizza with egg on it", false},
		{"( burger or pizza or hotdog or pasta ) and not egg", food, "I am having a pizza with burger and hotdog on it", true},
		{"burger or pizza or hotdog or not pasta and not egg", food, "burger is good for me. I love egg too", true},
		{"burger or pizza or hotdog or not pasta and not egg", food, "pizza is good for me. I love egg too", true},
		{"burger or pizza or hotdog or not pasta and not egg", food, "hotdog is good for me. I love pasta too", true},
		{"( burger or pizza or hotdog or not pasta ) and not egg", food, "There is pasta in my sauce", false},
		{"( burger or pizza or hotdog or not pasta ) and not egg", food, "There is hotdog in my sauce", true},

		{"not ( cats or dogs )", []string{"cats", "dogs"}, "I contain the word cats in this sentence.", false},
		{"not ( cats or dogs )", []string{"cats", "dogs"}, "I contain the word cat in this sentence.", true},
		{"not cats and not dogs", []string{"cats", "dogs"}, "I contain the word dogs in this sentence.", false},
		{"not cats and not dogs", []string{"cats", "dogs"}, "I contain the word dog in this sentence.", true},
		{"not cats and not dogs", []string{"cats", "dogs"}, "I contain the word dog and cats in this sentence.", false},

		{"func1() or func2()", []string{"func1()", "func2()"}, "This text contains a func1(), also func2()", true},
		{"func1() and func2()", []string{"func1()", "func2()"}, "This text contains a func1(), also func3()", false},

		{"dog and cat and horse and pizza and dog or cop", animals, "I have a dog, horse, cat, and a pizza", true},
		{"dog and cat and horse and pizza and dog or cop", animals, "I am a good cop man", true},
		{"dog and cat and horse and pizza and dog or cop", animals, "This text should return false my guy!!!", false},

		{"dog and cat and fish and bear and pizza and cake or cheese and cracker", menu, "I want a dog that is friends with a cat and fish and bear and a pizza with a cake", true},
		{"dog and cat and fish and bear and pizza and cake or cheese and cracker", menu, "I love cheese and crackers", true},
		{"dog and cat and fish and bear and pizza and cake or cheese and cracker", menu, "I want a lot of donuts!!!", false},

		{"( dog or cat ) and ( fish or bear or pizza ) and ( cake  or cheese ) and cracker", menu, "I have a dog that likes pizza or cake, with a side of crackers.", true},
		{"( dog or cat ) and ( fish or bear or pizza ) and ( cake  or cheese ) and cracker", menu, "I have a cat that likes fish and cheese, with a side of crackers.", true},
		{"( dog or cat ) and ( fish or bear or pizza ) and ( cake  or cheese ) and cracker", menu, "I have a dog that likes pizza or cake, with a side of love.", false},

		{"#$@!%", []string{"#$@!%"}, "What the #$@!% David Blaine", true},
		{"Dog", []string{"Dog"}, "my dog is case-sensitive", false},
	})
}

func TestEval_Keywords(t *testing.T) {
	runEvalTests(t, []evalCase{
		{"and", []string{"and"}, "I love cheese and chicken", true},
		{"or", []string{"or"}, "I love cheese or chicken", true},
		{"not", []string{"not"}, "I love cheese, not chicken", true},
		{"not", []string{"not"}, "I love cheese and chicken", false},
		{"not and", []string{"and"}, "I love cheese or chicken", true},
		{"not or", []string{"or"}, "I love cheese and chicken", true},
		{"not not", []string{"not"}, "I love cheese and chicken", true},
		{"not not", []string{"not"}, "there once was a cat named shark", true},
		{"not not", []string{"not"}, "there once was a cat named not!", false},

		{"and and and or or or or", []string{"and", "or"}, "There is pizza and burgers", true},
		{"and and and or or or or", []string{"and", "or"}, "There is pizza burgers", false},
	})
}

func TestEval_Parens(t *testing.T) {
	deep := "( ( ( ( ( ( ( ( ( ( ( ( hello ) ) ) ) ) ) ) ) ) ) ) )"

	runEvalTests(t, []evalCase{
		{")", []string{")"}, "I love cheese, not chicken", false},
		{")", []string{")"}, "I love cheese :)", true},
		{"not )", []string{")"}, "no smiles here", true},

		{`dog or \(`, []string{"("}, "This text should return false my guy!!!", false},
		{`dog or \( and here`, []string{"("}, "there is a ( in here", true},
		{`dog and ( \( or here )`, []string{"("}, "I love dogs :(", true},
		{`dog and \(ddd and here`, []string{`\(ddd`}, `doggy! I love you so much! here I have a \(ddd what do i do?`, true},

		{"not (", []string{"("}, "I love dogs :(", true},
		{"not (", []string{"("}, "I love dogs :)", false},

		{deep, []string{"hello"}, "Hello, I say.", false},
		{deep, []string{"hello"}, "I say hello.", true},
	})
}

func TestEval_DeepNestingMatchesBareIdentifier(t *testing.T) {
	bare, err := lineexpr.New("needle")
	require.NoError(t, err)

	expression := "needle"
	for range 200 {
		expression = "( " + expression + " )"
	}
	nested, err := lineexpr.New(expression)
	require.NoError(t, err)

	for _, line := range []string{"a needle in a haystack", "just hay", ""} {
		expected, err := bare.Eval(line)
		require.NoError(t, err)

		actual, err := nested.Eval(line)
		require.NoError(t, err)

		assert.Equal(t, expected, actual, line)
	}
}

func TestEval_Idempotent(t *testing.T) {
	p, err := lineexpr.New("( dog or cat ) and not pig")
	require.NoError(t, err)

	for _, line := range []string{"a dog", "a cat and a pig", "nothing"} {
		first, err := p.Eval(line)
		require.NoError(t, err)
		second, err := p.Eval(line)
		require.NoError(t, err)

		assert.Equal(t, first, second, line)
	}
}

func TestEval_RefreshesEveryIdentifier(t *testing.T) {
	p, err := lineexpr.New("dog or cat and pig")
	require.NoError(t, err)

	// "dog" decides the result; the other operands are still evaluated
	matched, err := p.Eval("dog and pig")
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, map[string]bool{"dog": true, "cat": false, "pig": true}, p.Identifiers())

	// nothing is carried over from the previous line
	matched, err = p.Eval("cat")
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Equal(t, map[string]bool{"dog": false, "cat": true, "pig": false}, p.Identifiers())
}

func TestEval_IdentifiersIsACopy(t *testing.T) {
	p, err := lineexpr.New("dog")
	require.NoError(t, err)

	identifiers := p.Identifiers()
	identifiers["dog"] = true
	identifiers["cat"] = true

	assert.Equal(t, map[string]bool{"dog": false}, p.Identifiers())
}

func TestEval_BeforeParse(t *testing.T) {
	p := lineexpr.NewParser("dog")
	_, err := p.Eval("dog")
	assert.ErrorIs(t, err, lineexpr.ErrNotParsed)

	broken := lineexpr.NewParser("dog cat")
	require.Error(t, broken.Parse())
	_, err = broken.Eval("dog cat")
	assert.ErrorIs(t, err, lineexpr.ErrNotParsed)
}

func runEvalTests(t *testing.T, tests []evalCase) {
	t.Helper()

	for _, tc := range tests {
		t.Run(tc.expression+" | "+tc.line, func(t *testing.T) {
			p := lineexpr.NewParser(tc.expression)
			require.NoError(t, p.Parse(), "parse failed with input: %s", tc.expression)

			// every identifier is known before the first line is seen
			identifiers := p.Identifiers()
			for _, identifier := range tc.identifiers {
				assert.Contains(t, identifiers, identifier, "'%s' is not in the identifier map", identifier)
			}

			result, err := p.Eval(tc.line)
			require.NoError(t, err, "eval failed with line: %s", tc.line)
			assert.Equal(t, tc.expected, result)
		})
	}
}
