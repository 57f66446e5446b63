package interpreter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		input  string
		output string
	}{
		{
			input:  "( ) == != < <= > >= name 123 123.123 123.0 123. name",
			output: "( ) == != < <= > >= string number number number number string EOL",
		},
		{
			input:  "1.2.3",
			output: "illegal",
		},
		{
			input:  "cpu123 y0 variable",
			output: "string string string EOL",
		},
		{
			input:  "cpu == 23%",
			output: "string == number string EOL",
		},
		{
			input:  "cpu == 22% && mem <= 10Gib || network < -100kb",
			output: "string == number string && string <= number string || string < - number string EOL",
		},
		{
			input:  "x = 1",
			output: "string illegal",
		},
		{
			input:  "x == 1\x00 && y == 2",
			output: "string == number illegal",
		},
		{
			input:  "",
			output: "EOL",
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			l := newLexer([]byte(test.input))

			tokens := []string{}
			for {
				_, tok, _ := l.Scan()
				tokens = append(tokens, tok.String())
				if tok == EOL || tok == ILLEGAL {
					break
				}
			}

			assert.Equal(t, test.output, strings.Join(tokens, " "))
		})
	}
}

func TestTokenValues(t *testing.T) {
	l := newLexer([]byte("mem_free >= 20Gib"))

	pos, tok, val := l.Scan()
	assert.Equal(t, 0, pos)
	assert.Equal(t, STRING, tok)
	assert.Equal(t, "mem_free", val)

	pos, tok, _ = l.Scan()
	assert.Equal(t, 9, pos)
	assert.Equal(t, GTE, tok)

	_, tok, val = l.Scan()
	assert.Equal(t, NUMBER, tok)
	assert.Equal(t, "20", val)

	_, tok, val = l.Scan()
	assert.Equal(t, STRING, tok)
	assert.Equal(t, "Gib", val)
}
