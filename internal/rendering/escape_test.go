package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty string", "", ""},
		{"plain text untouched", "no special characters here", "no special characters here"},
		{"backslash", `test\backslash`, `test\textbackslash{}backslash`},
		{"curly braces", "text{with}braces", `text\{with\}braces`},
		{"dollar sign", "cost $100", `cost \$100`},
		{"ampersand", "A & B", `A \& B`},
		{"percent", "100% complete", `100\% complete`},
		{"hash", "issue #123", `issue \#123`},
		{"caret", "x^2", `x\textasciicircum{}2`},
		{"underscore", "variable_name", `variable\_name`},
		{"tilde", "~approx", `\textasciitilde{}approx`},
		{"unicode passes through", "résumé with unicode: α β γ", "résumé with unicode: α β γ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLaTeX(tt.in))
		})
	}
}

func TestEscapeLaTeX_SinglePass(t *testing.T) {
	// Backslashes introduced by one replacement must not be escaped again.
	got := EscapeLaTeX(`${}~&%#^_\`)
	assert.Equal(t, `\$\{\}\textasciitilde{}\&\%\#\textasciicircum{}\_\textbackslash{}`, got)
}

func TestEscapeLaTeX_MixedContent(t *testing.T) {
	got := EscapeLaTeX("Built system handling $1M+ requests/day with 99.9% uptime")
	assert.Contains(t, got, `\$1M`)
	assert.Contains(t, got, `99.9\%`)
	assert.Contains(t, got, "requests/day")
}
