package format

import (
	"fmt"
	"strings"

	"github.com/isaccanedo/style-dictionary/internal/tokens"
)

// header is prepended to stylesheet outputs unless showFileHeader is off.
// It carries no timestamp, so repeated builds stay byte-identical.
const header = "/**\n * Do not edit directly, this file was auto-generated.\n */\n\n"

// CSSVariables renders every token as a custom property on :root. With
// outputReferences, values whose original form referenced other tokens are
// emitted as var() chains instead of resolved values.
func CSSVariables(args Args) (string, error) {
	var b strings.Builder
	if args.File.Options.WantsFileHeader() {
		b.WriteString(header)
	}
	b.WriteString(":root {\n")
	for _, t := range args.Dictionary.AllTokens {
		b.WriteString("  --")
		b.WriteString(t.Name)
		b.WriteString(": ")
		b.WriteString(tokenValue(args, t, cssReference))
		b.WriteString(";")
		if t.Comment != "" {
			b.WriteString(" /* ")
			b.WriteString(t.Comment)
			b.WriteString(" */")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String(), nil
}

// SCSSVariables renders every token as a Sass variable declaration.
func SCSSVariables(args Args) (string, error) {
	var b strings.Builder
	if args.File.Options.WantsFileHeader() {
		b.WriteString(header)
	}
	for _, t := range args.Dictionary.AllTokens {
		b.WriteString("$")
		b.WriteString(t.Name)
		b.WriteString(": ")
		b.WriteString(tokenValue(args, t, scssReference))
		b.WriteString(";")
		if t.Comment != "" {
			b.WriteString(" // ")
			b.WriteString(t.Comment)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func cssReference(name string) string  { return "var(--" + name + ")" }
func scssReference(name string) string { return "$" + name }

// tokenValue renders one token's value, substituting references when the
// file asked for them and the original value still carries reference
// syntax. A value none of whose references resolve falls back to the
// resolved value.
func tokenValue(args Args, t *tokens.Token, ref func(string) string) string {
	if args.File.Options.WantsReferences() {
		original := t.OriginalValue()
		if tokens.UsesReference(original) {
			out, ok := args.Dictionary.SubstituteReferences(original.(string), func(target *tokens.Token) string {
				return ref(target.Name)
			})
			if ok {
				return out
			}
		}
	}
	return fmt.Sprint(t.Value)
}
