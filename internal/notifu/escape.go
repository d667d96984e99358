package notifu

import "strings"

// Escape returns text as it must be handed to notifu as a single argument.
// Arguments travel as argv entries without a shell, so quotes and backticks
// reach notifu verbatim. NUL bytes cannot be carried in an argument and are
// removed.
func Escape(text string) string {
	return strings.ReplaceAll(text, "\x00", "")
}

// QuoteArg renders arg as one word of a Windows command line, following the
// CommandLineToArgvW parsing rules.
func QuoteArg(arg string) string {
	if arg == "" {
		return `""`
	}
	if !strings.ContainsAny(arg, " \t\n\v\"'`") {
		return arg
	}

	var b strings.Builder
	b.WriteByte('"')
	slashes := 0
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		switch c {
		case '\\':
			slashes++
		case '"':
			// Backslashes before a quote are doubled and the quote is escaped.
			b.WriteString(strings.Repeat(`\`, slashes+1))
			slashes = 0
		default:
			slashes = 0
		}
		b.WriteByte(c)
	}
	// Trailing backslashes would escape the closing quote.
	b.WriteString(strings.Repeat(`\`, slashes))
	b.WriteByte('"')
	return b.String()
}

// CommandLine renders path and args as a Windows command line.
func CommandLine(path string, args []string) string {
	words := make([]string, 0, len(args)+1)
	words = append(words, QuoteArg(path))
	for _, arg := range args {
		words = append(words, QuoteArg(arg))
	}
	return strings.Join(words, " ")
}
