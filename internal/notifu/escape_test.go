package notifu

import (
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "plain", in: "body", expected: "body"},
		{name: "quotes and backticks", in: "some \"me'ss`age`\"", expected: "some \"me'ss`age`\""},
		{name: "nul bytes", in: "bo\x00dy\x00", expected: "body"},
		{name: "empty", in: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.expected {
				t.Errorf("Escape(%q) = %q, expected %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestQuoteArg(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{in: "body", expected: `body`},
		{in: "", expected: `""`},
		{in: "Node Notification:", expected: `"Node Notification:"`},
		{in: `say "hi"`, expected: `"say \"hi\""`},
		{in: `C:\Program Files\`, expected: `"C:\Program Files\\"`},
		{in: `a\"b`, expected: `"a\\\"b"`},
		{in: `C:\icons\app.ico`, expected: `C:\icons\app.ico`},
		{in: "it's", expected: `"it's"`},
	}

	for _, tt := range tests {
		if got := QuoteArg(tt.in); got != tt.expected {
			t.Errorf("QuoteArg(%q) = %s, expected %s", tt.in, got, tt.expected)
		}
	}
}

func TestCommandLineRoundTrip(t *testing.T) {
	inputs := [][]string{
		{"-m", "body", "-p", "title", "-q"},
		{"-m", "some \"me'ss`age`\"", "-p", "Node Notification:", "-q"},
		{"-m", `trailing\`, "-p", `two\\ "quoted\\"`, "-i", `C:\Program Files\app\icon.ico`},
		{"-m", "tab\tand\nnewline", "-p", ""},
		{"-m", `\\server\share\`, "-d", "1000"},
	}

	for _, args := range inputs {
		line := CommandLine(`C:\Program Files\balloon\vendor\notifu64.exe`, args)
		got := splitCommandLine(line)
		if len(got) == 0 || got[0] != `C:\Program Files\balloon\vendor\notifu64.exe` {
			t.Fatalf("executable did not survive round trip: %q", line)
		}
		got = got[1:]
		if strings.Join(got, "\x1f") != strings.Join(args, "\x1f") || len(got) != len(args) {
			t.Errorf("round trip mismatch\n line: %s\n want: %q\n  got: %q", line, args, got)
		}
	}
}

// splitCommandLine parses a command line the way CommandLineToArgvW does for
// arguments after the program name.
func splitCommandLine(line string) []string {
	var args []string
	var cur strings.Builder
	inQuotes, inWord := false, false
	for i := 0; i < len(line); {
		c := line[i]
		switch {
		case c == '\\':
			n := 0
			for i < len(line) && line[i] == '\\' {
				n++
				i++
			}
			if i < len(line) && line[i] == '"' {
				cur.WriteString(strings.Repeat(`\`, n/2))
				if n%2 == 1 {
					cur.WriteByte('"')
					i++
				}
			} else {
				cur.WriteString(strings.Repeat(`\`, n))
			}
			inWord = true
		case c == '"':
			inQuotes = !inQuotes
			inWord = true
			i++
		case (c == ' ' || c == '\t') && !inQuotes:
			if inWord {
				args = append(args, cur.String())
				cur.Reset()
				inWord = false
			}
			i++
		default:
			cur.WriteByte(c)
			inWord = true
			i++
		}
	}
	if inWord {
		args = append(args, cur.String())
	}
	return args
}
