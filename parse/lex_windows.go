package parse

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Split tokenizes a command line into arguments following cmd.exe
// conventions: double quotes group words, ^ escapes the next character,
// %VAR% expands environment variables, and backslashes are literal except
// when they precede a double quote.
func Split(line string) ([]string, error) {
	var tokens []string
	var arg strings.Builder
	inQuotes := false

	flush := func() {
		if arg.Len() > 0 {
			tokens = append(tokens, arg.String())
			arg.Reset()
		}
	}

	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("invalid UTF-8 encoding at position %d", i)
		}

		switch {
		case r == '^' && !inQuotes:
			i += size
			if i < len(line) {
				next, nsize := utf8.DecodeRuneInString(line[i:])
				arg.WriteRune(next)
				i += nsize
			}

		case r == '"':
			inQuotes = !inQuotes
			i += size

		case r == '%' && !inQuotes:
			end := strings.IndexByte(line[i+1:], '%')
			if end < 0 {
				arg.WriteByte('%')
				i += size
				break
			}
			arg.WriteString(os.Getenv(line[i+1 : i+1+end]))
			i += end + 2

		case r == '\\':
			n := 0
			for i < len(line) && line[i] == '\\' {
				n++
				i++
			}
			if i < len(line) && line[i] == '"' {
				// 2n backslashes before a quote collapse to n, an odd
				// count escapes the quote itself
				arg.WriteString(strings.Repeat(`\`, n/2))
				if n%2 == 0 {
					inQuotes = !inQuotes
				} else {
					arg.WriteByte('"')
				}
				i++
			} else {
				arg.WriteString(strings.Repeat(`\`, n))
			}

		case !inQuotes && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			flush()
			i += size

		default:
			arg.WriteRune(r)
			i += size
		}
	}

	flush()
	return tokens, nil
}
