package parse

import (
	"strings"

	"github.com/optkit/optkit/errs"
)

// Handlers receive the tokens classified by Scan.
//
// Arg is called once per command argument, in order. Opt is called once per
// recognized option; value is nil when the option appeared without a value
// and points at the raw value otherwise, so a present-but-empty "=" suffix is
// distinguishable from no value at all. TakesArg reports whether the named
// option consumes the following token when no inline value is given; a nil
// TakesArg treats every option as valueless unless "=" is used.
//
// An error returned from Arg or Opt aborts the scan and is returned as is.
type Handlers struct {
	Arg      func(arg string) error
	Opt      func(name string, value *string) error
	TakesArg func(name string) bool
}

// Scan walks the argument list once, left to right, classifying each token as
// a command argument or an option and dispatching it to h.
//
// A token equal to "--" switches every later token into a command argument,
// even ones that start with a hyphen. A token starting with "--" is a long
// option, with an optional inline "=value". A token starting with a single
// "-" is a run of bundled short options where only the last one may take a
// value. A bare "-" is a command argument.
func Scan(st State, h Handlers) error {
	_, err := scan(st, h, false)
	return err
}

// ScanUntilArg behaves like Scan but stops at the first token classified as a
// command argument, without dispatching it to h.Arg. It returns the index of
// that token, or -1 when the list holds options only.
func ScanUntilArg(st State, h Handlers) (int, error) {
	return scan(st, h, true)
}

func scan(st State, h Handlers, untilArg bool) (int, error) {
	literal := false
	pending := ""

	for st.Advance() {
		arg := st.CurrentArg()

		switch {
		case literal:
			if untilArg {
				return st.Pos(), nil
			}
			if err := h.Arg(arg); err != nil {
				return -1, err
			}

		case pending != "":
			name := pending
			pending = ""
			if err := h.Opt(name, &arg); err != nil {
				return -1, err
			}

		case arg == "--":
			literal = true

		case strings.HasPrefix(arg, "--"):
			p, err := scanLong(st, arg[2:], h)
			if err != nil {
				return -1, err
			}
			pending = p

		case strings.HasPrefix(arg, "-") && arg != "-":
			p, err := scanShortRun(st, arg[1:], h)
			if err != nil {
				return -1, err
			}
			pending = p

		default:
			if untilArg {
				return st.Pos(), nil
			}
			if err := h.Arg(arg); err != nil {
				return -1, err
			}
		}
	}

	return -1, nil
}

// scanLong classifies the body of a "--"-prefixed token. It returns the
// option name when its value must be taken from the next token.
func scanLong(st State, body string, h Handlers) (string, error) {
	for i, ch := range body {
		if i == 0 {
			if !isAllowedFirstChar(ch) {
				return "", &errs.OptionContainsInvalidChar{Option: body}
			}
			continue
		}
		if ch == '=' {
			value := body[i+1:]
			return "", h.Opt(body[:i], &value)
		}
		if !isAllowedChar(ch) {
			return "", &errs.OptionContainsInvalidChar{Option: body}
		}
	}

	if takesArg(h, body) && st.Pos() < st.Len()-1 {
		return body, nil
	}
	return "", h.Opt(body, nil)
}

// scanShortRun classifies the body of a single "-"-prefixed token as bundled
// short options. Every name but the last is dispatched without a value; the
// last one may take an inline "=value" or, when it consumes arguments, the
// next token. Like scanLong it returns the name whose value is pending.
func scanShortRun(st State, body string, h Handlers) (string, error) {
	name := ""
	for i, ch := range body {
		if i > 0 && ch == '=' {
			value := body[i+1:]
			return "", h.Opt(name, &value)
		}
		if name != "" {
			if err := h.Opt(name, nil); err != nil {
				return "", err
			}
		}
		if !isAllowedFirstChar(ch) {
			return "", &errs.OptionContainsInvalidChar{Option: string(ch)}
		}
		name = string(ch)
	}

	if takesArg(h, name) && st.Pos() < st.Len()-1 {
		return name, nil
	}
	return "", h.Opt(name, nil)
}

func takesArg(h Handlers, name string) bool {
	return h.TakesArg != nil && h.TakesArg(name)
}

// Option names start with an ASCII letter; later characters may also be
// digits, hyphens or underscores.
func isAllowedFirstChar(ch rune) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isAllowedChar(ch rune) bool {
	return ch == '-' || ch == '_' || ch >= '0' && ch <= '9' || isAllowedFirstChar(ch)
}
