package parse

import (
	"strings"

	"github.com/optkit/optkit/errs"
)

// OptSpec parses a compact option spec string into the option's names and its
// default values.
//
// The string holds comma-separated names, optionally followed by defaults:
//
//	"f,foo"       names only, no defaults
//	"foo=123"     one default value "123"
//	"foo="        one default value "" (the empty string)
//	"q=[1,2,3]"   defaults "1", "2", "3"
//	"q=[]"        an empty default sequence
//	"q=/[1/2/3]"  defaults split on "/" instead of ",", so values may
//	              contain commas; any character works except letters,
//	              digits, "-", "_" and the brackets themselves
//	"q/[1/2/3]"   same, with the separator doubling as the "=" delimiter
//
// defaults is nil when the spec declares none, and non-nil (possibly empty)
// when it does. The distinction matters to callers that treat nil as "no
// defaults configured".
func OptSpec(spec string) (names []string, defaults []string, err error) {
	rest := ""
	head := spec

	if i := strings.IndexByte(spec, '='); i >= 0 {
		head = spec[:i]
		defaults, err = parseDefaults(spec, spec[i+1:])
		if err != nil {
			return nil, nil, err
		}
	} else if j := strings.IndexByte(spec, '['); j >= 1 {
		head = spec[:j-1]
		rest = spec[j-1:]
		defaults, err = parseDefaults(spec, rest)
		if err != nil {
			return nil, nil, err
		}
	}

	if head != "" {
		names = strings.Split(head, ",")
	}

	return names, defaults, nil
}

// parseDefaults interprets the defaults portion of a spec string. The spec
// argument is the full spec and is only used for error reporting.
func parseDefaults(spec, d string) ([]string, error) {
	if d == "" {
		return []string{""}, nil
	}

	if d[0] == '[' {
		if !strings.HasSuffix(d, "]") {
			return nil, &errs.MalformedSpec{Spec: spec, Reason: "unbalanced brackets"}
		}
		inner := d[1 : len(d)-1]
		if inner == "" {
			return []string{}, nil
		}
		return strings.Split(inner, ","), nil
	}

	if len(d) >= 2 && d[1] == '[' {
		if !strings.HasSuffix(d, "]") {
			return nil, &errs.MalformedSpec{Spec: spec, Reason: "unbalanced brackets"}
		}
		sep := d[0]
		if isAmbiguousSep(sep) {
			return nil, &errs.MalformedSpec{Spec: spec, Reason: "ambiguous separator character"}
		}
		inner := d[2 : len(d)-1]
		if inner == "" {
			return []string{}, nil
		}
		return strings.Split(inner, string(sep)), nil
	}

	return []string{d}, nil
}

// isAmbiguousSep reports whether b cannot serve as a custom separator:
// characters that may occur in option names or in the bracket syntax itself
// would make the defaults section unreadable.
func isAmbiguousSep(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' ||
		b == '-' || b == '_' || b == '[' || b == ']'
}
