// Package validators provides ready-made option argument validators for use
// with option configurations. Each constructor returns a function matching
// the engine's validator signature and reports rejections as
// errs.OptionArgIsInvalid.
package validators

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/araddon/dateparse"

	"github.com/optkit/optkit/errs"
)

// Func is the validator signature: it receives the configuration's store
// key, the option name used on the command line and the raw argument.
type Func = func(storeKey, name, optArg string) error

// Numeric covers the types accepted by Range.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Range accepts numeric arguments within [low, high].
func Range[T Numeric](low, high T) Func {
	return func(storeKey, name, optArg string) error {
		v, err := strconv.ParseFloat(optArg, 64)
		if err != nil {
			return invalid(storeKey, name, optArg, fmt.Errorf("not a number"))
		}
		if v < float64(low) || v > float64(high) {
			return invalid(storeKey, name, optArg, fmt.Errorf("must be between %v and %v", low, high))
		}
		return nil
	}
}

// Integer accepts arguments parseable as a signed integer.
func Integer() Func {
	return func(storeKey, name, optArg string) error {
		if _, err := strconv.ParseInt(optArg, 10, 64); err != nil {
			return invalid(storeKey, name, optArg, fmt.Errorf("not an integer"))
		}
		return nil
	}
}

// Pattern accepts arguments matching the regular expression. An invalid
// expression rejects every argument, carrying the compile error as the
// cause.
func Pattern(expr string) Func {
	re, compileErr := regexp.Compile(expr)
	return func(storeKey, name, optArg string) error {
		if compileErr != nil {
			return invalid(storeKey, name, optArg, compileErr)
		}
		if !re.MatchString(optArg) {
			return invalid(storeKey, name, optArg, fmt.Errorf("does not match %q", expr))
		}
		return nil
	}
}

// OneOf accepts arguments equal to one of the allowed values.
func OneOf(allowed ...string) Func {
	return func(storeKey, name, optArg string) error {
		for _, v := range allowed {
			if optArg == v {
				return nil
			}
		}
		return invalid(storeKey, name, optArg, fmt.Errorf("must be one of %q", allowed))
	}
}

// Date accepts arguments parseable as a date or timestamp in any of the
// common layouts.
func Date() Func {
	return func(storeKey, name, optArg string) error {
		if _, err := dateparse.ParseAny(optArg); err != nil {
			return invalid(storeKey, name, optArg, fmt.Errorf("not a recognizable date"))
		}
		return nil
	}
}

func invalid(storeKey, name, optArg string, cause error) error {
	return &errs.OptionArgIsInvalid{
		Option:   name,
		StoreKey: storeKey,
		OptArg:   optArg,
		Cause:    cause,
	}
}
