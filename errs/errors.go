// Package errs defines the typed errors returned while building option
// configurations and while parsing command-line arguments. Every error is a
// struct carrying the data needed to report the failure, so callers can switch
// on the concrete type with errors.As instead of matching message strings.
package errs

import "fmt"

// OptionError is implemented by every error raised for a specific option
// token during classification or matching.
type OptionError interface {
	error
	// OptionName returns the offending option name as it appeared on the
	// command line, without its leading hyphens.
	OptionName() string
}

// MalformedSpec is returned when an option spec string cannot be parsed.
type MalformedSpec struct {
	Spec   string
	Reason string
}

func (e *MalformedSpec) Error() string {
	return fmt.Sprintf("malformed option spec %q: %s", e.Spec, e.Reason)
}

// DuplicateName is returned when two option configurations declare the same
// name or alias.
type DuplicateName struct {
	Name     string
	StoreKey string
}

func (e *DuplicateName) Error() string {
	return fmt.Sprintf("option name %q is used by multiple configurations (store key: %q)", e.Name, e.StoreKey)
}

// DuplicateStoreKey is returned when two option configurations resolve to the
// same store key.
type DuplicateStoreKey struct {
	StoreKey string
	Name     string
}

func (e *DuplicateStoreKey) Error() string {
	return fmt.Sprintf("store key %q is used by multiple configurations (option: %q)", e.StoreKey, e.Name)
}

// ConfigIsArrayButHasNoArg is returned when a configuration is marked as an
// array option but does not take an argument.
type ConfigIsArrayButHasNoArg struct {
	StoreKey string
}

func (e *ConfigIsArrayButHasNoArg) Error() string {
	return fmt.Sprintf("configuration %q is an array option but takes no argument", e.StoreKey)
}

// ConfigHasDefaultsButHasNoArg is returned when a configuration declares
// default values but does not take an argument.
type ConfigHasDefaultsButHasNoArg struct {
	StoreKey string
}

func (e *ConfigHasDefaultsButHasNoArg) Error() string {
	return fmt.Sprintf("configuration %q has default values but takes no argument", e.StoreKey)
}

// OptionContainsInvalidChar is returned when an option token contains a
// character outside the allowed set (letters, digits, hyphen, underscore,
// with a leading letter).
type OptionContainsInvalidChar struct {
	Option string
}

func (e *OptionContainsInvalidChar) Error() string {
	return fmt.Sprintf("option %q contains an invalid character", e.Option)
}

func (e *OptionContainsInvalidChar) OptionName() string { return e.Option }

// UnconfiguredOption is returned when an option on the command line has no
// matching configuration.
type UnconfiguredOption struct {
	Option string
}

func (e *UnconfiguredOption) Error() string {
	return fmt.Sprintf("unknown option %q", e.Option)
}

func (e *UnconfiguredOption) OptionName() string { return e.Option }

// OptionNeedsArg is returned when an option configured with HasArg receives
// no argument.
type OptionNeedsArg struct {
	Option   string
	StoreKey string
}

func (e *OptionNeedsArg) Error() string {
	return fmt.Sprintf("option %q needs an argument", e.Option)
}

func (e *OptionNeedsArg) OptionName() string { return e.Option }

// OptionTakesNoArg is returned when an option configured without HasArg
// receives an inline argument.
type OptionTakesNoArg struct {
	Option   string
	StoreKey string
}

func (e *OptionTakesNoArg) Error() string {
	return fmt.Sprintf("option %q takes no argument", e.Option)
}

func (e *OptionTakesNoArg) OptionName() string { return e.Option }

// OptionIsNotArray is returned when a non-array option is supplied more than
// once.
type OptionIsNotArray struct {
	Option   string
	StoreKey string
}

func (e *OptionIsNotArray) Error() string {
	return fmt.Sprintf("option %q cannot be specified more than once", e.Option)
}

func (e *OptionIsNotArray) OptionName() string { return e.Option }

// OptionArgIsInvalid is returned when a validator rejects an option argument.
// Cause holds the validator's error and is exposed through Unwrap.
type OptionArgIsInvalid struct {
	Option   string
	StoreKey string
	OptArg   string
	Cause    error
}

func (e *OptionArgIsInvalid) Error() string {
	return fmt.Sprintf("invalid argument %q for option %q: %v", e.OptArg, e.Option, e.Cause)
}

func (e *OptionArgIsInvalid) OptionName() string { return e.Option }

func (e *OptionArgIsInvalid) Unwrap() error { return e.Cause }

// UnknownSubCommand is returned by a router when the sub-command named on the
// command line has not been registered.
type UnknownSubCommand struct {
	Name string
}

func (e *UnknownSubCommand) Error() string {
	return fmt.Sprintf("unknown sub-command %q", e.Name)
}
