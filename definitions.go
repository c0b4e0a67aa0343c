// Package optkit parses command-line arguments.
//
// Tokens are classified into command arguments and options following
// POSIX/GNU conventions: "--name" and "--name=value" long options, "-a"
// short options which may be bundled as "-abc", and "--" to end option
// processing. Parsing may run unconfigured, against a list of option
// configurations, or against a struct annotated through an OptStore.
package optkit

import "github.com/iancoleman/strcase"

// ValidatorFunc checks one option argument before it is stored. It receives
// the configuration's store key, the option name as used on the command line
// and the raw argument. A non-nil error rejects the argument and aborts the
// parse.
type ValidatorFunc func(storeKey, name, optArg string) error

// ConfigureOptCfgFunc is used through option functions such as WithNames to
// build an OptCfg. When err is non-nil a configuration failure is written to
// it; NewOptCfg passes the cfg's own deferred error slot instead so failures
// surface when the configuration list is first used.
type ConfigureOptCfgFunc func(cfg *OptCfg, err *error)

// NameConversionFunc converts a store key or field name to an option name
type NameConversionFunc func(name string) string

// ToKebabCase converts a name to kebab-case ("FooBar" -> "foo-bar")
func ToKebabCase(name string) string {
	return strcase.ToKebab(name)
}

// ToSnakeCase converts a name to snake_case ("FooBar" -> "foo_bar")
func ToSnakeCase(name string) string {
	return strcase.ToSnake(name)
}

// ToLowerCamelCase converts a name to lowerCamelCase ("foo_bar" -> "fooBar")
func ToLowerCamelCase(name string) string {
	return strcase.ToLowerCamel(name)
}

// ToScreamingSnakeCase converts a name to SCREAMING_SNAKE_CASE, the
// conventional shape of environment variable names
func ToScreamingSnakeCase(name string) string {
	return strcase.ToScreamingSnake(name)
}

// anyOption is the store key which accepts every option name without
// configuration.
const anyOption = "*"
