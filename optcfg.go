package optkit

import "github.com/optkit/optkit/parse"

// OptCfg describes one logical option: the names it is matched by, whether it
// consumes arguments, and how its values are recorded.
//
// StoreKey is the key under which parsed values are kept; it defaults to the
// first entry of Names. When Names is empty the store key itself is matched
// on the command line, run through the name converter if one was set. The
// store key "*" turns on accept-any mode: every otherwise unconfigured option
// is collected verbatim instead of failing the parse.
type OptCfg struct {
	StoreKey  string
	Names     []string
	HasArg    bool
	IsArray   bool
	Defaults  []string
	Desc      string
	ArgInHelp string
	Validator ValidatorFunc

	nameConverter NameConversionFunc
	err           error
}

// NewOptCfg builds an OptCfg from option functions. A configuration failure,
// such as a malformed spec string passed to WithSpec, is remembered on the
// returned value and reported when the configuration is first used in a
// parse call. Use Set to observe failures immediately.
func NewOptCfg(configs ...ConfigureOptCfgFunc) OptCfg {
	cfg := OptCfg{}
	for _, config := range configs {
		config(&cfg, &cfg.err)
		if cfg.err != nil {
			break
		}
	}

	return cfg
}

// Set applies option functions to an existing OptCfg and returns the first
// configuration error.
func (c *OptCfg) Set(configs ...ConfigureOptCfgFunc) error {
	var err error
	for _, config := range configs {
		config(c, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// WithStoreKey sets the key under which the option's values are recorded
func WithStoreKey(storeKey string) ConfigureOptCfgFunc {
	return func(cfg *OptCfg, err *error) {
		cfg.StoreKey = storeKey
	}
}

// WithNames sets the names the option is matched by, short or long
func WithNames(names ...string) ConfigureOptCfgFunc {
	return func(cfg *OptCfg, err *error) {
		cfg.Names = names
	}
}

// WithHasArg marks the option as consuming one argument
func WithHasArg() ConfigureOptCfgFunc {
	return func(cfg *OptCfg, err *error) {
		cfg.HasArg = true
	}
}

// WithIsArray marks the option as repeatable; it implies WithHasArg
func WithIsArray() ConfigureOptCfgFunc {
	return func(cfg *OptCfg, err *error) {
		cfg.HasArg = true
		cfg.IsArray = true
	}
}

// WithDefaults sets the values used when the option is absent from input.
// Defaults imply WithHasArg.
func WithDefaults(defaults ...string) ConfigureOptCfgFunc {
	return func(cfg *OptCfg, err *error) {
		cfg.HasArg = true
		cfg.Defaults = defaults
	}
}

// WithDesc sets the description used in help output
func WithDesc(desc string) ConfigureOptCfgFunc {
	return func(cfg *OptCfg, err *error) {
		cfg.Desc = desc
	}
}

// WithArgInHelp sets the argument placeholder shown in help output, such as
// "<file>"
func WithArgInHelp(argInHelp string) ConfigureOptCfgFunc {
	return func(cfg *OptCfg, err *error) {
		cfg.ArgInHelp = argInHelp
	}
}

// WithValidator sets the function which checks each option argument before
// it is stored
func WithValidator(validator ValidatorFunc) ConfigureOptCfgFunc {
	return func(cfg *OptCfg, err *error) {
		cfg.Validator = validator
	}
}

// WithSpec configures names and defaults from a compact spec string such as
// "f,foo=123" or "q=[1,2,3]". When the spec declares defaults the option is
// marked as taking an argument. See parse.OptSpec for the full syntax.
func WithSpec(spec string) ConfigureOptCfgFunc {
	return func(cfg *OptCfg, err *error) {
		names, defaults, e := parse.OptSpec(spec)
		if e != nil {
			if err != nil {
				*err = e
			}
			return
		}
		cfg.Names = names
		if defaults != nil {
			cfg.HasArg = true
			cfg.Defaults = defaults
		}
	}
}

// WithNameConverter sets the function used to derive the matchable option
// name from the store key when Names is empty.
func WithNameConverter(conv NameConversionFunc) ConfigureOptCfgFunc {
	return func(cfg *OptCfg, err *error) {
		cfg.nameConverter = conv
	}
}

// matchableNames returns the names the option is looked up by on the command
// line. A configuration without names falls back to its store key, converted
// when a name converter was set.
func (c *OptCfg) matchableNames() []string {
	if len(c.Names) > 0 {
		return c.Names
	}
	key := c.resolvedStoreKey()
	if key == "" || key == anyOption {
		return nil
	}
	if c.nameConverter != nil {
		key = c.nameConverter(key)
	}
	return []string{key}
}

// resolvedStoreKey returns StoreKey, falling back to the first name. A
// configuration resolving to an empty store key takes no part in parsing.
func (c *OptCfg) resolvedStoreKey() string {
	if c.StoreKey != "" {
		return c.StoreKey
	}
	if len(c.Names) > 0 {
		return c.Names[0]
	}
	return ""
}
