package optkit

import (
	"errors"

	"github.com/optkit/optkit/errs"
	"github.com/optkit/optkit/parse"
)

// ParseWith classifies the command line against a list of option
// configurations. Every option must resolve to a configuration (unless one
// carries the accept-any store key "*"), arity and array rules are enforced,
// validators run on each accepted value, and options absent from input are
// seeded with their configured defaults. The first violation aborts the
// parse.
func (c *Cmd) ParseWith(cfgs []OptCfg) error {
	reg, err := newRegistry(cfgs)
	if err != nil {
		return err
	}
	c.cfgs = reg.cfgs

	if err := parse.Scan(parse.NewState(c.raw), c.matchingHandlers(reg)); err != nil {
		return err
	}

	c.seedDefaults(reg)
	return nil
}

// ParseWithUntilSubCmd is to ParseWith what ParseUntilSubCmd is to Parse: it
// matches options against the configurations up to the first command
// argument and returns the remainder as a new Cmd, or nil when the command
// line holds options only.
func (c *Cmd) ParseWithUntilSubCmd(cfgs []OptCfg) (*Cmd, error) {
	reg, err := newRegistry(cfgs)
	if err != nil {
		return nil, err
	}
	c.cfgs = reg.cfgs

	idx, err := parse.ScanUntilArg(parse.NewState(c.raw), c.matchingHandlers(reg))
	if err != nil {
		return nil, err
	}

	c.seedDefaults(reg)
	if idx < 0 {
		return nil, nil
	}
	return c.subCmd(idx), nil
}

// matchingHandlers enforce a registry's configurations while tokens are
// classified.
func (c *Cmd) matchingHandlers(reg *registry) parse.Handlers {
	return parse.Handlers{
		Arg: func(arg string) error {
			c.args = append(c.args, arg)
			return nil
		},
		Opt: func(name string, value *string) error {
			cfg, ok := reg.find(name)
			if !ok {
				return c.collectUnmatched(reg, name, value)
			}
			return c.collectMatched(cfg, name, value)
		},
		TakesArg: reg.takesArg,
	}
}

func (c *Cmd) collectMatched(cfg *OptCfg, name string, value *string) error {
	storeKey := cfg.resolvedStoreKey()

	if value == nil {
		if cfg.HasArg {
			return &errs.OptionNeedsArg{Option: name, StoreKey: storeKey}
		}
		if _, ok := c.opts[storeKey]; !ok {
			c.opts[storeKey] = []string{}
		}
		return nil
	}

	if !cfg.HasArg {
		return &errs.OptionTakesNoArg{Option: name, StoreKey: storeKey}
	}
	if len(c.opts[storeKey]) > 0 && !cfg.IsArray {
		return &errs.OptionIsNotArray{Option: name, StoreKey: storeKey}
	}

	if cfg.Validator != nil {
		if err := cfg.Validator(storeKey, name, *value); err != nil {
			var invalid *errs.OptionArgIsInvalid
			if errors.As(err, &invalid) {
				return err
			}
			return &errs.OptionArgIsInvalid{
				Option:   name,
				StoreKey: storeKey,
				OptArg:   *value,
				Cause:    err,
			}
		}
	}

	c.opts[storeKey] = append(c.opts[storeKey], *value)
	return nil
}

// collectUnmatched records an unknown option verbatim in accept-any mode and
// rejects it otherwise.
func (c *Cmd) collectUnmatched(reg *registry, name string, value *string) error {
	if !reg.acceptAny {
		return &errs.UnconfiguredOption{Option: name}
	}

	vals, ok := c.opts[name]
	if !ok {
		vals = []string{}
	}
	if value != nil {
		vals = append(vals, *value)
	}
	c.opts[name] = vals
	return nil
}

// seedDefaults records the configured default values of every option that
// was absent from input.
func (c *Cmd) seedDefaults(reg *registry) {
	for i := range reg.cfgs {
		cfg := &reg.cfgs[i]
		storeKey := cfg.resolvedStoreKey()
		if storeKey == "" || storeKey == anyOption {
			continue
		}
		if _, present := c.opts[storeKey]; present {
			continue
		}
		if cfg.Defaults == nil {
			continue
		}
		vals := make([]string, len(cfg.Defaults))
		copy(vals, cfg.Defaults)
		c.opts[storeKey] = vals
	}
}
