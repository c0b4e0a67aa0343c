package optkit

import "github.com/optkit/optkit/parse"

// Parse classifies the command line without any option configuration. Every
// option-shaped token is accepted verbatim under its own name: an inline
// "=value" is recorded as the option's value, any other option is recorded
// as present without one. Command arguments are collected in order.
func (c *Cmd) Parse() error {
	return parse.Scan(parse.NewState(c.raw), c.verbatimHandlers())
}

// ParseUntilSubCmd classifies options up to the first command argument and
// returns that argument and everything after it as a new Cmd, its name being
// the first remaining token. It returns nil when the command line holds
// options only.
func (c *Cmd) ParseUntilSubCmd() (*Cmd, error) {
	idx, err := parse.ScanUntilArg(parse.NewState(c.raw), c.verbatimHandlers())
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, nil
	}
	return c.subCmd(idx), nil
}

// verbatimHandlers collect options without consulting a configuration set.
// Repeated options accumulate their values.
func (c *Cmd) verbatimHandlers() parse.Handlers {
	return parse.Handlers{
		Arg: func(arg string) error {
			c.args = append(c.args, arg)
			return nil
		},
		Opt: func(name string, value *string) error {
			vals, ok := c.opts[name]
			if !ok {
				vals = []string{}
			}
			if value != nil {
				vals = append(vals, *value)
			}
			c.opts[name] = vals
			return nil
		},
	}
}
