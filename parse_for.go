package optkit

// OptStore binds parsing to a caller-defined struct. OptCfgs supplies the
// option configurations, typically one per field, and FillOpts receives the
// parsed value mapping once classification succeeded so the store can convert
// the raw strings into its field types; util.ConvertString covers the common
// conversions. FillOpts must treat the mapping as read-only.
type OptStore interface {
	OptCfgs() []OptCfg
	FillOpts(opts map[string][]string) error
}

// ParseFor classifies the command line against the store's configurations and
// fills the store from the result. Parse errors and conversion errors from
// FillOpts are returned as is.
func (c *Cmd) ParseFor(store OptStore) error {
	if err := c.ParseWith(store.OptCfgs()); err != nil {
		return err
	}
	return store.FillOpts(c.opts)
}

// ParseForUntilSubCmd parses for the store up to the first command argument
// and returns the remainder as a new Cmd, or nil when the command line holds
// options only. The store is filled from the prefix before the sub-command.
func (c *Cmd) ParseForUntilSubCmd(store OptStore) (*Cmd, error) {
	sub, err := c.ParseWithUntilSubCmd(store.OptCfgs())
	if err != nil {
		return nil, err
	}
	if err := store.FillOpts(c.opts); err != nil {
		return nil, err
	}
	return sub, nil
}
