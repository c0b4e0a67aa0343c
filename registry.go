package optkit

import (
	"github.com/optkit/optkit/errs"
	"github.com/optkit/optkit/types/orderedmap"
)

// registry indexes a configuration list by every matchable option name. It is
// built fresh for each parse call and discarded afterwards.
type registry struct {
	byName    *orderedmap.OrderedMap[string, *OptCfg]
	cfgs      []OptCfg
	acceptAny bool
}

// newRegistry validates the configuration list and indexes it. Store keys
// and option names must each be unique, and array-ness or defaults require
// HasArg. A configuration resolving to an empty store key is skipped; the
// store key "*" enables accept-any mode instead of being indexed.
func newRegistry(cfgs []OptCfg) (*registry, error) {
	r := &registry{
		byName: orderedmap.NewOrderedMap[string, *OptCfg](),
		cfgs:   cfgs,
	}

	storeKeys := make(map[string]struct{}, len(cfgs))

	for i := range cfgs {
		cfg := &cfgs[i]
		if cfg.err != nil {
			return nil, cfg.err
		}

		storeKey := cfg.resolvedStoreKey()
		if storeKey == "" {
			continue
		}
		if storeKey == anyOption {
			r.acceptAny = true
			continue
		}

		if _, dup := storeKeys[storeKey]; dup {
			return nil, &errs.DuplicateStoreKey{StoreKey: storeKey, Name: firstName(cfg, storeKey)}
		}
		storeKeys[storeKey] = struct{}{}

		if !cfg.HasArg {
			if cfg.IsArray {
				return nil, &errs.ConfigIsArrayButHasNoArg{StoreKey: storeKey}
			}
			if len(cfg.Defaults) > 0 {
				return nil, &errs.ConfigHasDefaultsButHasNoArg{StoreKey: storeKey}
			}
		}

		for _, name := range cfg.matchableNames() {
			if name == "" {
				continue
			}
			if _, taken := r.byName.Get(name); taken {
				return nil, &errs.DuplicateName{Name: name, StoreKey: storeKey}
			}
			r.byName.Set(name, cfg)
		}
	}

	return r, nil
}

func firstName(cfg *OptCfg, storeKey string) string {
	if len(cfg.Names) > 0 {
		return cfg.Names[0]
	}
	return storeKey
}

// find resolves a command-line option name to its configuration.
func (r *registry) find(name string) (*OptCfg, bool) {
	return r.byName.Get(name)
}

// takesArg reports whether the named option consumes the following token.
// Unknown names never do; in accept-any mode values attach through "=" only.
func (r *registry) takesArg(name string) bool {
	if cfg, ok := r.byName.Get(name); ok {
		return cfg.HasArg
	}
	return false
}
