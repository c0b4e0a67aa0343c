package optkit

import (
	"path/filepath"

	"github.com/optkit/optkit/parse"
)

// Cmd is one command line to parse: the program or sub-command name plus its
// raw arguments. After one of the Parse methods has run, the accessors expose
// the collected command arguments and option values.
//
// Option values are kept per store key as a tri-state: an absent key means
// the option never appeared, a present key with no values means it appeared
// without an argument, and a present key with values holds the arguments in
// command-line order.
type Cmd struct {
	Name string

	raw  []string
	args []string
	opts map[string][]string
	cfgs []OptCfg
}

// FromSlice creates a Cmd from a full argument vector such as os.Args. The
// first element is the program path; its base name becomes the command name.
func FromSlice(osArgs []string) *Cmd {
	name := ""
	var raw []string
	if len(osArgs) > 0 {
		name = filepath.Base(osArgs[0])
		raw = osArgs[1:]
	}
	return New(name, raw)
}

// FromLine creates a Cmd by splitting a single command line into arguments
// with the platform's quoting rules.
func FromLine(line string) (*Cmd, error) {
	args, err := parse.Split(line)
	if err != nil {
		return nil, err
	}
	return FromSlice(args), nil
}

// New creates a Cmd with an explicit name and argument list, the arguments
// not including the name itself.
func New(name string, args []string) *Cmd {
	return &Cmd{
		Name: name,
		raw:  args,
		opts: make(map[string][]string),
	}
}

// Args returns the command arguments, in input order. Option names and the
// values they consumed are excluded; everything after a literal "--" is
// included verbatim.
func (c *Cmd) Args() []string {
	return c.args
}

// HasOpt reports whether the option was present on the command line or was
// seeded from its configured defaults.
func (c *Cmd) HasOpt(storeKey string) bool {
	_, ok := c.opts[storeKey]
	return ok
}

// OptArg returns the option's first value. ok is false when the option is
// absent or appeared without a value.
func (c *Cmd) OptArg(storeKey string) (string, bool) {
	vals := c.opts[storeKey]
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// OptArgs returns all values of the option in command-line order. It returns
// nil when the option is absent and an empty non-nil slice when it appeared
// without a value.
func (c *Cmd) OptArgs(storeKey string) []string {
	return c.opts[storeKey]
}

// OptCfgs returns the option configurations a ParseWith or ParseFor call was
// given, for callers that render help text from them.
func (c *Cmd) OptCfgs() []OptCfg {
	return c.cfgs
}

// subCmd creates the Cmd for the remainder of the argument list starting at
// the token which names the sub-command.
func (c *Cmd) subCmd(idx int) *Cmd {
	rest := c.raw[idx:]
	return New(rest[0], rest[1:])
}
