package optkit

import (
	"github.com/ef-ds/deque"
	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/optkit/optkit/errs"
)

// CommandFunc is the callback run for a routed sub-command after its own
// arguments have been parsed.
type CommandFunc func(cmd *Cmd) error

// Command pairs a sub-command name with the option configurations its
// arguments are parsed with and the callback to run.
type Command struct {
	Name string
	Desc string
	Cfgs []OptCfg
	Run  CommandFunc
}

// Router dispatches a command line across nested parsers: the top-level
// options are parsed with the router's own configurations, the first command
// argument selects a registered sub-command, and the remainder is parsed with
// that sub-command's configurations. Callbacks are queued by Route and run in
// routing order by ExecuteCommands.
type Router struct {
	cfgs       []OptCfg
	commands   *orderedmap.OrderedMap
	queue      *deque.Deque
	execErrors map[string]error
}

// NewRouter creates a Router whose top-level options are described by cfgs.
func NewRouter(cfgs ...OptCfg) *Router {
	return &Router{
		cfgs:       cfgs,
		commands:   orderedmap.New(),
		queue:      deque.New(),
		execErrors: make(map[string]error),
	}
}

// Register adds a sub-command. Registering the same name twice replaces the
// earlier command.
func (r *Router) Register(cmd Command) {
	r.commands.Set(cmd.Name, cmd)
}

// Commands returns the registered sub-commands in registration order, for
// callers that render help text from them.
func (r *Router) Commands() []Command {
	out := make([]Command, 0, r.commands.Len())
	for pair := r.commands.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value.(Command))
	}
	return out
}

// Route parses the top-level options of c, resolves the sub-command named by
// the first command argument and parses the remainder with that command's
// configurations. The resolved sub-command's callback is queued for
// ExecuteCommands. Route returns the sub-command's Cmd, or nil when the
// command line holds top-level options only.
func (r *Router) Route(c *Cmd) (*Cmd, error) {
	sub, err := c.ParseWithUntilSubCmd(r.cfgs)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}

	v, ok := r.commands.Get(sub.Name)
	if !ok {
		return nil, &errs.UnknownSubCommand{Name: sub.Name}
	}
	command := v.(Command)

	if err := sub.ParseWith(command.Cfgs); err != nil {
		return nil, err
	}
	if command.Run != nil {
		r.queue.PushBack(queuedCommand{command: command, cmd: sub})
	}

	return sub, nil
}

type queuedCommand struct {
	command Command
	cmd     *Cmd
}

// ExecuteCommands runs the queued callbacks in the order their commands were
// routed and returns the number of callbacks that failed. Failures do not
// stop the remaining callbacks; each error is retrievable afterwards through
// CommandExecutionError.
func (r *Router) ExecuteCommands() int {
	failed := 0
	for {
		v, ok := r.queue.PopFront()
		if !ok {
			break
		}
		q := v.(queuedCommand)
		if err := q.command.Run(q.cmd); err != nil {
			r.execErrors[q.command.Name] = err
			failed++
		}
	}
	return failed
}

// CommandExecutionError returns the error a sub-command callback failed
// with, or nil.
func (r *Router) CommandExecutionError(name string) error {
	return r.execErrors[name]
}
