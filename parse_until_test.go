package optkit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optkit/optkit/errs"
)

func TestParseUntilSubCmd(t *testing.T) {
	cmd := New("app", []string{"--verbose", "build", "--release"})

	sub, err := cmd.ParseUntilSubCmd()
	assert.NoError(t, err)
	assert.NotNil(t, sub)
	assert.Equal(t, "build", sub.Name)
	assert.True(t, cmd.HasOpt("verbose"))
	assert.Empty(t, cmd.Args(), "the splitter collects no command args of its own")

	assert.NoError(t, sub.Parse())
	assert.True(t, sub.HasOpt("release"))
}

func TestParseUntilSubCmdOptionsOnly(t *testing.T) {
	cmd := New("app", []string{"--help", "-v"})

	sub, err := cmd.ParseUntilSubCmd()
	assert.NoError(t, err)
	assert.Nil(t, sub)
	assert.True(t, cmd.HasOpt("help"))
}

func TestParseUntilSubCmdAfterTerminator(t *testing.T) {
	cmd := New("app", []string{"--", "--weird-name", "x"})

	sub, err := cmd.ParseUntilSubCmd()
	assert.NoError(t, err)
	assert.NotNil(t, sub)
	assert.Equal(t, "--weird-name", sub.Name,
		"after -- the next token names the sub-command verbatim")
	assert.Equal(t, []string{"x"}, sub.raw)
}

func TestParseWithUntilSubCmd(t *testing.T) {
	cmd := New("app", []string{"--verbose", "build", "--release"})
	cfgs := []OptCfg{NewOptCfg(WithNames("verbose"))}

	sub, err := cmd.ParseWithUntilSubCmd(cfgs)
	assert.NoError(t, err)
	assert.NotNil(t, sub)
	assert.Equal(t, "build", sub.Name)
	assert.True(t, cmd.HasOpt("verbose"))

	subCfgs := []OptCfg{NewOptCfg(WithNames("release"))}
	assert.NoError(t, sub.ParseWith(subCfgs))
	assert.True(t, sub.HasOpt("release"))
}

func TestParseWithUntilSubCmdRejectsUnconfigured(t *testing.T) {
	cmd := New("app", []string{"--unknown", "build"})
	cfgs := []OptCfg{NewOptCfg(WithNames("verbose"))}

	_, err := cmd.ParseWithUntilSubCmd(cfgs)
	var uo *errs.UnconfiguredOption
	assert.True(t, errors.As(err, &uo))
}

func TestParseWithUntilSubCmdSeedsDefaults(t *testing.T) {
	cmd := New("app", []string{"build"})
	cfgs := []OptCfg{NewOptCfg(WithNames("lang"), WithDefaults("en"))}

	sub, err := cmd.ParseWithUntilSubCmd(cfgs)
	assert.NoError(t, err)
	assert.NotNil(t, sub)
	assert.Equal(t, []string{"en"}, cmd.OptArgs("lang"))
}

func TestParseUntilSubCmdValueOfPrecedingOption(t *testing.T) {
	cmd := New("app", []string{"--out", "build", "clean"})
	cfgs := []OptCfg{NewOptCfg(WithNames("out"), WithHasArg())}

	sub, err := cmd.ParseWithUntilSubCmd(cfgs)
	assert.NoError(t, err)
	assert.NotNil(t, sub)
	assert.Equal(t, "clean", sub.Name, "a consumed option value is not a sub-command")
	out, _ := cmd.OptArg("out")
	assert.Equal(t, "build", out)
}
