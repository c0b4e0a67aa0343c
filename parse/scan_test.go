package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optkit/optkit/errs"
)

type recorder struct {
	args []string
	opts []string
}

// handlers renders each classified option as "name" or "name=value" so tests
// can assert on the exact dispatch sequence.
func (r *recorder) handlers(takesArg func(string) bool) Handlers {
	return Handlers{
		Arg: func(arg string) error {
			r.args = append(r.args, arg)
			return nil
		},
		Opt: func(name string, value *string) error {
			if value == nil {
				r.opts = append(r.opts, name)
			} else {
				r.opts = append(r.opts, name+"="+*value)
			}
			return nil
		},
		TakesArg: takesArg,
	}
}

func TestScanNoArgs(t *testing.T) {
	r := &recorder{}
	err := Scan(NewState(nil), r.handlers(nil))

	assert.NoError(t, err)
	assert.Empty(t, r.args)
	assert.Empty(t, r.opts)
}

func TestScanCommandArgsOnly(t *testing.T) {
	r := &recorder{}
	err := Scan(NewState([]string{"abc", "def", "ghi"}), r.handlers(nil))

	assert.NoError(t, err)
	assert.Equal(t, []string{"abc", "def", "ghi"}, r.args)
	assert.Empty(t, r.opts)
}

func TestScanLongOptions(t *testing.T) {
	r := &recorder{}
	err := Scan(NewState([]string{"--foo-bar", "--baz=qux", "abc"}), r.handlers(nil))

	assert.NoError(t, err)
	assert.Equal(t, []string{"abc"}, r.args)
	assert.Equal(t, []string{"foo-bar", "baz=qux"}, r.opts)
}

func TestScanLongOptionWithEmptyInlineValue(t *testing.T) {
	r := &recorder{}
	err := Scan(NewState([]string{"--foo="}), r.handlers(nil))

	assert.NoError(t, err)
	assert.Equal(t, []string{"foo="}, r.opts)
}

func TestScanLongOptionTakesNextToken(t *testing.T) {
	r := &recorder{}
	takes := func(name string) bool { return name == "baz" }
	err := Scan(NewState([]string{"--baz", "1", "--foo", "abc"}), r.handlers(takes))

	assert.NoError(t, err)
	assert.Equal(t, []string{"baz=1", "foo"}, r.opts)
	assert.Equal(t, []string{"abc"}, r.args)
}

func TestScanLongOptionTakesArgAtEndOfStream(t *testing.T) {
	r := &recorder{}
	takes := func(name string) bool { return true }
	err := Scan(NewState([]string{"--baz"}), r.handlers(takes))

	assert.NoError(t, err)
	assert.Equal(t, []string{"baz"}, r.opts, "no next token to consume, dispatched valueless")
}

func TestScanShortOptionBundle(t *testing.T) {
	r := &recorder{}
	err := Scan(NewState([]string{"-xyz=3", "fuga"}), r.handlers(nil))

	assert.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z=3"}, r.opts)
	assert.Equal(t, []string{"fuga"}, r.args)
}

func TestScanShortOptionTakesNextToken(t *testing.T) {
	r := &recorder{}
	takes := func(name string) bool { return name == "z" }
	err := Scan(NewState([]string{"-xz", "3"}), r.handlers(takes))

	assert.NoError(t, err)
	assert.Equal(t, []string{"x", "z=3"}, r.opts)
	assert.Empty(t, r.args)
}

func TestScanShortOptionWithEmptyInlineValue(t *testing.T) {
	r := &recorder{}
	err := Scan(NewState([]string{"-a="}), r.handlers(nil))

	assert.NoError(t, err)
	assert.Equal(t, []string{"a="}, r.opts)
}

func TestScanBareHyphenIsCommandArg(t *testing.T) {
	r := &recorder{}
	err := Scan(NewState([]string{"-", "abc"}), r.handlers(nil))

	assert.NoError(t, err)
	assert.Equal(t, []string{"-", "abc"}, r.args)
	assert.Empty(t, r.opts)
}

func TestScanDoubleHyphenEndsOptions(t *testing.T) {
	r := &recorder{}
	err := Scan(NewState([]string{"--foo", "--", "--bar", "-x", "--", "abc"}), r.handlers(nil))

	assert.NoError(t, err)
	assert.Equal(t, []string{"foo"}, r.opts)
	assert.Equal(t, []string{"--bar", "-x", "--", "abc"}, r.args,
		"a second -- after the terminator is a literal argument")
}

func TestScanInvalidLongOptionReportsBody(t *testing.T) {
	cases := []struct {
		token  string
		option string
	}{
		{"--1abc", "1abc"},
		{"---aaa=123", "-aaa=123"},
		{"--a#b", "a#b"},
	}

	for _, c := range cases {
		r := &recorder{}
		err := Scan(NewState([]string{c.token}), r.handlers(nil))

		var ice *errs.OptionContainsInvalidChar
		assert.True(t, errors.As(err, &ice), "token %q", c.token)
		assert.Equal(t, c.option, ice.Option)
	}
}

func TestScanInvalidShortOptionReportsSingleChar(t *testing.T) {
	r := &recorder{}
	err := Scan(NewState([]string{"-a@b"}), r.handlers(nil))

	var ice *errs.OptionContainsInvalidChar
	assert.True(t, errors.As(err, &ice))
	assert.Equal(t, "@", ice.Option)
	assert.Equal(t, []string{"a"}, r.opts, "names before the bad character were already dispatched")
}

func TestScanDigitShortOptionIsInvalid(t *testing.T) {
	r := &recorder{}
	err := Scan(NewState([]string{"-1"}), r.handlers(nil))

	var ice *errs.OptionContainsInvalidChar
	assert.True(t, errors.As(err, &ice))
	assert.Equal(t, "1", ice.Option)
}

func TestScanUnderscoreAllowedAfterFirstChar(t *testing.T) {
	r := &recorder{}
	err := Scan(NewState([]string{"--foo_bar=1"}), r.handlers(nil))

	assert.NoError(t, err)
	assert.Equal(t, []string{"foo_bar=1"}, r.opts)
}

func TestScanHandlerErrorAbortsScan(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	h := Handlers{
		Arg: func(string) error { return nil },
		Opt: func(string, *string) error {
			calls++
			return boom
		},
	}
	err := Scan(NewState([]string{"--foo", "--bar"}), h)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestScanUntilArgStopsAtFirstCommandArg(t *testing.T) {
	r := &recorder{}
	idx, err := ScanUntilArg(NewState([]string{"--verbose", "build", "--release"}), r.handlers(nil))

	assert.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, []string{"verbose"}, r.opts)
	assert.Empty(t, r.args)
}

func TestScanUntilArgOptionsOnly(t *testing.T) {
	r := &recorder{}
	idx, err := ScanUntilArg(NewState([]string{"--help", "-v"}), r.handlers(nil))

	assert.NoError(t, err)
	assert.Equal(t, -1, idx)
}

func TestScanUntilArgBareHyphenSplits(t *testing.T) {
	r := &recorder{}
	idx, err := ScanUntilArg(NewState([]string{"--foo", "-", "rest"}), r.handlers(nil))

	assert.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestScanUntilArgAfterTerminator(t *testing.T) {
	r := &recorder{}
	idx, err := ScanUntilArg(NewState([]string{"--foo", "--", "--bar"}), r.handlers(nil))

	assert.NoError(t, err)
	assert.Equal(t, 2, idx, "first token after -- splits even when option-shaped")
}
