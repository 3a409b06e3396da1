package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/sghaida/poo/holder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{
		Level:     log.DebugLevel,
		Formatter: log.JSONFormatter,
	})
}

func TestRun_AllWalkthroughsSucceed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, run(newTestLogger(&buf)))

	out := buf.String()
	assert.Contains(t, out, `"msg":"caught expected error"`)
	assert.Contains(t, out, `"msg":"user registered"`)
	assert.Contains(t, out, `"msg":"registration rejected"`)
	assert.Contains(t, out, `"msg":"--- end of study ---"`)
}

func TestWalkthroughs_Individually(t *testing.T) {
	t.Parallel()

	steps := map[string]func(*log.Logger) error{
		"class attributes": classAttributes,
		"encapsulation":    encapsulation,
		"visibility":       visibility,
		"registration":     registration,
	}
	for name, fn := range steps {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, fn(newTestLogger(&buf)))
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestExpectInvalid(t *testing.T) {
	t.Parallel()

	other := errors.New("disk on fire")

	cases := []struct {
		name string
		in   error
		want error
	}{
		{name: "invalid argument is expected", in: holder.Invalid("bad", ""), want: nil},
		{name: "success is unexpected", in: nil, want: errUnexpectedSuccess},
		{name: "other errors pass through", in: other, want: other},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := expectInvalid(tc.in)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}
}
