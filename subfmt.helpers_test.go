package subfmt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testEvent is the opaque per-event context used across tests.
type testEvent struct {
	method  string
	path    string
	status  int
	headers map[string]string
}

// staticResolver claims exactly one command name and always produces the
// same literal.
type staticResolver struct {
	name string
	text string
}

func (r staticResolver) ResolveCommand(cmd Command) Provider {
	if cmd.Name != r.name {
		return nil
	}
	return NewPlainTextProvider(r.text)
}

// captureResolver records every command it is offered and claims the one
// matching name.
type captureResolver struct {
	name     string
	captured []Command
}

func (r *captureResolver) ResolveCommand(cmd Command) Provider {
	r.captured = append(r.captured, cmd)
	if cmd.Name != r.name {
		return nil
	}
	return NewPlainTextProvider(cmd.Name)
}

// newTestGeneric builds a generic resolver wired to testEvent fields.
func newTestGeneric(t *testing.T) *GenericResolver {
	t.Helper()
	g := NewGenericResolver()

	require.NoError(t, g.RegisterField("METHOD", func(ctx Context) (string, bool) {
		ev, ok := ctx.(*testEvent)
		if !ok || ev.method == "" {
			return "", false
		}
		return ev.method, true
	}))

	require.NoError(t, g.RegisterField("PATH", func(ctx Context) (string, bool) {
		ev, ok := ctx.(*testEvent)
		if !ok || ev.path == "" {
			return "", false
		}
		return ev.path, true
	}))

	require.NoError(t, g.RegisterValueField("STATUS", func(ctx Context) Value {
		ev, ok := ctx.(*testEvent)
		if !ok || ev.status == 0 {
			return NullValue()
		}
		return NumberValue(float64(ev.status))
	}))

	require.NoError(t, g.RegisterSubcommandField("HEADER", func(ctx Context, subcommand string) (string, bool) {
		ev, ok := ctx.(*testEvent)
		if !ok {
			return "", false
		}
		v, ok := ev.headers[subcommand]
		return v, ok
	}))

	return g
}
