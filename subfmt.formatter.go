package subfmt

import "strings"

// Formatter evaluates one compiled format plan into flat text, once per
// event. It is immutable after construction and safe for unbounded
// concurrent use; every call allocates only its own output buffer.
type Formatter struct {
	plan       Plan
	emptyValue string
}

// NewFormatter compiles a format string into a Formatter.
func NewFormatter(format string, opts ...Option) (*Formatter, error) {
	cfg := newConfig(opts)
	plan, err := parseWithConfig(format, cfg)
	if err != nil {
		return nil, err
	}
	return &Formatter{
		plan:       plan,
		emptyValue: cfg.placeholder(),
	}, nil
}

// MustNewFormatter compiles a format string and panics on error.
func MustNewFormatter(format string, opts ...Option) *Formatter {
	f, err := NewFormatter(format, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Format evaluates the plan against one event context. Providers that
// yield no value contribute the empty-value placeholder.
func (f *Formatter) Format(ctx Context) string {
	var out strings.Builder
	out.Grow(formatBufferHint)

	for _, p := range f.plan {
		if s, ok := p.FormatText(ctx); ok {
			out.WriteString(s)
		} else {
			out.WriteString(f.emptyValue)
		}
	}
	return out.String()
}

// Providers returns a copy of the compiled plan.
func (f *Formatter) Providers() Plan {
	out := make(Plan, len(f.plan))
	copy(out, f.plan)
	return out
}

// formatBufferHint pre-sizes the output buffer for typical log lines.
const formatBufferHint = 256
