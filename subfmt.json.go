package subfmt

import (
	"sort"
	"strings"

	"github.com/ohler55/ojg/oj"
	"go.uber.org/zap"
)

// jsonNull is the canonical null literal.
const jsonNull = "null"

// JSONFormatter renders a compiled structured template as one canonical
// JSON record per event, terminated by a newline. Object keys follow
// template declaration order unless WithSortKeys is set; sorting affects
// only the rendering, never the compiled plan or the evaluated value.
type JSONFormatter struct {
	inner    *StructFormatter
	sortKeys bool
	logger   *zap.Logger
}

// NewJSONFormatter compiles a structured template document for JSON
// rendering.
func NewJSONFormatter(doc *Document, opts ...Option) (*JSONFormatter, error) {
	cfg := newConfig(opts)

	inner, err := NewStructFormatter(doc, opts...)
	if err != nil {
		return nil, err
	}

	return &JSONFormatter{
		inner:    inner,
		sortKeys: cfg.sortKeys,
		logger:   cfg.logger,
	}, nil
}

// MustNewJSONFormatter compiles a structured template for JSON rendering
// and panics on error.
func MustNewJSONFormatter(doc *Document, opts ...Option) *JSONFormatter {
	f, err := NewJSONFormatter(doc, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Format evaluates the template against one event context and renders the
// result. Encoding failures degrade to a visible marker rather than
// aborting the caller; a well-formed template never fails at evaluation
// time.
func (f *JSONFormatter) Format(ctx Context) string {
	value := f.inner.Format(ctx)

	var out strings.Builder
	out.Grow(formatBufferHint)
	if err := writeJSON(&out, value, f.sortKeys); err != nil {
		f.logger.Warn(LogMsgRenderDegraded, zap.Error(err))
		return RenderErrorMarker + LineTerminator
	}
	return out.String() + LineTerminator
}

// writeJSON renders a Value tree. Scalar encoding (string escaping,
// number formatting) goes through ojg; object and list composition is done
// here because insertion-ordered object emission is not expressible
// through a map-based encoder.
func writeJSON(out *strings.Builder, v Value, sortKeys bool) error {
	switch v.Kind() {
	case ValueKindNull:
		out.WriteString(jsonNull)
		return nil

	case ValueKindObject:
		fields := v.Fields()
		if sortKeys {
			sorted := make([]Field, len(fields))
			copy(sorted, fields)
			sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
			fields = sorted
		}

		out.WriteByte('{')
		for i, field := range fields {
			if i > 0 {
				out.WriteByte(',')
			}
			if err := writeScalar(out, field.Key); err != nil {
				return err
			}
			out.WriteByte(':')
			if err := writeJSON(out, field.Value, sortKeys); err != nil {
				return err
			}
		}
		out.WriteByte('}')
		return nil

	case ValueKindList:
		out.WriteByte('[')
		for i, item := range v.Items() {
			if i > 0 {
				out.WriteByte(',')
			}
			if err := writeJSON(out, item, sortKeys); err != nil {
				return err
			}
		}
		out.WriteByte(']')
		return nil

	default:
		return writeScalar(out, v.Interface())
	}
}

// writeScalar encodes one scalar through ojg.
func writeScalar(out *strings.Builder, v any) error {
	encoded, err := oj.Marshal(v)
	if err != nil {
		return err
	}
	out.Write(encoded)
	return nil
}
