package subfmt

import (
	"strings"

	"go.uber.org/zap"
)

// structNodeKind identifies the variant held by a compiled structured
// node.
type structNodeKind int

const (
	structNodeLeaf structNodeKind = iota
	structNodeObject
	structNodeList
)

// structField is one compiled key/node pair of an object node.
type structField struct {
	key  string
	node structNode
}

// structNode is the compiled mirror of a Document node: scalars are
// replaced by flat plans, maps and lists by recursively compiled children.
type structNode struct {
	kind   structNodeKind
	plan   Plan
	fields []structField
	items  []structNode
}

// StructFormatter evaluates a compiled structured template into a Value
// tree, once per event. It is immutable after construction and safe for
// unbounded concurrent use.
type StructFormatter struct {
	root          structNode
	preserveTypes bool
	omitEmpty     bool
	emptyValue    string
}

// NewStructFormatter compiles a structured template document. String
// leaves compile through Parse with the same resolver chain; number leaves
// compile into single plain-number plans; maps and lists recurse with
// order preserved.
func NewStructFormatter(doc *Document, opts ...Option) (*StructFormatter, error) {
	cfg := newConfig(opts)

	if doc == nil {
		return nil, NewNilDocumentError()
	}

	root, err := compileNode(doc, cfg)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug(LogMsgDocumentCompiled, zap.String(LogFieldKind, doc.Kind().String()))
	return &StructFormatter{
		root:          root,
		preserveTypes: cfg.preserveTypes,
		omitEmpty:     cfg.omitEmpty,
		emptyValue:    cfg.placeholder(),
	}, nil
}

// MustNewStructFormatter compiles a structured template and panics on
// error.
func MustNewStructFormatter(doc *Document, opts ...Option) *StructFormatter {
	f, err := NewStructFormatter(doc, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// compileNode recursively compiles one document node.
func compileNode(doc *Document, cfg *config) (structNode, error) {
	switch doc.kind {
	case DocumentKindString:
		plan, err := parseWithConfig(doc.str, cfg)
		if err != nil {
			return structNode{}, err
		}
		return structNode{kind: structNodeLeaf, plan: plan}, nil

	case DocumentKindNumber:
		return structNode{
			kind: structNodeLeaf,
			plan: Plan{NewPlainNumberProvider(doc.num)},
		}, nil

	case DocumentKindMap:
		fields := make([]structField, 0, len(doc.fields))
		for _, f := range doc.fields {
			child, err := compileNode(f.Value, cfg)
			if err != nil {
				return structNode{}, err
			}
			fields = append(fields, structField{key: f.Key, node: child})
		}
		return structNode{kind: structNodeObject, fields: fields}, nil

	case DocumentKindList:
		items := make([]structNode, 0, len(doc.items))
		for _, item := range doc.items {
			child, err := compileNode(item, cfg)
			if err != nil {
				return structNode{}, err
			}
			items = append(items, child)
		}
		return structNode{kind: structNodeList, items: items}, nil

	default:
		return structNode{}, NewDocumentKindError(doc.kind.String())
	}
}

// Format evaluates the compiled tree against one event context.
func (f *StructFormatter) Format(ctx Context) Value {
	return f.evalNode(f.root, ctx)
}

// evalNode walks the compiled tree bottom-up, applying the empty-omission
// and type-preservation rules.
func (f *StructFormatter) evalNode(n structNode, ctx Context) Value {
	switch n.kind {
	case structNodeObject:
		fields := make([]Field, 0, len(n.fields))
		for _, fl := range n.fields {
			v := f.evalNode(fl.node, ctx)
			if f.omitEmpty && v.IsNull() {
				continue
			}
			fields = append(fields, Field{Key: fl.key, Value: v})
		}
		// An emptied map collapses to null so empty nested structures
		// vanish upward instead of appearing as empty objects.
		if f.omitEmpty && len(fields) == 0 {
			return NullValue()
		}
		return ObjectValue(fields)

	case structNodeList:
		items := make([]Value, 0, len(n.items))
		for _, item := range n.items {
			v := f.evalNode(item, ctx)
			if f.omitEmpty && v.IsNull() {
				continue
			}
			items = append(items, v)
		}
		// Lists never collapse: an all-empty list stays an empty list.
		return ListValue(items)

	default:
		return f.evalPlan(n.plan, ctx)
	}
}

// evalPlan evaluates one scalar leaf. Type preservation only applies to a
// single atomic source; concatenation is inherently textual, so
// multi-provider leaves are always forced to a string.
func (f *StructFormatter) evalPlan(plan Plan, ctx Context) Value {
	if len(plan) == 1 {
		p := plan[0]

		if f.preserveTypes {
			return providerValue(p, ctx)
		}

		s, ok := p.FormatText(ctx)
		if !ok {
			if f.omitEmpty {
				return NullValue()
			}
			s = f.emptyValue
		}
		return StringValue(s)
	}

	var out strings.Builder
	for _, p := range plan {
		if s, ok := p.FormatText(ctx); ok {
			out.WriteString(s)
		} else {
			out.WriteString(f.emptyValue)
		}
	}
	return StringValue(out.String())
}

// providerValue extracts a typed value from a provider, falling back to
// the text capability for providers that only implement one.
func providerValue(p Provider, ctx Context) Value {
	if vp, ok := p.(ValueProvider); ok {
		return vp.FormatValue(ctx)
	}
	if s, ok := p.FormatText(ctx); ok {
		return StringValue(s)
	}
	return NullValue()
}
