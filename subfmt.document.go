package subfmt

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// DocumentKind identifies the variant held by a Document node.
type DocumentKind int

// Document kind constants
const (
	DocumentKindString DocumentKind = iota
	DocumentKindNumber
	DocumentKindMap
	DocumentKindList
)

// Document kind string names for debugging
const (
	DocumentKindNameString = "STRING"
	DocumentKindNameNumber = "NUMBER"
	DocumentKindNameMap    = "MAP"
	DocumentKindNameList   = "LIST"
)

// String returns the string representation of the document kind.
func (k DocumentKind) String() string {
	switch k {
	case DocumentKindNumber:
		return DocumentKindNameNumber
	case DocumentKindMap:
		return DocumentKindNameMap
	case DocumentKindList:
		return DocumentKindNameList
	default:
		return DocumentKindNameString
	}
}

// DocumentField is one key/template pair of a map template. Field order is
// significant and preserved through compilation into the output.
type DocumentField struct {
	Key   string
	Value *Document
}

// Document is a structured template: a tree of maps, lists, format strings
// and literal numbers describing the shape of a structured record. String
// leaves use the %COMMAND% grammar; number leaves are taken literally. Any
// other leaf kind is rejected at compile time.
type Document struct {
	kind   DocumentKind
	str    string
	num    float64
	fields []DocumentField
	items  []*Document
}

// StringTemplate creates a format-string leaf.
func StringTemplate(format string) *Document {
	return &Document{kind: DocumentKindString, str: format}
}

// NumberTemplate creates a literal-number leaf.
func NumberTemplate(n float64) *Document {
	return &Document{kind: DocumentKindNumber, num: n}
}

// MapTemplate creates a map node. Field order is preserved end-to-end.
func MapTemplate(fields ...DocumentField) *Document {
	return &Document{kind: DocumentKindMap, fields: fields}
}

// ListTemplate creates a list node.
func ListTemplate(items ...*Document) *Document {
	return &Document{kind: DocumentKindList, items: items}
}

// F is a convenience constructor for a map template field.
func F(key string, value *Document) DocumentField {
	return DocumentField{Key: key, Value: value}
}

// Kind returns the variant held by the node.
func (d *Document) Kind() DocumentKind {
	return d.kind
}

// DocumentFromYAML decodes a YAML (or JSON) document into a structured
// template, preserving map key order. Scalar strings become format-string
// leaves and integers/floats become literal-number leaves; booleans, nulls
// and any other scalar kinds are compile-time errors.
func DocumentFromYAML(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, NewDocumentParseError(err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, NewDocumentParseError(nil)
	}
	return documentFromNode(root.Content[0])
}

// yamlTag constants for scalar classification
const (
	yamlTagStr   = "!!str"
	yamlTagInt   = "!!int"
	yamlTagFloat = "!!float"
)

// documentFromNode walks a decoded yaml.Node. The node API is used instead
// of plain unmarshaling because it is the only way to observe mapping key
// order, which determines output field order.
func documentFromNode(node *yaml.Node) (*Document, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return documentFromNode(node.Alias)

	case yaml.ScalarNode:
		switch node.Tag {
		case yamlTagStr:
			return StringTemplate(node.Value), nil
		case yamlTagInt, yamlTagFloat:
			n, err := strconv.ParseFloat(node.Value, 64)
			if err != nil {
				return nil, NewDocumentParseError(err)
			}
			return NumberTemplate(n), nil
		default:
			return nil, NewDocumentKindError(node.Tag)
		}

	case yaml.MappingNode:
		fields := make([]DocumentField, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			value, err := documentFromNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			fields = append(fields, DocumentField{Key: node.Content[i].Value, Value: value})
		}
		return MapTemplate(fields...), nil

	case yaml.SequenceNode:
		items := make([]*Document, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := documentFromNode(child)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return ListTemplate(items...), nil

	default:
		return nil, NewDocumentKindError(strconv.Itoa(int(node.Kind)))
	}
}
