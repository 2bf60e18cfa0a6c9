package subfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentFromYAML_Map(t *testing.T) {
	doc, err := DocumentFromYAML([]byte(`
zeta: "%METHOD%"
alpha: 42
mid:
  inner: "%PATH%"
`))
	require.NoError(t, err)
	require.Equal(t, DocumentKindMap, doc.Kind())

	// Declaration order survives decoding.
	require.Len(t, doc.fields, 3)
	assert.Equal(t, "zeta", doc.fields[0].Key)
	assert.Equal(t, "alpha", doc.fields[1].Key)
	assert.Equal(t, "mid", doc.fields[2].Key)

	assert.Equal(t, DocumentKindString, doc.fields[0].Value.Kind())
	assert.Equal(t, DocumentKindNumber, doc.fields[1].Value.Kind())
	assert.Equal(t, float64(42), doc.fields[1].Value.num)
	assert.Equal(t, DocumentKindMap, doc.fields[2].Value.Kind())
}

func TestDocumentFromYAML_List(t *testing.T) {
	doc, err := DocumentFromYAML([]byte(`["%A%", 1.5, ["%B%"]]`))
	require.NoError(t, err)
	require.Equal(t, DocumentKindList, doc.Kind())

	require.Len(t, doc.items, 3)
	assert.Equal(t, DocumentKindString, doc.items[0].Kind())
	assert.Equal(t, DocumentKindNumber, doc.items[1].Kind())
	assert.Equal(t, DocumentKindList, doc.items[2].Kind())
}

func TestDocumentFromYAML_JSONInput(t *testing.T) {
	// JSON is a YAML subset; structured templates arrive in either form.
	doc, err := DocumentFromYAML([]byte(`{"method": "%METHOD%", "code": 200}`))
	require.NoError(t, err)
	require.Equal(t, DocumentKindMap, doc.Kind())
	require.Len(t, doc.fields, 2)
	assert.Equal(t, "method", doc.fields[0].Key)
	assert.Equal(t, "code", doc.fields[1].Key)
}

func TestDocumentFromYAML_UnsupportedKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "boolean leaf", input: `{"flag": true}`},
		{name: "null leaf", input: `{"gone": null}`},
		{name: "top-level boolean", input: `true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DocumentFromYAML([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), ErrMsgUnsupportedKind)
		})
	}
}

func TestDocumentFromYAML_Invalid(t *testing.T) {
	_, err := DocumentFromYAML([]byte("{unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgDocumentInvalid)

	_, err = DocumentFromYAML([]byte(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgDocumentInvalid)
}

func TestDocumentConstructors(t *testing.T) {
	doc := MapTemplate(
		F("a", StringTemplate("%X%")),
		F("b", ListTemplate(NumberTemplate(1), StringTemplate("two"))),
	)

	require.Equal(t, DocumentKindMap, doc.Kind())
	require.Len(t, doc.fields, 2)
	assert.Equal(t, DocumentKindList, doc.fields[1].Value.Kind())
	assert.Len(t, doc.fields[1].Value.items, 2)
}
