package decl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partite-ai/enumdef/enum"
	"github.com/partite-ai/enumdef/testutil/enummatcher"
)

func buildDoc(t *testing.T, src string) (*Set, error) {
	t.Helper()
	doc, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	return doc.Build()
}

func TestDocumentBuild(t *testing.T) {
	set, err := buildDoc(t, `
enums:
  - name: Color
    members:
      - name: red
        number: 1
      - name: green
        number: 2
      - name: crimson
        ref: red
  - name: Status
    auto: number
    members:
      - name: pending
      - name: active
      - name: closed
        number: 10
      - name: archived
  - name: Feature
    members:
      - name: enabled
        bool: true
      - name: label
        string: flags
      - name: capacity
        bigint: "9007199254740993"
      - name: marker
        symbol: internal marker
`)
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())

	color, ok := set.Get("Color")
	require.True(t, ok)
	require.NoError(t, enummatcher.MatchObject().
		WithName("Color").
		WithMembers(
			enum.Member{Name: enum.Name("red"), Value: enum.Number(1)},
			enum.Member{Name: enum.Name("green"), Value: enum.Number(2)},
			enum.Member{Name: enum.Name("crimson"), Value: enum.Number(1)},
		).
		WithKeyOf(enum.Number(1), enum.Name("red")).
		Match(color))

	status, ok := set.Get("Status")
	require.True(t, ok)
	require.NoError(t, enummatcher.MatchObject().
		WithMembers(
			enum.Member{Name: enum.Name("pending"), Value: enum.Number(0)},
			enum.Member{Name: enum.Name("active"), Value: enum.Number(1)},
			enum.Member{Name: enum.Name("closed"), Value: enum.Number(10)},
			enum.Member{Name: enum.Name("archived"), Value: enum.Number(11)},
		).
		Match(status))

	feature, ok := set.Get("Feature")
	require.True(t, ok)
	capacity, ok := feature.Value(enum.Name("capacity"))
	require.True(t, ok)
	big, err := enum.ParseBigInt("9007199254740993")
	require.NoError(t, err)
	assert.True(t, enum.Equal(capacity, big))

	marker, ok := feature.Value(enum.Name("marker"))
	require.True(t, ok)
	sym, isSym := marker.(*enum.Symbol)
	require.True(t, isSym)
	assert.Equal(t, "internal marker", sym.Description())

	var order []string
	for obj := range set.All() {
		order = append(order, obj.Name())
	}
	assert.Equal(t, []string{"Color", "Status", "Feature"}, order)
}

func TestDocumentBuildDuplicateEnum(t *testing.T) {
	_, err := buildDoc(t, `
enums:
  - name: Color
    members:
      - name: red
        number: 1
  - name: Color
    members:
      - name: blue
        number: 2
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate enum Color")
}

func TestDocumentBuildUnknownAutoPolicy(t *testing.T) {
	_, err := buildDoc(t, `
enums:
  - name: Color
    auto: fibonacci
    members:
      - name: red
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown auto policy "fibonacci"`)
}

func TestDocumentBuildMultipleValueForms(t *testing.T) {
	_, err := buildDoc(t, `
enums:
  - name: Color
    members:
      - name: red
        number: 1
        string: also red
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one value form")
}

func TestDocumentBuildSurfacesBuilderErrors(t *testing.T) {
	t.Run("duplicate member", func(t *testing.T) {
		_, err := buildDoc(t, `
enums:
  - name: Color
    members:
      - name: red
        number: 1
      - name: red
        number: 2
`)
		var dup *enum.DuplicateMemberError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "Color", dup.Enum)
	})

	t.Run("forward reference", func(t *testing.T) {
		_, err := buildDoc(t, `
enums:
  - name: Color
    members:
      - name: crimson
        ref: red
      - name: red
        number: 1
`)
		var invalid *enum.InvalidMemberValueError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("bare member without auto policy", func(t *testing.T) {
		_, err := buildDoc(t, `
enums:
  - name: Color
    members:
      - name: red
`)
		var mapper *enum.MapperInvocationError
		require.ErrorAs(t, err, &mapper)
	})

	t.Run("invalid bigint literal", func(t *testing.T) {
		_, err := buildDoc(t, `
enums:
  - name: Color
    members:
      - name: red
        bigint: "xyz"
`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid bigint literal")
	})
}
