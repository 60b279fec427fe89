package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valuesOfKind(values []Value, kind Kind) []Value {
	var out []Value
	for _, v := range values {
		if v.Kind == kind {
			out = append(out, v)
		}
	}
	return out
}

func TestExtract_ButtonScenario(t *testing.T) {
	text := `.button { background: #0066CC; padding: 16px; font-size: 14px; }`
	values := Extract(text)
	require.Len(t, values, 3)

	colors := valuesOfKind(values, KindColor)
	require.Len(t, colors, 1)
	assert.Equal(t, "#0066CC", colors[0].Literal)
	assert.Empty(t, colors[0].Property)

	spacing := valuesOfKind(values, KindSpacing)
	require.Len(t, spacing, 1)
	assert.Equal(t, "16px", spacing[0].Literal)
	assert.Equal(t, "padding", spacing[0].Property)

	sizes := valuesOfKind(values, KindFontSize)
	require.Len(t, sizes, 1)
	assert.Equal(t, "14px", sizes[0].Literal)
	assert.Equal(t, "font-size", sizes[0].Property)
}

func TestExtract_BareHexOutsideDeclaration(t *testing.T) {
	// Color extraction is property-agnostic: a hex in a comment or variable
	// still counts.
	values := Extract(`const brand = "#2D6FDB";`)
	require.Len(t, values, 1)
	assert.Equal(t, KindColor, values[0].Kind)
	assert.Equal(t, "#2D6FDB", values[0].Literal)
}

func TestExtract_RGBCalls(t *testing.T) {
	values := Extract(`color: rgb(0, 102, 204); border-color: rgba(0,0,0,0.25);`)
	colors := valuesOfKind(values, KindColor)
	require.Len(t, colors, 2)
	assert.Equal(t, "rgb(0, 102, 204)", colors[0].Literal)
	assert.Equal(t, "rgba(0,0,0,0.25)", colors[1].Literal)
}

func TestExtract_ShorthandHex(t *testing.T) {
	values := Extract(`background: #fff;`)
	require.Len(t, values, 1)
	assert.Equal(t, "#fff", values[0].Literal)
}

func TestExtract_SpacingProperties(t *testing.T) {
	text := `
.card {
  margin: 8px;
  gap: 1.5rem;
  width: 320px;
}
`
	values := Extract(text)
	spacing := valuesOfKind(values, KindSpacing)
	require.Len(t, spacing, 3)
	assert.Equal(t, "margin", spacing[0].Property)
	assert.Equal(t, "8px", spacing[0].Literal)
	assert.Equal(t, 3, spacing[0].Line)
	assert.Equal(t, "gap", spacing[1].Property)
	assert.Equal(t, "1.5rem", spacing[1].Literal)
	assert.Equal(t, "width", spacing[2].Property)
}

func TestExtract_SpacingRequiresProperty(t *testing.T) {
	// A bare "16px" not bound to a spacing property is not extracted;
	// only the color rule is property-agnostic.
	values := Extract(`the gap was 16px wide`)
	assert.Empty(t, values)
}

func TestExtract_FontWeight(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{`font-weight: 600;`, "600"},
		{`font-weight: bold;`, "bold"},
		{`font-weight: normal;`, "normal"},
	}
	for _, tt := range tests {
		values := Extract(tt.text)
		require.Len(t, values, 1, tt.text)
		assert.Equal(t, KindFontWeight, values[0].Kind)
		assert.Equal(t, tt.want, values[0].Literal)
	}
}

func TestExtract_FontFamilyToStatementEnd(t *testing.T) {
	values := Extract(`font-family: "Inter", -apple-system, sans-serif; color: #000;`)
	families := valuesOfKind(values, KindFontFamily)
	require.Len(t, families, 1)
	assert.Equal(t, `"Inter", -apple-system, sans-serif`, families[0].Literal)
}

func TestExtract_BorderRadiusAndShadow(t *testing.T) {
	text := `border-radius: 4px; box-shadow: 0 1px 3px rgba(0,0,0,0.12);`
	values := Extract(text)

	radius := valuesOfKind(values, KindBorderRadius)
	require.Len(t, radius, 1)
	assert.Equal(t, "4px", radius[0].Literal)

	shadows := valuesOfKind(values, KindShadow)
	require.Len(t, shadows, 1)
	assert.Equal(t, "0 1px 3px rgba(0,0,0,0.12)", shadows[0].Literal)

	// The rgba inside the shadow is also a color literal in its own right.
	colors := valuesOfKind(values, KindColor)
	require.Len(t, colors, 1)
	assert.Equal(t, "rgba(0,0,0,0.12)", colors[0].Literal)
}

func TestExtract_NoDoubleTagging(t *testing.T) {
	// The same literal never appears under two different kinds.
	values := Extract(`padding: 16px; font-size: 16px;`)
	require.Len(t, values, 1)
	assert.Equal(t, KindSpacing, values[0].Kind)
	assert.Equal(t, "16px", values[0].Literal)
}

func TestExtract_RepeatedLiteralSameKind(t *testing.T) {
	values := Extract(`padding: 8px; margin: 8px;`)
	spacing := valuesOfKind(values, KindSpacing)
	require.Len(t, spacing, 2)
	assert.Equal(t, "padding", spacing[0].Property)
	assert.Equal(t, "margin", spacing[1].Property)
}

func TestExtract_Empty(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("no styles here"))
}

func TestKindCategory(t *testing.T) {
	assert.Equal(t, "color", KindColor.Category())
	assert.Equal(t, "spacing", KindSpacing.Category())
	assert.Equal(t, "typography", KindFontSize.Category())
	assert.Equal(t, "typography", KindFontWeight.Category())
	assert.Equal(t, "typography", KindFontFamily.Category())
	assert.Equal(t, "border", KindBorderRadius.Category())
	assert.Equal(t, "shadow", KindShadow.Category())
	assert.Equal(t, "", KindUnknown.Category())
}
