package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const template = `<div class="flex p-4">
  <span
    id="x"
    CLASS="text-sm font-bold"></span>
  <img class="w-4 h-4"/>
  <p class="mt-2 <%= active ? 'bg-red-500' : '' %> px-2">x</p>
</div>
`

func TestClassAttributes(t *testing.T) {
	attrs, err := ClassAttributes(strings.NewReader(template))
	require.Nil(t, err)
	require.Len(t, attrs, 4)

	lines := []int{}
	for _, a := range attrs {
		lines = append(lines, a.Line)
	}
	require.Equal(t, []int{1, 2, 5, 6}, lines)

	require.Equal(t, "flex p-4", attrs[0].Value)
	require.Equal(t, "text-sm font-bold", attrs[1].Value)
	require.Equal(t, "w-4 h-4", attrs[2].Value)
	require.False(t, attrs[2].Dynamic)
}

func TestClassAttributesDynamic(t *testing.T) {
	attrs, err := ClassAttributes(strings.NewReader(template))
	require.Nil(t, err)
	require.True(t, attrs[3].Dynamic)
	require.Equal(t, []string{"mt-2", "px-2"}, strings.Fields(attrs[3].Value))
}

func TestClassAttributesEmpty(t *testing.T) {
	attrs, err := ClassAttributes(strings.NewReader("<% if x %>plain text<% end %>"))
	require.Nil(t, err)
	require.Empty(t, attrs)
}
