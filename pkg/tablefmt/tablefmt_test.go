package tablefmt

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTwoColumns(t *testing.T) {
	out := FormatTwoColumns("key", "value", []Row{
		{Left: "a", Right: `{"a":"a"}`},
		{Left: "longer", Right: "1"},
	})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "key     |  value", lines[0])
	assert.Equal(t, strings.Repeat("-", len(lines[0])), lines[1])
	assert.Equal(t, `a       |  {"a":"a"}`, lines[2])
	assert.Equal(t, "longer  |  1", lines[3])
}

func TestFormatTwoColumnsWideChars(t *testing.T) {
	out := FormatTwoColumns("键", "值", []Row{
		{Left: "你好", Right: "1"},
		{Left: "ab", Right: "2"},
	})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	// 每一行分隔符前的显示宽度一致
	col := runewidth.StringWidth(strings.Split(lines[2], "|")[0])
	assert.Equal(t, col, runewidth.StringWidth(strings.Split(lines[0], "|")[0]))
	assert.Equal(t, col, runewidth.StringWidth(strings.Split(lines[3], "|")[0]))
}

func TestFormatTwoColumnsEmpty(t *testing.T) {
	out := FormatTwoColumns("key", "value", nil)
	assert.Equal(t, "key  |  value\n-------------", out)
}
