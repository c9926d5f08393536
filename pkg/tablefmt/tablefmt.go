package tablefmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Row 两列表格的一行
type Row struct {
	Left  string
	Right string
}

// padRight 按显示宽度补空格
// len(s) 是字节宽度，runewidth.StringWidth(s) 才是终端上的显示宽度
func padRight(cond *runewidth.Condition, s string, width int) string {
	return s + strings.Repeat(" ", width-cond.StringWidth(s))
}

// FormatTwoColumns 左列按最大显示宽度对齐，中文等宽字符也能对齐
func FormatTwoColumns(leftTitle, rightTitle string, rows []Row) string {
	cond := runewidth.NewCondition()
	// 修正宽度判断(模糊字符按照宽度1计算)
	cond.EastAsianWidth = false

	maxWidth := cond.StringWidth(leftTitle)
	for _, r := range rows {
		if w := cond.StringWidth(r.Left); w > maxWidth {
			maxWidth = w
		}
	}

	out := make([]string, 0, len(rows)+2)
	header := padRight(cond, leftTitle, maxWidth) + "  |  " + rightTitle
	out = append(out, header)
	out = append(out, strings.Repeat("-", cond.StringWidth(header)))
	for _, r := range rows {
		out = append(out, padRight(cond, r.Left, maxWidth)+"  |  "+r.Right)
	}
	return strings.Join(out, "\n")
}
