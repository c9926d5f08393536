package seqcmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"

	"seq_tool/pkg/jsonseq"
)

// BashFormatter 输出可以直接 eval 的 declare 语句
// eval -- "$(seqtool first -s '[1,2]' -t sh -v first)"
type BashFormatter struct{}

func (BashFormatter) Format(w io.Writer, res Result, opts *CLIOptions) error {
	name := opts.VarName
	if name == "" {
		name = "RESULT"
	}

	var stmt string
	switch res.kind {
	case kindBool:
		stmt = fmt.Sprintf("declare %s=%s", name, fmt.Sprint(res.boolean))
	case kindNumber:
		stmt = fmt.Sprintf("declare %s=%s", name, bashANSIQuote(formatNumber(res.number, opts.Human)))
	case kindElement:
		if !res.value.Exists() {
			// 缺失的结果只 unset，调用方用 ${var@A} 判断
			_, err := fmt.Fprintf(w, "unset -v %s\n", name)
			return err
		}
		stmt = fmt.Sprintf("declare %s=%s", name, bashANSIQuote(textValue(res.value)))
	case kindArray:
		var parts []string
		res.value.ForEach(func(_, v gjson.Result) bool {
			parts = append(parts, bashANSIQuote(textValue(v)))
			return true
		})
		stmt = fmt.Sprintf("declare -a %s=(%s)", name, strings.Join(parts, " "))
	case kindMapping:
		var b strings.Builder
		fmt.Fprintf(&b, "declare -A %s=(\n", name)
		res.assoc.Each(func(k jsonseq.Key, v gjson.Result) {
			fmt.Fprintf(&b, "    [%s]=%s\n", bashANSIQuote(k.String()), bashANSIQuote(textValue(v)))
		})
		b.WriteString(")")
		stmt = b.String()
	}
	// 使用 declare 确保是局部变量
	_, err := fmt.Fprintf(w, "unset -v %s ; %s\n", name, stmt)
	return err
}

// bashANSIQuote 将任意字符串转为 $'...' 形式的 ANSI-C 样式安全字符串
func bashANSIQuote(s string) string {
	var b strings.Builder
	b.WriteString("$'")
	for _, r := range s {
		switch r {
		case 27:
			b.WriteString(`\E`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		default:
			if r < 32 || r == 127 {
				// 对不可打印字符使用 \ooo 八进制转义
				fmt.Fprintf(&b, `\%03o`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteString("'")
	return b.String()
}
