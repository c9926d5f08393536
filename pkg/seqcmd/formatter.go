package seqcmd

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"seq_tool/pkg/jsonseq"
	"seq_tool/pkg/tablefmt"
)

type OutputFormatter interface {
	Format(w io.Writer, res Result, opts *CLIOptions) error
}

var formatters = map[OutputFormat]OutputFormatter{
	FormatJSON: JSONFormatter{},
	FormatTxt:  TextFormatter{},
	FormatSh:   BashFormatter{},
}

// 多行输出用 4 个空格缩进
var prettyOptions = &pretty.Options{Width: 80, Prefix: "", Indent: "    ", SortKeys: false}

func renderJSON(raw string, jsonFormat JSONFormat) string {
	if jsonFormat == JSONFormatOne {
		return string(pretty.Ugly([]byte(raw)))
	}
	return strings.TrimRight(string(pretty.PrettyOptions([]byte(raw), prettyOptions)), "\n")
}

func formatNumber(n float64, human bool) string {
	if human && !math.IsInf(n, 0) && !math.IsNaN(n) {
		return humanize.Commaf(n)
	}
	return jsonseq.FormatNumber(n)
}

type JSONFormatter struct{}

func (JSONFormatter) Format(w io.Writer, res Result, opts *CLIOptions) error {
	var raw string
	switch res.kind {
	case kindBool:
		raw = fmt.Sprint(res.boolean)
	case kindNumber:
		raw = jsonseq.FormatNumber(res.number)
	case kindElement, kindArray:
		if !res.value.Exists() {
			raw = "null"
		} else {
			raw = res.value.Raw
		}
	case kindMapping:
		out, err := res.assoc.JSON()
		if err != nil {
			return err
		}
		raw = out
	}
	_, err := fmt.Fprintln(w, renderJSON(raw, opts.JSONFormat))
	return err
}

type TextFormatter struct{}

// textValue 字符串去掉引号，其它保持 JSON 原文
func textValue(v gjson.Result) string {
	if v.Type == gjson.String {
		return v.Str
	}
	return string(pretty.Ugly([]byte(v.Raw)))
}

func (TextFormatter) Format(w io.Writer, res Result, opts *CLIOptions) error {
	var lines []string
	switch res.kind {
	case kindBool:
		lines = append(lines, fmt.Sprint(res.boolean))
	case kindNumber:
		lines = append(lines, formatNumber(res.number, opts.Human))
	case kindElement:
		// 缺失时什么都不打印
		if res.value.Exists() {
			lines = append(lines, textValue(res.value))
		}
	case kindArray:
		res.value.ForEach(func(_, v gjson.Result) bool {
			lines = append(lines, textValue(v))
			return true
		})
	case kindMapping:
		var rows []tablefmt.Row
		res.assoc.Each(func(k jsonseq.Key, v gjson.Result) {
			rows = append(rows, tablefmt.Row{Left: k.String(), Right: textValue(v)})
		})
		lines = append(lines, tablefmt.FormatTwoColumns("key", "value", rows))
	}
	if len(lines) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
