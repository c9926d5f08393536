package seqcmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"seq_tool/pkg/errorutil"
)

// CLIOptions 每个子命令共用的参数
type CLIOptions struct {
	// 从文件或者标准输入中来，- 表示标准输入
	Input string
	// 直接从参数中获取 JSON 数组
	StrInput   string
	Path       string
	Where      string
	Format     OutputFormat
	JSONFormat JSONFormat
	VarName    string
	Human      bool
	Sorted     bool
	Check      bool
}

type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatTxt  OutputFormat = "txt"
	FormatSh   OutputFormat = "sh"
)

// 为了让 VarP 接收自定义类型，实现 flag.Value 接口(String Set Type)即可：
func (f *OutputFormat) String() string { return string(*f) }

func (f *OutputFormat) Set(val string) error {
	switch OutputFormat(strings.ToLower(val)) {
	case FormatJSON, FormatTxt, FormatSh:
		*f = OutputFormat(strings.ToLower(val))
		return nil
	default:
		return fmt.Errorf("无效的输出格式: %s", val)
	}
}

func (f *OutputFormat) Type() string {
	return "format" // 这个字符串用于帮助文档与类型提示
}

type JSONFormat string

const (
	JSONFormatOne JSONFormat = "one"
	JSONFormatMul JSONFormat = "mul"
)

func (f *JSONFormat) String() string { return string(*f) }

func (f *JSONFormat) Set(val string) error {
	switch JSONFormat(strings.ToLower(val)) {
	case JSONFormatMul, JSONFormatOne:
		*f = JSONFormat(strings.ToLower(val))
		return nil
	default:
		return fmt.Errorf("无效的 jsonformat 值: %s", val)
	}
}

func (f *JSONFormat) Type() string {
	return "jsonformat"
}

// readInput 优先使用 -s，其次 -i 指定的文件，都没有就读标准输入
func (o *CLIOptions) readInput(stdin io.Reader) ([]byte, error) {
	if o.StrInput != "" {
		return []byte(o.StrInput), nil
	}
	if o.Input == "" || o.Input == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "读取标准输入失败", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(o.Input)
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, fmt.Sprintf("无法读取文件 %s", o.Input), err)
	}
	return data, nil
}
