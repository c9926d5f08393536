package testutils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seq_tool/pkg/errorutil"
)

// 测试时日志只打到标准输出并且只留错误，不在包目录下生成日志文件
var quietFlags = []string{"-l", "stdout", "-e", "ERROR"}

// CliCase 一条命令行用例
type CliCase struct {
	Name  string
	Args  []string
	Stdin string
	// 期望的进程退出码
	WantCode int
	// 不为空时按 JSON 语义比较输出
	WantJSON string
	// 不为空时按文本逐字比较输出
	WantOut string
}

// CliResult 一次执行的输出和退出码
type CliResult struct {
	Stdout string
	Code   int
	Err    error
}

// ExecCli 在进程内执行命令，返回输出和退出码
func ExecCli(newCmd func() *cobra.Command, stdin string, args ...string) CliResult {
	cmd := newCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, quietFlags...))

	err := cmd.Execute()
	return CliResult{Stdout: out.String(), Code: errorutil.ExitCodeFromError(err), Err: err}
}

// RunCliTests 命令行测试通用函数
func RunCliTests(t *testing.T, newCmd func() *cobra.Command, cases []CliCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			res := ExecCli(newCmd, tc.Stdin, tc.Args...)
			require.Equal(t, tc.WantCode, res.Code, "args=%v err=%v out=%s", tc.Args, res.Err, res.Stdout)
			if tc.WantJSON != "" {
				assert.JSONEq(t, tc.WantJSON, res.Stdout)
			}
			if tc.WantOut != "" {
				assert.Equal(t, tc.WantOut, res.Stdout)
			}
		})
	}
}
