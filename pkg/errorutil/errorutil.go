package errorutil

import (
	"errors"
	"fmt"

	"github.com/tidwall/sjson"
)

const (
	CodeSuccess = 0 // 成功执行
	CodeAbsent  = 1 // 结果缺失（--check 模式下 first/last/…OrNull 没有值）

	// 60–69: 用户输入或调用错误
	CodeInvalidUsage = 64 // 命令行用法错误（参数不合法等）
	CodeMissingInput = 65 // 输入为空，或者过滤之后没有可用的值
	CodeInvalidData  = 66 // 输入格式错误，或者 transform 没有产出任何值

	// 70–79: 程序自身或依赖错误
	CodeIOError     = 72 // 文件或设备读写失败
	CodeInternalErr = 74 // 内部 bug、panic、未捕捉异常

	// 80–89: 配置相关错误
	CodeConfigError = 80 // 配置文件有误或缺失
)

// omitempty 的作用是空字段不出现
type ExitErrorWithCode struct {
	Code        int    `json:"code"`                    // 框架/业务层级错误码
	Message     string `json:"message,omitempty"`       // 可读消息
	CmdExitCode int    `json:"cmd_exit_code,omitempty"` // 覆盖进程退出码（为 0 时用 Code）
	Err         error  `json:"-"`
}

func (e *ExitErrorWithCode) Error() string {
	if e.Err != nil {
		if e.Message != "" {
			return e.Message + ": " + e.Err.Error()
		}
		return e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Exit with code: %d", e.Code)
}

func (e *ExitErrorWithCode) Unwrap() error {
	return e.Err
}

func NewExitError(code int, err error) error {
	return &ExitErrorWithCode{Code: code, Err: err}
}

// 带错误消息的错误，如果需要指定进程退出码就传进来
func NewExitErrorWithMessage(code int, message string, err error, cmdExitCode ...int) error {
	e := &ExitErrorWithCode{Code: code, Message: message, Err: err}
	if len(cmdExitCode) > 0 {
		e.CmdExitCode = cmdExitCode[0]
	}
	return e
}

// os.Exit(errorutil.ExitCodeFromError(err))
func ExitCodeFromError(err error) int {
	if err == nil {
		return CodeSuccess
	}
	var exitErr *ExitErrorWithCode
	if errors.As(err, &exitErr) {
		if exitErr.CmdExitCode != 0 {
			return exitErr.CmdExitCode
		}
		return exitErr.Code
	}
	return CodeInternalErr
}

// 判断当前的错误是否是带退出码的错误
func HasExitCode(err error) bool {
	var exitErr *ExitErrorWithCode
	return errors.As(err, &exitErr)
}

// 提取原始错误
func RootError(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}

func (e *ExitErrorWithCode) JSON() string {
	out, _ := sjson.Set("{}", "code", e.Code)
	if e.Message != "" {
		out, _ = sjson.Set(out, "message", e.Message)
	}
	if e.Err != nil {
		out, _ = sjson.Set(out, "error", e.Err.Error())
	}
	if e.CmdExitCode != 0 {
		out, _ = sjson.Set(out, "cmd_exit_code", e.CmdExitCode)
	}
	return out
}

// FormatErrorAndCode 给命令行最终输出用，返回 JSON 描述和进程退出码
func FormatErrorAndCode(err error) (string, int) {
	var e *ExitErrorWithCode
	if errors.As(err, &e) {
		return e.JSON(), ExitCodeFromError(e)
	}
	// 构建一个临时 ExitErrorWithCode 对象，并直接调用其 JSON() 方法
	return (&ExitErrorWithCode{
		Code:    CodeInternalErr,
		Message: "未知错误",
		Err:     err,
	}).JSON(), CodeInternalErr
}
