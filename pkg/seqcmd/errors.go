package seqcmd

import (
	"errors"

	"seq_tool/pkg/errorutil"
	"seq_tool/pkg/jsonseq"
	"seq_tool/pkg/sequtil"
)

// fromSeqError 把库里的哨兵错误映射成退出码
// 已经带退出码的错误原样返回
func fromSeqError(err error) error {
	if err == nil || errorutil.HasExitCode(err) {
		return err
	}
	switch {
	case errors.Is(err, sequtil.ErrEmptyInput):
		return errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput, "输入为空或没有可比较的值", err)
	case errors.Is(err, sequtil.ErrNoQualifyingValue):
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "transform 没有产出任何值", err)
	case errors.Is(err, jsonseq.ErrInvalidJSON), errors.Is(err, jsonseq.ErrNotArray):
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "输入不是合法的 JSON 数组", err)
	default:
		return err
	}
}
