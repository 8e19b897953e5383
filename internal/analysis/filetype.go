package analysis

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/h2non/filetype"
)

// Result 日志文件检测结果
type Result struct {
	IsText  bool   // 没有匹配到任何二进制文件头
	RealExt string // 匹配到的真实类型后缀
	MIME    string
	Message string
}

// InspectLog 读取文件头, 判断日志文件是否仍是纯文本
// 交给系统默认程序打开前调用, 避免把可执行文件当作日志启动
func InspectLog(path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file failed: %w", err)
	}
	defer file.Close()

	// 262 bytes 是 filetype 库建议的文件头长度
	head := make([]byte, 262)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read header failed: %w", err)
	}
	if n == 0 {
		return &Result{IsText: true, RealExt: "unknown", Message: "Empty file"}, nil
	}

	kind, _ := filetype.Match(head[:n])
	if kind == filetype.Unknown {
		return &Result{IsText: true, RealExt: "unknown", Message: "No binary signature"}, nil
	}

	return &Result{
		IsText:  false,
		RealExt: kind.Extension,
		MIME:    kind.MIME.Value,
		Message: fmt.Sprintf("Header is '%s', not a text log", kind.Extension),
	}, nil
}
