package command

import (
	"github.com/IMBotPlatform/yunhu2onebot/pkg/botcore"
)

// StreamWriter 实现 io.Writer 接口，将输出重定向到 StreamChunk 通道。
// 这允许 Cobra 命令像操作 stdout 一样直接打印，而结果会被流式传输给调用方。
type StreamWriter struct {
	Ch chan<- botcore.StreamChunk
}

// NewStreamWriter 创建一个新的 StreamWriter。
func NewStreamWriter(ch chan<- botcore.StreamChunk) *StreamWriter {
	return &StreamWriter{Ch: ch}
}

// Write 将字节切片转换为 StreamChunk 发送。
func (w *StreamWriter) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	w.Ch <- botcore.StreamChunk{
		Content: string(p),
		IsFinal: false,
	}
	return len(p), nil
}
