package botcore

// StreamChunk 描述流式输出片段。
type StreamChunk struct {
	Content string
	Payload interface{} // 扩展：支持携带复杂对象，用于非流式回复
	IsFinal bool
}

// NoResponse 是一个哨兵值，用于标记不需要回复。
// 当 StreamChunk.Payload == NoResponse 时，上层应直接丢弃该片段。
var NoResponse = struct{}{}

// PipelineInvoker 抽象命令/业务执行器。
type PipelineInvoker interface {
	Trigger(update Update, streamID string) <-chan StreamChunk
}

// PipelineFunc 便于直接以函数充当 PipelineInvoker。
type PipelineFunc func(update Update, streamID string) <-chan StreamChunk

// Trigger 实现 PipelineInvoker 接口。
func (f PipelineFunc) Trigger(update Update, streamID string) <-chan StreamChunk {
	if f == nil {
		return nil
	}
	return f(update, streamID)
}

// Collect 读取通道直到关闭，返回拼接后的文本以及是否收到终结片段。
func Collect(ch <-chan StreamChunk) (string, bool) {
	if ch == nil {
		return "", false
	}
	var (
		content string
		final   bool
	)
	for chunk := range ch {
		if chunk.Payload == NoResponse {
			final = final || chunk.IsFinal
			continue
		}
		content += chunk.Content
		final = final || chunk.IsFinal
	}
	return content, final
}
