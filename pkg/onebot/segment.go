package onebot

// 标准消息段类型。
const (
	SegmentText  = "text"
	SegmentImage = "image"
	SegmentVideo = "video"
	SegmentFile  = "file"
)

// Segment 为 OneBot 12 消息段。
type Segment struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// TextSegment 构造文本消息段。
func TextSegment(text string) Segment {
	return Segment{Type: SegmentText, Data: map[string]any{"text": text}}
}

// PlainText 拼接消息中所有文本段的内容。
func PlainText(segments []Segment) string {
	out := ""
	for _, seg := range segments {
		if seg.Type != SegmentText {
			continue
		}
		if s, ok := seg.Data["text"].(string); ok {
			out += s
		}
	}
	return out
}
