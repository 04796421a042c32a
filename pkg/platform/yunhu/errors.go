package yunhu

import (
	"errors"
	"fmt"
)

// ErrMalformedPayload 表示事件结构不合法：缺少必需字段、字段类型错误，
// 或消息内容类型不在已知集合内。调用方应告警并修正数据源，而非重试。
var ErrMalformedPayload = errors.New("yunhu: malformed payload")

// malformed 构造包装 ErrMalformedPayload 的错误。
func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedPayload, fmt.Sprintf(format, args...))
}
