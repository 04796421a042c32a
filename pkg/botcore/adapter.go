package botcore

import "errors"

// ErrSkip 表示原始事件结构合法，但不属于可处理的类型；调用方应记录后跳过。
var ErrSkip = errors.New("botcore: update skipped")

// Adapter 将平台原始消息映射为标准 Update。
type Adapter interface {
	Normalize(raw interface{}) (Update, error)
}

// AdapterFunc 允许直接以函数形式实现 Adapter。
type AdapterFunc func(raw interface{}) (Update, error)

// Normalize 实现 Adapter 接口。
func (f AdapterFunc) Normalize(raw interface{}) (Update, error) {
	if f == nil {
		return Update{}, nil
	}
	return f(raw)
}
