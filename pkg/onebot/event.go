package onebot

import (
	"encoding/json"
	"fmt"
)

// 事件大类（OneBot 12 type 字段）。
const (
	TypeMessage = "message"
	TypeNotice  = "notice"
	TypeRequest = "request"
	TypeMeta    = "meta"
)

// 常用 detail_type。
const (
	DetailPrivate             = "private"
	DetailGroup               = "group"
	DetailFriendIncrease      = "friend_increase"
	DetailFriendDecrease      = "friend_decrease"
	DetailGroupMemberIncrease = "group_member_increase"
	DetailGroupMemberDecrease = "group_member_decrease"
)

// Self 标识产生事件的机器人自身。
type Self struct {
	Platform string `json:"platform"`
	UserID   string `json:"user_id"`
}

// Event 是 OneBot 12 标准事件。
// 标准字段以结构体字段表达，平台扩展字段存放于 Extensions，序列化时平铺到顶层。
type Event struct {
	ID         string    `json:"id"`
	Time       float64   `json:"time"` // 秒级时间戳（可带小数）
	Type       string    `json:"type"`
	DetailType string    `json:"detail_type"`
	SubType    string    `json:"sub_type"`
	Platform   string    `json:"platform,omitempty"`
	Self       Self      `json:"self"`
	MessageID  string    `json:"message_id,omitempty"`
	Message    []Segment `json:"message,omitempty"`
	AltMessage string    `json:"alt_message,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	GroupID    string    `json:"group_id,omitempty"`
	OperatorID *string   `json:"operator_id,omitempty"`
	Nickname   string    `json:"user_nickname,omitempty"`

	// EventTime 保留来源平台的原始毫秒时间戳，不参与序列化。
	EventTime int64 `json:"-"`
	// Extensions 存放平台扩展字段，键必须带平台前缀。
	Extensions map[string]any `json:"-"`
}

// standardFields 列出所有标准字段名，扩展字段不得与之重名。
var standardFields = map[string]struct{}{
	"id": {}, "time": {}, "type": {}, "detail_type": {}, "sub_type": {},
	"platform": {}, "self": {}, "message_id": {}, "message": {}, "alt_message": {},
	"user_id": {}, "group_id": {}, "operator_id": {}, "user_nickname": {},
}

// IsStandardField 判断 name 是否为标准字段名。
func IsStandardField(name string) bool {
	_, ok := standardFields[name]
	return ok
}

// FromMillis 将毫秒时间戳换算为 OneBot 的秒级时间。
func FromMillis(ms int64) float64 {
	return float64(ms) / 1000
}

// Extension 返回指定扩展字段。
func (e *Event) Extension(key string) (any, bool) {
	if e == nil || e.Extensions == nil {
		return nil, false
	}
	v, ok := e.Extensions[key]
	return v, ok
}

// SetExtension 写入扩展字段。key 与标准字段重名时返回错误。
func (e *Event) SetExtension(key string, value any) error {
	if key == "" || IsStandardField(key) {
		return fmt.Errorf("onebot: extension key %q shadows a standard field", key)
	}
	if e.Extensions == nil {
		e.Extensions = make(map[string]any)
	}
	e.Extensions[key] = value
	return nil
}

// eventAlias 去掉方法集，避免 MarshalJSON 递归。
type eventAlias Event

// MarshalJSON 将标准字段与扩展字段合并为单个 JSON 对象。
func (e Event) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(eventAlias(e))
	if err != nil {
		return nil, err
	}
	if len(e.Extensions) == 0 {
		return base, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for key, value := range e.Extensions {
		if IsStandardField(key) {
			return nil, fmt.Errorf("onebot: extension key %q shadows a standard field", key)
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("onebot: marshal extension %q: %w", key, err)
		}
		merged[key] = raw
	}
	return json.Marshal(merged)
}
