package yunhu

import "github.com/IMBotPlatform/yunhu2onebot/pkg/onebot"

// Handler 将校验后的事件体映射到预填了公共字段的 OneBot 事件上。
type Handler func(env Envelope, ev *onebot.Event) error

// registry 是事件类型到映射函数的静态表，初始化后只读。
var registry = map[EventType]Handler{
	EventMessageNormal:      mapMessage,
	EventMessageInstruction: mapMessage,
	EventBotFollowed:        mapLifecycle,
	EventBotUnfollowed:      mapLifecycle,
	EventGroupJoin:          mapLifecycle,
	EventGroupLeave:         mapLifecycle,
	EventButtonReport:       mapInteractive,
	EventShortcutMenu:       mapInteractive,
}

// Dispatch 按事件类型精确查找映射函数（区分大小写）。未注册的类型返回 false。
func Dispatch(eventType EventType) (Handler, bool) {
	h, ok := registry[eventType]
	return h, ok
}

// SupportedEventTypes 返回全部已注册的事件类型。
func SupportedEventTypes() []EventType {
	return []EventType{
		EventMessageNormal,
		EventMessageInstruction,
		EventBotFollowed,
		EventBotUnfollowed,
		EventGroupJoin,
		EventGroupLeave,
		EventButtonReport,
		EventShortcutMenu,
	}
}
