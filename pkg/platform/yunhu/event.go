package yunhu

// EventType 为云湖事件类型（header.eventType）。
type EventType string

// 已支持的云湖事件类型。
const (
	EventMessageNormal      EventType = "message.receive.normal"
	EventMessageInstruction EventType = "message.receive.instruction"
	EventBotFollowed        EventType = "bot.followed"
	EventBotUnfollowed      EventType = "bot.unfollowed"
	EventGroupJoin          EventType = "group.join"
	EventGroupLeave         EventType = "group.leave"
	EventButtonReport       EventType = "button.report.inline"
	EventShortcutMenu       EventType = "bot.shortcut.menu"
)

// ContentType 为消息内容类型（message.contentType）。
type ContentType string

// 已知的消息内容类型。
const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
	ContentVideo ContentType = "video"
	ContentFile  ContentType = "file"
	ContentForm  ContentType = "form"
)

// 扩展字段键。所有云湖特有数据均以 ExtensionPrefix 开头，避免与标准字段冲突。
const (
	ExtensionPrefix = "yunhu_"

	ExtForm    = "yunhu_form"
	ExtButton  = "yunhu_button"
	ExtMenu    = "yunhu_menu"
	ExtCommand = "yunhu_command"
	ExtRaw     = "yunhu_raw"
)

// Platform 是写入 OneBot 事件的默认平台标识。
const Platform = "yunhu"

// RawEvent 是云湖推送的原始事件，通常来自 encoding/json 解码的 map。
// 转换器只读不写。
type RawEvent = map[string]any

// Header 为事件头。
type Header struct {
	EventID   string    // 事件唯一 ID
	EventType EventType // 事件类型
	EventTime int64     // 毫秒时间戳
}

// Envelope 是通过结构校验后的事件视图。
type Envelope struct {
	Version string
	Header  Header
	Body    map[string]any // 原样引用 event 对象，不做拷贝
}
