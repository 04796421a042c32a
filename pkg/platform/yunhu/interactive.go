package yunhu

import "github.com/IMBotPlatform/yunhu2onebot/pkg/onebot"

// 交互组件事件的扩展 detail_type。
const (
	DetailButtonClick  = "yunhu_button_click"
	DetailShortcutMenu = "yunhu_shortcut_menu"
)

// mapInteractive 处理按钮上报与快捷菜单。
// 标准模型中没有对应概念，故产出 request 事件，并把完整事件体原样挂在扩展字段上。
func mapInteractive(env Envelope, ev *onebot.Event) error {
	body := env.Body
	ev.Type = onebot.TypeRequest
	ev.Nickname = stringField(body, "nickname")

	var key string
	switch env.Header.EventType {
	case EventButtonReport:
		key = ExtButton
		ev.DetailType = DetailButtonClick
		ev.UserID = stringField(body, "userId")
		ev.MessageID = stringField(body, "msgId")
		if stringField(body, "recvType") == "group" {
			ev.GroupID = stringField(body, "recvId")
		}
	case EventShortcutMenu:
		key = ExtMenu
		ev.DetailType = DetailShortcutMenu
		ev.UserID = stringField(body, "senderId")
		if stringField(body, "chatType") == "group" {
			ev.GroupID = stringField(body, "chatId")
		}
	default:
		return malformed("%s: not an interactive event", env.Header.EventType)
	}
	return ev.SetExtension(key, deepCopy(body))
}
