package yunhu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/IMBotPlatform/yunhu2onebot/pkg/botcore"
	"github.com/IMBotPlatform/yunhu2onebot/pkg/onebot"
)

// MessageAdapter 将云湖事件经 OneBot 12 转换后映射为通用 Update。
type MessageAdapter struct {
	Converter *Converter // 为空时使用默认转换器
}

// Normalize 实现 botcore.Adapter。
// raw 可以是已解码的事件对象或 JSON 字节；类型不受支持时返回包装了 botcore.ErrSkip 的错误。
func (a MessageAdapter) Normalize(raw interface{}) (botcore.Update, error) {
	conv := a.Converter
	if conv == nil {
		conv = defaultConverter
	}

	var (
		res Result
		err error
	)
	switch v := raw.(type) {
	case []byte:
		res, err = conv.ConvertJSON(v)
	case string:
		res, err = conv.ConvertJSON([]byte(v))
	case nil:
		return botcore.Update{}, errors.New("invalid yunhu event: nil")
	default:
		res, err = conv.Convert(v)
	}
	if err != nil {
		return botcore.Update{}, err
	}
	if !res.OK() {
		return botcore.Update{}, fmt.Errorf("%w: event type %s", botcore.ErrSkip, res.EventType)
	}
	return UpdateFromEvent(res.EventType, res.Event, conv.cfg.CommandPrefix), nil
}

// UpdateFromEvent 把 OneBot 事件压平为 Update。
// 指令消息的文本重写为 "<prefix><commandName> <args>"，便于命令路由直接识别。
func UpdateFromEvent(eventType EventType, ev *onebot.Event, prefix string) botcore.Update {
	meta := map[string]string{
		"platform":    ev.Platform,
		"event_id":    ev.ID,
		"event_type":  string(eventType),
		"detail_type": ev.DetailType,
	}
	if ev.SubType != "" {
		meta["sub_type"] = ev.SubType
	}
	if ev.Self.UserID != "" {
		meta["self_id"] = ev.Self.UserID
	}
	if ev.Nickname != "" {
		meta["user_nickname"] = ev.Nickname
	}

	id := ev.MessageID
	if id == "" {
		id = ev.ID
	}
	chatType := onebot.DetailPrivate
	chatID := ev.UserID
	if ev.GroupID != "" {
		chatType = onebot.DetailGroup
		chatID = ev.GroupID
	}

	text := onebot.PlainText(ev.Message)
	if ext, ok := ev.Extension(ExtCommand); ok {
		if cmd, ok := ext.(map[string]any); ok {
			name, _ := cmd["name"].(string)
			args, _ := cmd["args"].(string)
			if name != "" {
				meta["command_name"] = name
				text = strings.TrimSpace(prefix + name + " " + args)
			}
		}
	}
	if ev.AltMessage != "" {
		meta["alt_message"] = ev.AltMessage
	}

	return botcore.Update{
		ID:       id,
		Kind:     ev.Type,
		SenderID: ev.UserID,
		ChatID:   chatID,
		ChatType: chatType,
		Text:     text,
		Raw:      ev,
		Metadata: meta,
	}
}
