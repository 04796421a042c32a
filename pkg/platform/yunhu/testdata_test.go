package yunhu

const (
	sampleEventID   = "c192ccc83d5147f2859ca77bcfafc9f9"
	sampleEventTime = int64(1748613099002)
)

func envelope(eventType string, body map[string]any) map[string]any {
	return map[string]any{
		"version": "1.0",
		"header": map[string]any{
			"eventId":   sampleEventID,
			"eventType": eventType,
			"eventTime": sampleEventTime,
		},
		"event": body,
	}
}

func messageBody(chatType, contentType string, content map[string]any) map[string]any {
	return map[string]any{
		"sender": map[string]any{
			"senderId":        "6300451",
			"senderType":      "user",
			"senderUserLevel": "owner",
			"senderNickname":  "ShanFish",
		},
		"chat": map[string]any{
			"chatId":   "49871624",
			"chatType": chatType,
		},
		"message": map[string]any{
			"msgId":       "5c887bc0a82244c7969c08000f5b3ae8",
			"parentId":    "",
			"sendTime":    int64(1748613098989),
			"chatId":      "49871624",
			"chatType":    chatType,
			"contentType": contentType,
			"content":     content,
		},
	}
}

func sampleForm() map[string]any {
	return map[string]any{
		"abc123": map[string]any{
			"id":    "abc123",
			"type":  "input",
			"label": "城市",
			"value": "杭州",
		},
		"def456": map[string]any{
			"id":           "def456",
			"type":         "checkbox",
			"label":        "爱好",
			"selectStatus": []any{true, false, true},
			"selectValues": []any{"读书", "跑步", "游泳"},
		},
		"ghi789": map[string]any{
			"id":    "ghi789",
			"type":  "switch",
			"label": "订阅",
			"value": true,
		},
	}
}

func instructionFormPayload() map[string]any {
	body := messageBody("group", "form", map[string]any{"formJson": sampleForm()})
	msg := body["message"].(map[string]any)
	msg["commandId"] = 1024
	msg["commandName"] = "survey"
	msg["instructionId"] = 1024
	msg["instructionName"] = "问卷"
	return envelope("message.receive.instruction", body)
}

// samplePayloads 为每个已注册事件类型提供一个最小合法样例。
func samplePayloads() map[EventType]map[string]any {
	return map[EventType]map[string]any{
		EventMessageNormal: envelope("message.receive.normal",
			messageBody("bot", "text", map[string]any{"text": "你好"})),
		EventMessageInstruction: instructionFormPayload(),
		EventBotFollowed: envelope("bot.followed", map[string]any{
			"time": int64(1748613099002), "chatId": "bot-1", "chatType": "bot",
			"userId": "u-1", "nickname": "Alice", "avatarUrl": "https://example.com/a.png",
		}),
		EventBotUnfollowed: envelope("bot.unfollowed", map[string]any{
			"chatId": "bot-1", "chatType": "bot", "userId": "u-1", "nickname": "Alice",
		}),
		EventGroupJoin: envelope("group.join", map[string]any{
			"chatId": "g-1", "chatType": "group", "userId": "u-2", "nickname": "Bob",
		}),
		EventGroupLeave: envelope("group.leave", map[string]any{
			"chatId": "g-1", "chatType": "group", "userId": "u-2", "nickname": "Bob",
		}),
		EventButtonReport: envelope("button.report.inline", map[string]any{
			"time": int64(1748613099002), "msgId": "m-9", "recvId": "g-1", "recvType": "group",
			"userId": "u-3", "value": "approve",
		}),
		EventShortcutMenu: envelope("bot.shortcut.menu", map[string]any{
			"botId": "bot-1", "menuId": "menu-1", "menuType": 1, "menuAction": 1,
			"chatId": "g-1", "chatType": "group", "senderType": "user", "senderId": "u-4",
			"sendTime": int64(1748613099002),
		}),
	}
}
