package yunhu

import (
	"fmt"
	"sort"
	"strings"

	"github.com/IMBotPlatform/yunhu2onebot/pkg/onebot"
)

// SegmentButtons 是消息内附带按钮时追加的扩展消息段类型。
const SegmentButtons = "yunhu_button"

// contentRule 描述一种内容类型如何落到标准消息段上。
type contentRule struct {
	instructionOnly bool // 仅允许出现在指令消息中
	build           func(content, msg map[string]any) (onebot.Segment, string, error)
}

// mediaKeys 为媒体内容在云湖事件中的源字段名。
type mediaKeys struct {
	url    string
	name   string
	label  string
	extras [][2]string // {标准字段, 源字段}
}

// contentMapping 是内容类型到映射规则的静态表。
var contentMapping = map[ContentType]contentRule{
	ContentText: {build: buildText},
	ContentImage: {build: mediaRule(onebot.SegmentImage, mediaKeys{
		url: "imageUrl", name: "imageName", label: "图片",
		extras: [][2]string{{"width", "imageWidth"}, {"height", "imageHeight"}},
	})},
	ContentVideo: {build: mediaRule(onebot.SegmentVideo, mediaKeys{
		url: "videoUrl", name: "videoName", label: "视频",
		extras: [][2]string{{"width", "videoWidth"}, {"height", "videoHeight"}, {"duration", "videoDuration"}},
	})},
	ContentFile: {build: mediaRule(onebot.SegmentFile, mediaKeys{
		url: "fileUrl", name: "fileName", label: "文件",
		extras: [][2]string{{"size", "fileSize"}},
	})},
	ContentForm: {instructionOnly: true, build: buildFormPlaceholder},
}

// mapMessage 处理普通消息与指令消息。
func mapMessage(env Envelope, ev *onebot.Event) error {
	msg := object(env.Body, "message")
	if msg == nil {
		return malformed("%s: missing event.message", env.Header.EventType)
	}
	rawType, ok := msg["contentType"].(string)
	if !ok {
		return malformed("%s: missing message.contentType", env.Header.EventType)
	}
	contentType := ContentType(rawType)
	rule, ok := contentMapping[contentType]
	if !ok {
		return malformed("%s: unknown contentType %q", env.Header.EventType, rawType)
	}
	instruction := env.Header.EventType == EventMessageInstruction
	if rule.instructionOnly && !instruction {
		return malformed("%s: contentType %q only allowed on instruction messages", env.Header.EventType, rawType)
	}

	content := object(msg, "content")
	seg, alt, err := rule.build(content, msg)
	if err != nil {
		return err
	}
	segments := []onebot.Segment{seg}
	if buttons, ok := content["buttons"]; ok && buttons != nil {
		segments = append(segments, onebot.Segment{
			Type: SegmentButtons,
			Data: map[string]any{"buttons": deepCopy(buttons)},
		})
		alt += "[按钮]"
	}

	sender := object(env.Body, "sender")
	chat := object(env.Body, "chat")

	ev.Type = onebot.TypeMessage
	ev.MessageID = stringField(msg, "msgId")
	ev.Message = segments
	ev.AltMessage = alt
	ev.UserID = stringField(sender, "senderId")
	ev.Nickname = stringField(sender, "senderNickname")

	chatID := stringField(chat, "chatId")
	if stringField(chat, "chatType") == "bot" {
		ev.DetailType = onebot.DetailPrivate
		if chatID != "" {
			ev.Self.UserID = chatID
		}
	} else {
		ev.DetailType = onebot.DetailGroup
		ev.GroupID = chatID
	}

	if contentType == ContentForm {
		form, ok := content["formJson"]
		if !ok || form == nil {
			return malformed("%s: form content without formJson", env.Header.EventType)
		}
		if err := ev.SetExtension(ExtForm, deepCopy(form)); err != nil {
			return err
		}
	}
	if instruction {
		name := stringField(msg, "commandName")
		args := strings.TrimSpace(strings.Replace(stringField(content, "text"), "/"+name, "", 1))
		if err := ev.SetExtension(ExtCommand, map[string]any{
			"id":   stringField(msg, "commandId"),
			"name": name,
			"args": args,
		}); err != nil {
			return err
		}
	}
	return nil
}

func buildText(content, _ map[string]any) (onebot.Segment, string, error) {
	text := stringField(content, "text")
	return onebot.TextSegment(text), text, nil
}

// mediaRule 生成图片/视频/文件的映射函数；子类型保留在消息段 type 上。
func mediaRule(segType string, keys mediaKeys) func(content, msg map[string]any) (onebot.Segment, string, error) {
	return func(content, _ map[string]any) (onebot.Segment, string, error) {
		url := stringField(content, keys.url)
		name := stringField(content, keys.name)
		data := map[string]any{
			"file_id":   url,
			"url":       url,
			"file_name": name,
		}
		for _, pair := range keys.extras {
			data[pair[0]] = valueOr(content, pair[1], 0)
		}
		return onebot.Segment{Type: segType, Data: data}, fmt.Sprintf("[%s:%s]", keys.label, name), nil
	}
}

// buildFormPlaceholder 为表单生成标准文本摘要，表单原文另行挂到 yunhu_form。
func buildFormPlaceholder(content, msg map[string]any) (onebot.Segment, string, error) {
	alt := fmt.Sprintf("[表单:%s]", stringField(msg, "instructionName"))
	form := object(content, "formJson")
	if len(form) == 0 {
		return onebot.TextSegment(alt), alt, nil
	}

	ids := make([]string, 0, len(form))
	for id := range form {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		field := object(form, id)
		if field == nil {
			continue
		}
		label := stringField(field, "label")
		if label == "" {
			label = id
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, formFieldValue(field)))
	}
	if len(lines) == 0 {
		return onebot.TextSegment(alt), alt, nil
	}
	return onebot.TextSegment(strings.Join(lines, "\n")), alt, nil
}

// formFieldValue 按控件类型提取表单项的展示值。
func formFieldValue(field map[string]any) string {
	switch stringField(field, "type") {
	case "input", "textarea":
		return stringField(field, "value")
	case "switch":
		v, _ := field["value"].(bool)
		if v {
			return "True"
		}
		return "False"
	case "select", "radio":
		return stringField(field, "selectValue")
	case "checkbox":
		status, _ := field["selectStatus"].([]any)
		values, _ := field["selectValues"].([]any)
		picked := make([]string, 0, len(values))
		for i, v := range values {
			if i >= len(status) {
				break
			}
			if on, _ := status[i].(bool); !on {
				continue
			}
			if s, ok := v.(string); ok {
				picked = append(picked, s)
			}
		}
		return strings.Join(picked, ",")
	default:
		return ""
	}
}
