package yunhu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IMBotPlatform/yunhu2onebot/pkg/onebot"
)

func TestMessageContentTypes(t *testing.T) {
	cases := []struct {
		eventType   string
		contentType string
		content     map[string]any
		segment     string
		alt         string
	}{
		{"message.receive.normal", "text", map[string]any{"text": "你好"}, onebot.SegmentText, "你好"},
		{"message.receive.normal", "image", map[string]any{"imageUrl": "https://x/i.png", "imageName": "i.png", "imageWidth": 10, "imageHeight": 20}, onebot.SegmentImage, "[图片:i.png]"},
		{"message.receive.normal", "video", map[string]any{"videoUrl": "https://x/v.mp4", "videoName": "v.mp4", "videoDuration": 12}, onebot.SegmentVideo, "[视频:v.mp4]"},
		{"message.receive.normal", "file", map[string]any{"fileUrl": "https://x/f.zip", "fileName": "f.zip", "fileSize": 2048}, onebot.SegmentFile, "[文件:f.zip]"},
		{"message.receive.instruction", "form", map[string]any{"formJson": sampleForm()}, onebot.SegmentText, "[表单:]"},
	}

	for _, tc := range cases {
		t.Run(tc.contentType, func(t *testing.T) {
			res, err := Convert(envelope(tc.eventType, messageBody("bot", tc.contentType, tc.content)))
			require.NoError(t, err)
			ev := res.Event
			require.Equal(t, onebot.TypeMessage, ev.Type)
			require.NotEmpty(t, ev.Message)
			require.Equal(t, tc.segment, ev.Message[0].Type)
			require.Equal(t, tc.alt, ev.AltMessage)
		})
	}
}

func TestMessageTextAndChatMapping(t *testing.T) {
	res, err := Convert(envelope("message.receive.normal", messageBody("bot", "text", map[string]any{"text": "你好"})))
	require.NoError(t, err)
	ev := res.Event
	require.Equal(t, onebot.DetailPrivate, ev.DetailType)
	require.Equal(t, "49871624", ev.Self.UserID)
	require.Empty(t, ev.GroupID)
	require.Equal(t, "5c887bc0a82244c7969c08000f5b3ae8", ev.MessageID)
	require.Equal(t, "6300451", ev.UserID)
	require.Equal(t, "ShanFish", ev.Nickname)
	require.Equal(t, []onebot.Segment{onebot.TextSegment("你好")}, ev.Message)
	require.Empty(t, ev.Extensions)

	res, err = Convert(envelope("message.receive.normal", messageBody("group", "text", map[string]any{"text": "hi"})))
	require.NoError(t, err)
	require.Equal(t, onebot.DetailGroup, res.Event.DetailType)
	require.Equal(t, "49871624", res.Event.GroupID)
	require.Empty(t, res.Event.Self.UserID)
}

func TestMessageMediaData(t *testing.T) {
	content := map[string]any{"fileUrl": "https://x/f.zip", "fileName": "f.zip", "fileSize": 2048}
	res, err := Convert(envelope("message.receive.normal", messageBody("group", "file", content)))
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"file_id":   "https://x/f.zip",
		"url":       "https://x/f.zip",
		"file_name": "f.zip",
		"size":      2048,
	}, res.Event.Message[0].Data)

	res, err = Convert(envelope("message.receive.normal", messageBody("group", "video", map[string]any{"videoUrl": "u"})))
	require.NoError(t, err)
	data := res.Event.Message[0].Data
	require.Equal(t, 0, data["width"])
	require.Equal(t, 0, data["height"])
	require.Equal(t, 0, data["duration"])
}

func TestInstructionFormCarriesExtension(t *testing.T) {
	payload := instructionFormPayload()
	res, err := Convert(payload)
	require.NoError(t, err)
	ev := res.Event

	form, ok := ev.Extension(ExtForm)
	require.True(t, ok)
	require.Equal(t, sampleForm(), form)

	// 标准字段仍然可用：表单摘要作为文本段
	require.Equal(t, onebot.SegmentText, ev.Message[0].Type)
	require.Equal(t, "城市: 杭州\n爱好: 读书,游泳\n订阅: True", onebot.PlainText(ev.Message))
	require.Equal(t, "[表单:问卷]", ev.AltMessage)

	cmd, ok := ev.Extension(ExtCommand)
	require.True(t, ok)
	require.Equal(t, map[string]any{"id": "1024", "name": "survey", "args": ""}, cmd)

	_, ok = ev.Extension(ExtButton)
	require.False(t, ok)
	_, ok = ev.Extension(ExtMenu)
	require.False(t, ok)
}

func TestInstructionTextArguments(t *testing.T) {
	body := messageBody("group", "text", map[string]any{"text": "/weather 杭州 明天"})
	msg := body["message"].(map[string]any)
	msg["commandId"] = "7"
	msg["commandName"] = "weather"

	res, err := Convert(envelope("message.receive.instruction", body))
	require.NoError(t, err)
	cmd, _ := res.Event.Extension(ExtCommand)
	require.Equal(t, map[string]any{"id": "7", "name": "weather", "args": "杭州 明天"}, cmd)
	_, ok := res.Event.Extension(ExtForm)
	require.False(t, ok)
}

func TestMessageButtonsSegment(t *testing.T) {
	buttons := []any{[]any{map[string]any{"text": "确认", "actionType": 3, "value": "ok"}}}
	res, err := Convert(envelope("message.receive.normal",
		messageBody("group", "text", map[string]any{"text": "选一个", "buttons": buttons})))
	require.NoError(t, err)
	require.Len(t, res.Event.Message, 2)
	require.Equal(t, SegmentButtons, res.Event.Message[1].Type)
	require.Equal(t, buttons, res.Event.Message[1].Data["buttons"])
	require.Equal(t, "选一个[按钮]", res.Event.AltMessage)
	_, ok := res.Event.Extension(ExtButton)
	require.False(t, ok, "message buttons are a segment, not the event extension")
}

func TestMessageMalformedContent(t *testing.T) {
	cases := map[string]map[string]any{
		"unknown content type": envelope("message.receive.normal", messageBody("bot", "sticker", map[string]any{})),
		"form on normal":       envelope("message.receive.normal", messageBody("bot", "form", map[string]any{"formJson": sampleForm()})),
		"form without json":    envelope("message.receive.instruction", messageBody("bot", "form", map[string]any{})),
		"missing message":      envelope("message.receive.normal", map[string]any{"sender": map[string]any{}}),
	}
	noType := messageBody("bot", "text", map[string]any{"text": "x"})
	delete(noType["message"].(map[string]any), "contentType")
	cases["missing content type"] = envelope("message.receive.normal", noType)

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := Convert(payload)
			require.ErrorIs(t, err, ErrMalformedPayload)
			require.Nil(t, res.Event)
		})
	}
}

func TestFormFieldValues(t *testing.T) {
	require.Equal(t, "a", formFieldValue(map[string]any{"type": "textarea", "value": "a"}))
	require.Equal(t, "b", formFieldValue(map[string]any{"type": "select", "selectValue": "b"}))
	require.Equal(t, "c", formFieldValue(map[string]any{"type": "radio", "selectValue": "c"}))
	require.Equal(t, "False", formFieldValue(map[string]any{"type": "switch"}))
	require.Equal(t, "x", formFieldValue(map[string]any{
		"type": "checkbox", "selectStatus": []any{true}, "selectValues": []any{"x", "y"},
	}))
	require.Equal(t, "", formFieldValue(map[string]any{"type": "slider", "value": 3}))
}
