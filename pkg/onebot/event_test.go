package onebot

import (
	"encoding/json"
	"testing"
)

func TestEventMarshalMergesExtensions(t *testing.T) {
	ev := Event{
		ID:         "e-1",
		Time:       FromMillis(1748613099002),
		Type:       TypeRequest,
		DetailType: "yunhu_button_click",
		Self:       Self{Platform: "yunhu", UserID: "bot"},
		UserID:     "u-1",
		EventTime:  1748613099002,
	}
	if err := ev.SetExtension("yunhu_button", map[string]any{"value": "ok"}); err != nil {
		t.Fatalf("set extension: %v", err)
	}

	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["id"] != "e-1" || out["type"] != TypeRequest || out["user_id"] != "u-1" {
		t.Fatalf("standard fields missing: %v", out)
	}
	if out["time"] != 1748613099.002 {
		t.Fatalf("unexpected time: %v", out["time"])
	}
	button, ok := out["yunhu_button"].(map[string]any)
	if !ok || button["value"] != "ok" {
		t.Fatalf("extension not flattened: %v", out)
	}
	if _, ok := out["EventTime"]; ok {
		t.Fatalf("EventTime must not be serialized")
	}
	if _, ok := out["message"]; ok {
		t.Fatalf("empty message should be omitted")
	}

	// 指针接收者同样走自定义编码
	data2, err := json.Marshal(&ev)
	if err != nil {
		t.Fatalf("marshal pointer: %v", err)
	}
	if string(data) != string(data2) {
		t.Fatalf("pointer and value encodings differ:\n%s\n%s", data, data2)
	}
}

func TestEventRejectsShadowingExtensions(t *testing.T) {
	var ev Event
	for _, key := range []string{"", "id", "message", "user_id", "self"} {
		if err := ev.SetExtension(key, 1); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
	if _, ok := ev.Extension("id"); ok {
		t.Fatalf("rejected key must not be stored")
	}

	// 直接写 map 绕过校验时，编码阶段仍会拒绝
	ev.Extensions = map[string]any{"type": "oops"}
	if _, err := json.Marshal(ev); err == nil {
		t.Fatalf("expected marshal error for shadowing extension")
	}
}

func TestPlainText(t *testing.T) {
	segs := []Segment{
		TextSegment("a"),
		{Type: SegmentImage, Data: map[string]any{"file_id": "x"}},
		TextSegment("b"),
	}
	if got := PlainText(segs); got != "ab" {
		t.Fatalf("unexpected plain text %q", got)
	}
	if PlainText(nil) != "" {
		t.Fatalf("expected empty text")
	}
}
