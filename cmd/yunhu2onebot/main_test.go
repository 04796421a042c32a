package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IMBotPlatform/yunhu2onebot/pkg/platform/yunhu"
)

const textEvent = `{"version":"1.0","header":{"eventId":"e-1","eventType":"message.receive.normal","eventTime":1748613099002},"event":{"sender":{"senderId":"6300451","senderNickname":"ShanFish"},"chat":{"chatId":"49871624","chatType":"bot"},"message":{"msgId":"m-1","contentType":"text","content":{"text":"你好"}}}}`

const commandEvent = `{"version":"1.0","header":{"eventId":"e-2","eventType":"message.receive.instruction","eventTime":1748613099003},"event":{"sender":{"senderId":"u-1"},"chat":{"chatId":"g-1","chatType":"group"},"message":{"msgId":"m-2","contentType":"text","commandId":1,"commandName":"echo","content":{"text":"/echo hello bot"}}}}`

const joinEvent = `{"version":"1.0","header":{"eventId":"e-3","eventType":"group.join","eventTime":1748613099004},"event":{"chatId":"g-1","chatType":"group","userId":"u-2","nickname":"Bob"}}`

const buttonEvent = `{"version":"1.0","header":{"eventId":"e-4","eventType":"button.report.inline","eventTime":1748613099005},"event":{"msgId":"m-9","recvId":"g-1","recvType":"group","userId":"u-3","value":"approve"}}`

const unknownEvent = `{"version":"1.0","header":{"eventId":"e-5","eventType":"bot.setting","eventTime":1748613099006},"event":{}}`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertSingleDocument(t *testing.T) {
	out, err := run(t, textEvent, "convert")
	require.NoError(t, err)

	var ev map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &ev))
	require.Equal(t, "e-1", ev["id"])
	require.Equal(t, "message", ev["type"])
	require.Equal(t, "private", ev["detail_type"])
	require.Equal(t, "你好", ev["alt_message"])
}

func TestConvertLinesWithQuery(t *testing.T) {
	input := strings.Join([]string{textEvent, "", unknownEvent, buttonEvent}, "\n")
	out, err := run(t, input, "convert", "--lines", "--query", "$.type")
	require.NoError(t, err)
	require.Equal(t, "\"message\"\n\"request\"\n", out)

	out, err = run(t, buttonEvent, "convert", "-q", "$.yunhu_button.value")
	require.NoError(t, err)
	require.Equal(t, "\"approve\"\n", out)
}

func TestConvertMalformedFails(t *testing.T) {
	_, err := run(t, `{"version":"1.0","header":{"eventType":"group.join","eventTime":1},"event":{}}`, "convert")
	require.ErrorIs(t, err, yunhu.ErrMalformedPayload)

	_, err = run(t, textEvent, "convert", "--query", "$[")
	require.Error(t, err)
}

func TestConvertWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("platform: yh\nself_id: bot-9\n"), 0o644))
	inPath := filepath.Join(dir, "event.json")
	require.NoError(t, os.WriteFile(inPath, []byte(joinEvent), 0o644))

	out, err := run(t, "", "--config", cfgPath, "convert", "-i", inPath, "--compact", "-q", "$.self")
	require.NoError(t, err)
	require.JSONEq(t, `{"platform":"yh","user_id":"bot-9"}`, out)

	_, err = run(t, "", "--config", filepath.Join(dir, "missing.yaml"), "convert", "-i", inPath)
	require.Error(t, err)
}

func TestReplayRoutesEvents(t *testing.T) {
	input := strings.Join([]string{textEvent, commandEvent, joinEvent, buttonEvent, unknownEvent}, "\n")
	out, err := run(t, input, "replay")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)

	var records []replayRecord
	for _, line := range lines {
		var rec replayRecord
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}

	require.Equal(t, replayRecord{EventID: "e-1", Kind: "message", Route: "default", Reply: "你好"}, records[0])
	require.Equal(t, replayRecord{EventID: "e-2", Kind: "message", Route: "command", Reply: "hello bot"}, records[1])
	require.Equal(t, replayRecord{EventID: "e-3", Kind: "notice", Route: "notice", Reply: "group_member_increase user=u-2 chat=g-1"}, records[2])
	require.Equal(t, replayRecord{EventID: "e-4", Kind: "request", Route: "request", Reply: "yunhu_button_click user=u-3 ext=yunhu_button"}, records[3])
	require.Contains(t, records[4].Skipped, "bot.setting")
}
