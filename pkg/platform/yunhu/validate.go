package yunhu

import (
	"encoding/json"
	"math"
	"strings"
)

// Validate 校验事件外层结构（version/header/event）。
// 任一必需字段缺失或类型不符时返回包装了 ErrMalformedPayload 的错误。
func Validate(payload any) (Envelope, error) {
	root, ok := payload.(map[string]any)
	if !ok {
		return Envelope{}, malformed("payload must be an object, got %T", payload)
	}

	rawVersion, ok := root["version"]
	if !ok {
		return Envelope{}, malformed("missing version")
	}
	version, ok := rawVersion.(string)
	if !ok {
		return Envelope{}, malformed("version must be a string, got %T", rawVersion)
	}

	rawHeader, ok := root["header"]
	if !ok {
		return Envelope{}, malformed("missing header")
	}
	header, ok := rawHeader.(map[string]any)
	if !ok {
		return Envelope{}, malformed("header must be an object, got %T", rawHeader)
	}

	rawBody, ok := root["event"]
	if !ok {
		return Envelope{}, malformed("missing event")
	}
	body, ok := rawBody.(map[string]any)
	if !ok {
		return Envelope{}, malformed("event must be an object, got %T", rawBody)
	}

	eventID, err := requiredString(header, "eventId")
	if err != nil {
		return Envelope{}, err
	}
	eventType, err := requiredString(header, "eventType")
	if err != nil {
		return Envelope{}, err
	}
	rawTime, ok := header["eventTime"]
	if !ok {
		return Envelope{}, malformed("missing header.eventTime")
	}
	eventTime, ok := toMillis(rawTime)
	if !ok {
		return Envelope{}, malformed("header.eventTime must be a non-negative integer, got %v", rawTime)
	}

	return Envelope{
		Version: version,
		Header: Header{
			EventID:   eventID,
			EventType: EventType(eventType),
			EventTime: eventTime,
		},
		Body: body,
	}, nil
}

func requiredString(header map[string]any, key string) (string, error) {
	raw, ok := header[key]
	if !ok {
		return "", malformed("missing header.%s", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", malformed("header.%s must be a string, got %T", key, raw)
	}
	if strings.TrimSpace(s) == "" {
		return "", malformed("header.%s is blank", key)
	}
	return s, nil
}

// toMillis 接受各种整数表示（Go 整数、整值 float64、json.Number），拒绝负数与小数。
func toMillis(v any) (int64, bool) {
	var n int64
	switch t := v.(type) {
	case int:
		n = int64(t)
	case int32:
		n = int64(t)
	case int64:
		n = t
	case uint32:
		n = int64(t)
	case uint64:
		if t > math.MaxInt64 {
			return 0, false
		}
		n = int64(t)
	case uint:
		if uint64(t) > math.MaxInt64 {
			return 0, false
		}
		n = int64(t)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) || t != math.Trunc(t) || t >= math.MaxInt64 {
			return 0, false
		}
		n = int64(t)
	case json.Number:
		parsed, err := t.Int64()
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	return n, n >= 0
}
