package yunhu

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/IMBotPlatform/yunhu2onebot/pkg/onebot"
)

// Outcome 区分转换结果：成功转换或类型不受支持。
type Outcome int

const (
	// OutcomeConverted 表示得到了一个 OneBot 事件。
	OutcomeConverted Outcome = iota
	// OutcomeUnsupported 表示事件结构合法但类型未注册，调用方应记录后跳过。
	OutcomeUnsupported
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConverted:
		return "converted"
	case OutcomeUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result 为一次转换的结果。错误（结构不合法）通过 Convert 的 error 返回值单独表达。
type Result struct {
	Outcome   Outcome
	EventType EventType     // 原始事件类型，便于调用方记录
	Event     *onebot.Event // 仅 OutcomeConverted 时非空
}

// OK 报告是否成功产出事件。
func (r Result) OK() bool {
	return r.Outcome == OutcomeConverted && r.Event != nil
}

// Converter 将云湖事件转换为 OneBot 12 事件。
// 创建后不再修改内部状态，可被多个 goroutine 并发使用。
type Converter struct {
	cfg    Config
	logger *log.Logger
}

// Option 自定义 Converter 行为。
type Option func(*Converter)

// WithLogger 注入日志记录器，用于记录被跳过的事件类型。
func WithLogger(l *log.Logger) Option {
	return func(c *Converter) {
		c.logger = l
	}
}

// WithConfig 覆盖默认配置。
func WithConfig(cfg Config) Option {
	return func(c *Converter) {
		c.cfg = cfg.withDefaults()
	}
}

// NewConverter 创建转换器。
func NewConverter(opts ...Option) *Converter {
	c := &Converter{cfg: DefaultConfig()}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Config 返回转换器使用的配置副本。
func (c *Converter) Config() Config {
	return c.cfg
}

// Convert 校验并转换单个事件。
//
//	payload -> Validate -> Dispatch --(未注册)--> OutcomeUnsupported
//	                          |
//	                       Handler -> OutcomeConverted
//
// 结构不合法时返回包装了 ErrMalformedPayload 的错误。
func (c *Converter) Convert(raw any) (Result, error) {
	env, err := Validate(raw)
	if err != nil {
		return Result{}, err
	}

	handler, ok := Dispatch(env.Header.EventType)
	if !ok {
		c.logf("skip unsupported event type=%s id=%s", env.Header.EventType, env.Header.EventID)
		return Result{Outcome: OutcomeUnsupported, EventType: env.Header.EventType}, nil
	}

	ev := &onebot.Event{
		ID:        env.Header.EventID,
		Time:      onebot.FromMillis(env.Header.EventTime),
		EventTime: env.Header.EventTime,
		Platform:  c.cfg.Platform,
		Self: onebot.Self{
			Platform: c.cfg.Platform,
			UserID:   c.cfg.SelfID,
		},
	}
	if err := handler(env, ev); err != nil {
		return Result{}, err
	}
	if c.cfg.IncludeRaw {
		if err := ev.SetExtension(ExtRaw, deepCopy(raw)); err != nil {
			return Result{}, err
		}
	}

	return Result{Outcome: OutcomeConverted, EventType: env.Header.EventType, Event: ev}, nil
}

// ConvertJSON 解码 JSON 后调用 Convert。数字以 json.Number 保留，避免大整数精度丢失。
// 无法解析的 JSON 同样视为 ErrMalformedPayload。
func (c *Converter) ConvertJSON(data []byte) (Result, error) {
	payload, err := DecodeJSON(data)
	if err != nil {
		return Result{}, err
	}
	return c.Convert(payload)
}

// DecodeJSON 将单个 JSON 文档解码为 Convert 可接受的结构。
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode json: %v", ErrMalformedPayload, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, malformed("trailing data after json document")
	}
	return payload, nil
}

func (c *Converter) logf(format string, args ...interface{}) {
	if c == nil || c.logger == nil {
		return
	}
	c.logger.Printf(format, args...)
}

var defaultConverter = NewConverter()

// Convert 使用默认配置转换事件。
func Convert(raw any) (Result, error) {
	return defaultConverter.Convert(raw)
}
