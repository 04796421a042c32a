package command

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/IMBotPlatform/yunhu2onebot/pkg/botcore"
)

const commandLogSnippet = 256

// Manager 实现 PipelineInvoker，负责串联解析、构建 Cobra 命令树并执行。
type Manager struct {
	factory CommandFactory
	parser  Parser
	store   ConversationStore
	logger  *log.Logger
}

// ManagerOption 自定义 Manager 行为。
type ManagerOption func(*Manager)

// WithLogger 注入自定义日志记录器。
func WithLogger(l *log.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = l
	}
}

// WithPrefix 覆盖命令前缀（默认 "/"）。
func WithPrefix(prefix string) ManagerOption {
	return func(m *Manager) {
		if prefix != "" {
			m.parser.Prefix = prefix
		}
	}
}

// NewManager 绑定命令工厂与存储，返回实现 PipelineInvoker 的管理器。
func NewManager(factory CommandFactory, store ConversationStore, opts ...ManagerOption) *Manager {
	mgr := &Manager{
		factory: factory,
		parser:  NewParser(),
		store:   store,
	}
	for _, opt := range opts {
		opt(mgr)
	}
	return mgr
}

// Parse 暴露内部解析器，便于路由层判断文本是否为命令。
func (m *Manager) Parse(text string) ParseResult {
	return m.parser.Parse(text)
}

// Trigger 满足 botcore.PipelineInvoker，为每个请求构建独立的命令树并执行。
func (m *Manager) Trigger(update botcore.Update, streamID string) <-chan botcore.StreamChunk {
	out := make(chan botcore.StreamChunk, 1)
	go func() {
		defer close(out)

		if m == nil || m.factory == nil {
			out <- botcore.StreamChunk{Content: "Error: Command Manager not initialized", IsFinal: true}
			return
		}

		// 1. 初步解析
		parsed := m.parser.Parse(update.Text)
		if !parsed.IsCommand {
			if strings.TrimSpace(update.Text) == "" {
				out <- botcore.StreamChunk{Content: fmt.Sprintf("%v: 请输入命令 (e.g. %shelp)", ErrCommandRequired, m.parser.Prefix), IsFinal: true}
			} else {
				out <- botcore.StreamChunk{Content: fmt.Sprintf("%v: %s", ErrCommandNotFound, truncateForLog(parsed.Raw, commandLogSnippet)), IsFinal: true}
			}
			return
		}

		// 2. 创建 Cobra 命令树，并把输出重定向到流
		rootCmd := m.factory()
		writer := NewStreamWriter(out)
		rootCmd.SetOut(writer)
		rootCmd.SetErr(writer)
		rootCmd.CompletionOptions.DisableDefaultCmd = true

		// 3. 准备上下文；sync.Once 保证终结信号只发送一次
		var signalOnce sync.Once
		sendSignal := func(chunk botcore.StreamChunk) {
			signalOnce.Do(func() {
				out <- chunk
			})
		}

		execCtx := &ExecutionContext{
			Update:     update,
			StreamID:   streamID,
			Store:      m.store,
			sendSignal: sendSignal,
		}

		convKey := execCtx.ConversationKey()
		if m.store != nil {
			if values, err := m.store.Load(convKey); err != nil {
				m.logf("上下文加载失败: %v", err)
			} else {
				execCtx.Values = values
			}
		}

		ctx := WithExecutionContext(context.Background(), execCtx)

		// 4. 设置参数并执行
		args := parsed.Tokens
		// 第一个 token 与根命令同名时移除，避免 "unknown command X for X"
		if len(args) > 0 && strings.EqualFold(args[0], rootCmd.Name()) {
			args = args[1:]
		}
		rootCmd.SetArgs(args)
		m.logf("Executing command: %v for user %s", args, update.SenderID)

		if err := rootCmd.ExecuteContext(ctx); err != nil {
			m.logf("Command execution error: %v", err)
			out <- botcore.StreamChunk{Content: fmt.Sprintf("❌ 执行出错: %v\n", err)}
		}

		// 兜底的结束包；StreamWriter 只发送非 Final 片段。
		signalOnce.Do(func() {
			out <- botcore.StreamChunk{Content: "", IsFinal: true}
		})
	}()
	return out
}

func (m *Manager) logf(format string, args ...interface{}) {
	if m == nil || m.logger == nil {
		return
	}
	m.logger.Printf(format, args...)
}

// truncateForLog 限制输出的文本长度。
func truncateForLog(src string, limit int) string {
	if limit <= 0 || len(src) <= limit {
		return src
	}
	return fmt.Sprintf("%s...(truncated)", src[:limit])
}
