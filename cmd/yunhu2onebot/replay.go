package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IMBotPlatform/yunhu2onebot/pkg/botcore"
	"github.com/IMBotPlatform/yunhu2onebot/pkg/command"
	"github.com/IMBotPlatform/yunhu2onebot/pkg/onebot"
	"github.com/IMBotPlatform/yunhu2onebot/pkg/platform/yunhu"
)

// replayRecord 是 replay 每处理一个事件输出的一行结果。
type replayRecord struct {
	EventID string `json:"event_id"`
	Kind    string `json:"kind"`
	Route   string `json:"route"`
	Reply   string `json:"reply,omitempty"`
	Skipped string `json:"skipped,omitempty"`
}

func newReplayCmd(root *rootOptions) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Feed Yunhu events (JSON Lines) through a sample bot pipeline",
		Long: "Converts each event, routes the resulting update through a botcore chain " +
			"(commands, notices, requests, fallback echo) and prints one JSON result per event.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conv, err := root.loadConverter(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			in, err := openInput(input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()

			r := newReplayer(conv)
			out := cmd.OutOrStdout()
			return readDocuments(in, true, func(lineNum int, doc []byte) error {
				record, err := r.handle(doc)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNum, err)
				}
				return writeJSON(out, record, false)
			})
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "Input JSON Lines file (\"-\" for stdin)")
	return cmd
}

// replayer 串联 Adapter -> Chain -> Emitter。
type replayer struct {
	adapter botcore.Adapter
	chain   *botcore.Chain
	emitter botcore.Emitter
	seq     int
}

func newReplayer(conv *yunhu.Converter) *replayer {
	prefix := conv.Config().CommandPrefix
	manager := command.NewManager(newBotCommands, command.NewMemoryStore(), command.WithPrefix(prefix))

	chain := botcore.NewChain(echoHandler())
	chain.AddRoute("command", botcore.MatchAll(botcore.MatchKind(onebot.TypeMessage), botcore.MatchPrefix(prefix)), manager)
	chain.AddRoute("notice", botcore.MatchKind(onebot.TypeNotice), noticeHandler())
	chain.AddRoute("request", botcore.MatchKind(onebot.TypeRequest), requestHandler())

	return &replayer{
		adapter: yunhu.MessageAdapter{Converter: conv},
		chain:   chain,
		emitter: botcore.EmitterFunc(func(update botcore.Update, streamID string, chunk botcore.StreamChunk) (interface{}, error) {
			if chunk.Payload == botcore.NoResponse {
				return "", nil
			}
			return chunk.Content, nil
		}),
	}
}

// handle 处理单个事件文档。类型不受支持时输出 skipped 记录而非报错。
func (r *replayer) handle(doc []byte) (replayRecord, error) {
	update, err := r.adapter.Normalize(doc)
	if errors.Is(err, botcore.ErrSkip) {
		return replayRecord{Skipped: err.Error()}, nil
	}
	if err != nil {
		return replayRecord{}, err
	}

	r.seq++
	streamID := fmt.Sprintf("replay-%d", r.seq)
	record := replayRecord{
		EventID: update.Metadata["event_id"],
		Kind:    update.Kind,
		Route:   r.chain.Match(update),
	}
	if record.Route == "" {
		record.Route = "default"
	}

	var reply strings.Builder
	for chunk := range r.stream(update, streamID) {
		encoded, err := r.emitter.Encode(update, streamID, chunk)
		if err != nil {
			return replayRecord{}, err
		}
		if s, ok := encoded.(string); ok {
			reply.WriteString(s)
		}
	}
	record.Reply = strings.TrimRight(reply.String(), "\n")
	return record, nil
}

func (r *replayer) stream(update botcore.Update, streamID string) <-chan botcore.StreamChunk {
	ch := r.chain.Trigger(update, streamID)
	if ch == nil {
		closed := make(chan botcore.StreamChunk)
		close(closed)
		return closed
	}
	return ch
}

// newBotCommands 构建示例命令树。
func newBotCommands() *cobra.Command {
	root := &cobra.Command{
		Use:           "bot",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(&cobra.Command{
		Use:   "ping",
		Short: "健康检查",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("pong")
			return nil
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "echo <text>",
		Short: "回显输入文本",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(strings.Join(args, " "))
			return nil
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "whoami",
		Short: "显示触发者与会话",
		RunE: func(cmd *cobra.Command, args []string) error {
			execCtx := command.FromContext(cmd.Context())
			if execCtx == nil {
				return errors.New("missing execution context")
			}
			u := execCtx.Update
			cmd.Printf("user=%s chat=%s(%s)\n", u.SenderID, u.ChatID, u.ChatType)
			return nil
		},
	})
	return root
}

func replyOnce(text string) <-chan botcore.StreamChunk {
	out := make(chan botcore.StreamChunk, 1)
	out <- botcore.StreamChunk{Content: text, IsFinal: true}
	close(out)
	return out
}

func echoHandler() botcore.Handler {
	return botcore.PipelineFunc(func(update botcore.Update, streamID string) <-chan botcore.StreamChunk {
		text := update.Text
		if text == "" {
			text = update.Metadata["alt_message"]
		}
		return replyOnce(text)
	})
}

func noticeHandler() botcore.Handler {
	return botcore.PipelineFunc(func(update botcore.Update, streamID string) <-chan botcore.StreamChunk {
		return replyOnce(fmt.Sprintf("%s user=%s chat=%s", update.Metadata["detail_type"], update.SenderID, update.ChatID))
	})
}

func requestHandler() botcore.Handler {
	return botcore.PipelineFunc(func(update botcore.Update, streamID string) <-chan botcore.StreamChunk {
		ev, ok := update.Raw.(*onebot.Event)
		if !ok {
			return replyOnce("")
		}
		for key := range ev.Extensions {
			if strings.HasPrefix(key, yunhu.ExtensionPrefix) && key != yunhu.ExtRaw {
				return replyOnce(fmt.Sprintf("%s user=%s ext=%s", ev.DetailType, ev.UserID, key))
			}
		}
		return replyOnce(ev.DetailType)
	})
}
