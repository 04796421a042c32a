package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/spf13/cobra"

	"github.com/IMBotPlatform/yunhu2onebot/pkg/onebot"
)

type convertOptions struct {
	input   string
	lines   bool
	query   string
	compact bool
}

func newConvertCmd(root *rootOptions) *cobra.Command {
	opts := &convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert Yunhu event JSON into OneBot 12 JSON",
		Long: "Reads one Yunhu event (or JSON Lines with --lines) and prints the OneBot 12 event. " +
			"Unsupported event types are skipped; malformed payloads abort with an error.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conv, err := root.loadConverter(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			in, err := openInput(opts.input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()

			indent := !opts.compact && !opts.lines
			return readDocuments(in, opts.lines, func(lineNum int, doc []byte) error {
				res, err := conv.ConvertJSON(doc)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNum, err)
				}
				if !res.OK() {
					return nil
				}
				return emitEvent(cmd.OutOrStdout(), res.Event, opts.query, indent)
			})
		},
	}
	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "Input file (\"-\" for stdin)")
	cmd.Flags().BoolVar(&opts.lines, "lines", false, "Treat input as JSON Lines, one event per line")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "JSONPath expression applied to each converted event")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "Print compact JSON")
	return cmd
}

// emitEvent 输出事件；指定 query 时只输出 JSONPath 求值结果。
func emitEvent(w io.Writer, ev *onebot.Event, query string, indent bool) error {
	if query == "" {
		return writeJSON(w, ev, indent)
	}
	value, err := queryEvent(ev, query)
	if err != nil {
		return err
	}
	return writeJSON(w, value, indent)
}

// queryEvent 对事件的 JSON 形态执行 JSONPath 查询。
func queryEvent(ev *onebot.Event, query string) (interface{}, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	value, err := jsonpath.Get(query, doc)
	if err != nil {
		return nil, fmt.Errorf("jsonpath %q: %w", query, err)
	}
	return value, nil
}
