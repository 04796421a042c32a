package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// maxLineSize 限制单条事件的最大字节数。
const maxLineSize = 5 * 1024 * 1024

// openInput 打开输入文件，"-" 或空串表示 stdin。
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// readDocuments 读取输入中的事件文档。lines 为 true 时按 JSON Lines 逐行读取并跳过空行，
// 否则整个输入视为单个文档。fn 返回错误时立即停止。
func readDocuments(r io.Reader, lines bool, fn func(lineNum int, doc []byte) error) error {
	if !lines {
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		return fn(1, data)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := fn(lineNum, append([]byte(nil), line...)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan input: %w", err)
	}
	return nil
}

// writeJSON 输出一个 JSON 值；indent 为 false 时单行输出（适合 JSON Lines）。
func writeJSON(w io.Writer, value interface{}, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}
	return nil
}
