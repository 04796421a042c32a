package command

import (
	"strings"
)

// fullWidthSlash 是中文输入法下常见的全角斜杠，默认前缀下视同 "/"。
const fullWidthSlash = "／"

// ParseResult 承载文本命令解析后的结构化结果。
type ParseResult struct {
	IsCommand   bool     // 是否检测到命令前缀
	Name        string   // 命令名（不含前缀与 @ 后缀）
	Tokens      []string // 解析后的命令及参数 token（包含命令本身）
	Raw         string   // 原始输入文本
	ArgumentRaw string   // 去除命令后的原始参数串
}

// Parser 解析消息文本，判定是否命令并拆分 token。
type Parser struct {
	Prefix string // 命令前缀，默认 "/"
}

// NewParser 创建带默认前缀的解析器。
func NewParser() Parser {
	return Parser{Prefix: "/"}
}

// Parse 将文本拆解为命令 token。
// "/name@bot a b" 解析为 Name="name"、Tokens=[name a b]、ArgumentRaw="a b"。
func (p Parser) Parse(text string) ParseResult {
	result := ParseResult{Raw: text}
	trimmed := strings.TrimSpace(text)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return result
	}

	first := fields[0]
	name, ok := p.stripPrefix(first)
	if !ok {
		return result
	}
	if idx := strings.IndexRune(name, '@'); idx >= 0 {
		name = name[:idx]
	}
	if name == "" {
		return result
	}

	result.IsCommand = true
	result.Name = name
	result.Tokens = append([]string{name}, fields[1:]...)
	result.ArgumentRaw = strings.TrimSpace(strings.TrimPrefix(trimmed, first))
	return result
}

// stripPrefix 去掉命令前缀，返回剩余部分以及是否带有前缀。
func (p Parser) stripPrefix(token string) (string, bool) {
	prefix := p.Prefix
	if prefix == "" {
		prefix = "/"
	}
	if strings.HasPrefix(token, prefix) && len(token) > len(prefix) {
		return strings.TrimPrefix(token, prefix), true
	}
	if prefix == "/" && strings.HasPrefix(token, fullWidthSlash) && len(token) > len(fullWidthSlash) {
		return strings.TrimPrefix(token, fullWidthSlash), true
	}
	return "", false
}
