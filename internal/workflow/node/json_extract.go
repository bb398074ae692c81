package node

import (
	"encoding/json"
	"strings"
)

// ExtractJSONObject 尝试从模型输出中截取第一个完整 JSON 对象。
// 模型可能会在 JSON 前后夹杂多余文本（围栏、说明等），
// 这里取第一个 '{' 到最后一个 '}' 的子串并做最小校验。
// 找不到可用的 JSON 起始时返回空串，由调用方决定兜底策略。
func ExtractJSONObject(s string) string {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return ""
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return ""
	}
	raw = raw[start : end+1]

	// 简单校验：确保 Decoder 至少能消费到一个对象起始
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return ""
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return ""
	}
	return raw
}
