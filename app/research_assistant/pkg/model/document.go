package model

import (
	"bytes"
	"encoding/json"
)

// 模型输出的 JSON 结构并不稳定，以下类型在解码时尽量保留内容而不是报错：
// 非字符串元素转成紧凑的 JSON 文本，未知字段直接忽略。

// StringList 宽松解码的字符串列表
type StringList []string

// UnmarshalJSON 接受字符串数组、任意元素数组或单个值
func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case isNull(data):
		*l = nil
		return nil
	case data[0] == '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		out := make(StringList, 0, len(items))
		for _, item := range items {
			out = append(out, stringify(item))
		}
		*l = out
		return nil
	default:
		*l = StringList{stringify(data)}
		return nil
	}
}

// ImpactOverall 模型把业务影响写成单个值时使用的键
const ImpactOverall = "overall"

// 业务影响的时间范围
const (
	HorizonShortTerm  = "short_term"
	HorizonMediumTerm = "medium_term"
	HorizonLongTerm   = "long_term"
)

// Impact 按时间范围划分的业务影响
type Impact map[string]string

// UnmarshalJSON 接受对象（值可为任意类型）或单个值
func (m *Impact) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case isNull(data):
		*m = nil
		return nil
	case data[0] == '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		out := make(Impact, len(fields))
		for k, v := range fields {
			out[k] = stringify(v)
		}
		*m = out
		return nil
	default:
		*m = Impact{ImpactOverall: stringify(data)}
		return nil
	}
}

// UnmarshalJSON 非对象元素原样保留，由格式化阶段报告
func (r *Recommendation) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		*r = Recommendation{raw: append(json.RawMessage(nil), data...)}
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*r = Recommendation{
		Action:    stringify(fields["action"]),
		Rationale: stringify(fields["rationale"]),
		Priority:  stringify(fields["priority"]),
		Timeline:  stringify(fields["timeline"]),
	}
	return nil
}

// MarshalJSON 非对象元素按原样输出
func (r Recommendation) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	type plain Recommendation
	return json.Marshal(plain(r))
}

func isNull(data []byte) bool {
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}

func stringify(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
