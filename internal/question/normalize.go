package question

import (
	"encoding/json"
	"strconv"
)

// Normalize converts a raw question-set payload into canonical questions.
// Question data comes from independently-authored JSON files with no shared
// schema, so every legacy shape is absorbed here and malformed input yields
// an empty slice, never an error.
//
// Accepted shapes:
//   - an array whose first element already has "question" and "type"
//     (pre-normalized; passed through, ids assigned where missing)
//   - an object with a "questions" array
//   - a bare array of raw records
func Normalize(payload []byte) []Question {
	var data any
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil
	}
	return NormalizeValue(data)
}

// NormalizeValue normalizes an already-decoded JSON value.
func NormalizeValue(data any) []Question {
	switch v := data.(type) {
	case []any:
		// Pre-normalized payloads take the same per-item path; it preserves
		// the given id/type/options and only fills gaps.
		return normalizeItems(v)
	case map[string]any:
		if qs, ok := v["questions"].([]any); ok {
			return normalizeItems(qs)
		}
	}
	return nil
}

func normalizeItems(items []any) []Question {
	out := make([]Question, 0, len(items))
	for i, item := range items {
		out = append(out, normalizeItem(item, i))
	}
	return out
}

func normalizeItem(item any, pos int) Question {
	q := Question{
		ID:      pos + 1, // positional fallback
		Type:    TypeMultiple,
		Options: map[string]string{},
	}
	m, ok := item.(map[string]any)
	if !ok {
		return q
	}
	if id, ok := asInt(m["id"]); ok && id > 0 {
		q.ID = id
	}
	if t, ok := m["type"].(string); ok && t != "" {
		q.Type = t
	}
	q.Question = coerceString(m["question"])
	q.Options = normalizeOptions(m["options"])
	if v, ok := m["answer"]; ok {
		q.Answer = coerceString(v)
	}
	if v, ok := m["explanation"]; ok {
		q.Explanation = coerceString(v)
	}
	return q
}

// normalizeOptions accepts either an ordered list (lettered A, B, C, ... in
// input order) or an already letter-keyed map.
func normalizeOptions(v any) map[string]string {
	switch o := v.(type) {
	case []any:
		out := make(map[string]string, len(o))
		for i, opt := range o {
			out[OptionKey(i)] = coerceString(opt)
		}
		return out
	case map[string]any:
		out := make(map[string]string, len(o))
		for k, val := range o {
			out[k] = coerceString(val)
		}
		return out
	}
	return map[string]string{}
}

// OptionKey returns the letter key for a 0-based option index: 0 -> "A".
func OptionKey(i int) string {
	return string(rune('A' + i))
}

func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return ""
	default:
		b, err := json.Marshal(s)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func asInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}
