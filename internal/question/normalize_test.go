package question

import (
	"reflect"
	"testing"
)

// TestNormalizeArrayOptions verifies ordered option lists become letter-keyed
// maps in input order.
func TestNormalizeArrayOptions(t *testing.T) {
	payload := []byte(`[
		{"question": "Pick one", "options": ["first", "second", "third"], "answer": "B"}
	]`)
	qs := Normalize(payload)
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	want := map[string]string{"A": "first", "B": "second", "C": "third"}
	if !reflect.DeepEqual(qs[0].Options, want) {
		t.Fatalf("unexpected options: %#v", qs[0].Options)
	}
	if qs[0].Answer != "B" {
		t.Fatalf("expected answer B, got %q", qs[0].Answer)
	}
}

// TestNormalizeDefaults verifies the positional id and type fallbacks.
func TestNormalizeDefaults(t *testing.T) {
	payload := []byte(`[
		{"question": "First"},
		{"question": "Second"}
	]`)
	qs := Normalize(payload)
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	if qs[0].ID != 1 || qs[1].ID != 2 {
		t.Fatalf("expected positional ids 1,2, got %d,%d", qs[0].ID, qs[1].ID)
	}
	for _, q := range qs {
		if q.Type != TypeMultiple {
			t.Fatalf("expected default type %q, got %q", TypeMultiple, q.Type)
		}
		if q.Options == nil {
			t.Fatalf("options map must not be nil")
		}
	}
}

// TestNormalizeQuestionsField verifies the {"questions": [...]} wrapper shape.
func TestNormalizeQuestionsField(t *testing.T) {
	payload := []byte(`{"title": "Part 1", "questions": [
		{"id": 7, "question": "Wrapped", "options": {"A": "yes", "B": "no"}, "answer": "A"}
	]}`)
	qs := Normalize(payload)
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	if qs[0].ID != 7 {
		t.Fatalf("given id must be kept, got %d", qs[0].ID)
	}
	if qs[0].Options["A"] != "yes" {
		t.Fatalf("map options must pass through, got %#v", qs[0].Options)
	}
}

// TestNormalizeIdempotent verifies normalizing already-normalized data keeps
// question, type and explanation byte-identical.
func TestNormalizeIdempotent(t *testing.T) {
	payload := []byte(`[
		{"id": 1, "type": "boolean", "question": "Sky is blue?", "options": {}, "answer": "true", "explanation": "It is."}
	]`)
	first := Normalize(payload)
	second := NormalizeValue(toValue(t, first))
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("normalization not idempotent:\nfirst:  %#v\nsecond: %#v", first, second)
	}
}

// TestNormalizeMalformed verifies malformed or unexpected payloads yield an
// empty slice rather than an error.
func TestNormalizeMalformed(t *testing.T) {
	cases := map[string]string{
		"invalid json":     `{not json`,
		"object no field":  `{"title": "empty"}`,
		"scalar":           `42`,
		"null":             `null`,
		"string":           `"questions"`,
		"non-object items": `[1, 2]`,
	}
	for name, payload := range cases {
		qs := Normalize([]byte(payload))
		if name == "non-object items" {
			// Items that are not objects still occupy positions.
			if len(qs) != 2 || qs[0].Question != "" {
				t.Fatalf("%s: unexpected result %#v", name, qs)
			}
			continue
		}
		if len(qs) != 0 {
			t.Fatalf("%s: expected empty result, got %#v", name, qs)
		}
	}
}

// TestNormalizeCoercion verifies numeric and boolean fields are coerced to
// strings instead of being dropped.
func TestNormalizeCoercion(t *testing.T) {
	payload := []byte(`[
		{"question": 42, "answer": 3, "options": ["a"], "explanation": true}
	]`)
	qs := Normalize(payload)
	if qs[0].Question != "42" {
		t.Fatalf("expected question \"42\", got %q", qs[0].Question)
	}
	if qs[0].Answer != "3" {
		t.Fatalf("expected answer \"3\", got %q", qs[0].Answer)
	}
	if qs[0].Explanation != "true" {
		t.Fatalf("expected explanation \"true\", got %q", qs[0].Explanation)
	}
}

// TestRenumber verifies sequential id reassignment.
func TestRenumber(t *testing.T) {
	qs := []Question{{ID: 10}, {ID: 3}, {ID: 3}}
	Renumber(qs)
	for i, q := range qs {
		if q.ID != i+1 {
			t.Fatalf("expected id %d at %d, got %d", i+1, i, q.ID)
		}
	}
}

func toValue(t *testing.T, qs []Question) any {
	t.Helper()
	items := make([]any, 0, len(qs))
	for _, q := range qs {
		opts := map[string]any{}
		for k, v := range q.Options {
			opts[k] = v
		}
		item := map[string]any{
			"id":       float64(q.ID),
			"type":     q.Type,
			"question": q.Question,
			"options":  opts,
		}
		if q.Answer != "" {
			item["answer"] = q.Answer
		}
		if q.Explanation != "" {
			item["explanation"] = q.Explanation
		}
		items = append(items, item)
	}
	return items
}
