package feedback

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestClampScore(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  int
	}{
		{"in range float", float64(4), 4},
		{"in range int", 2, 2},
		{"below range", float64(0), 1},
		{"negative", float64(-3), 1},
		{"above range", float64(9), 5},
		{"string", "great", 3},
		{"nil", nil, 3},
		{"bool", true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clampScore(tt.value)
			if got != tt.want {
				t.Errorf("clampScore(%v) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateRejectsNonObject(t *testing.T) {
	if _, err := Validate("not an object"); err == nil {
		t.Error("Validate with a string payload should error")
	}
	if _, err := Validate(nil); err == nil {
		t.Error("Validate with nil should error")
	}
	if _, err := Validate([]interface{}{}); err == nil {
		t.Error("Validate with an array should error")
	}
}

func TestValidateScoresAlwaysComplete(t *testing.T) {
	// Empty object: every dimension present, all defaulted to 3
	fb, err := Validate(map[string]interface{}{})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if len(fb.Scores) != 5 {
		t.Errorf("Scores has %d dimensions, want 5", len(fb.Scores))
	}
	for dim, score := range fb.Scores {
		if score != 3 {
			t.Errorf("Scores[%s] = %d, want default 3", dim, score)
		}
	}
}

func TestValidateErrorTags(t *testing.T) {
	fb, err := Validate(map[string]interface{}{
		"error_tags": []interface{}{
			"too_vague",
			"made_up_tag",
			"missing_metric",
			42,
			"too_vague", // duplicates are kept, order preserved
		},
	})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	want := []string{"too_vague", "missing_metric", "too_vague"}
	if len(fb.ErrorTags) != len(want) {
		t.Fatalf("ErrorTags = %v, want %v", fb.ErrorTags, want)
	}
	for i, tag := range want {
		if fb.ErrorTags[i] != tag {
			t.Errorf("ErrorTags[%d] = %q, want %q", i, fb.ErrorTags[i], tag)
		}
	}
}

func TestValidateRewrites(t *testing.T) {
	rewrite := func(better string) map[string]interface{} {
		return map[string]interface{}{
			"original": "orig",
			"better":   better,
			"why":      "reason",
		}
	}

	fb, err := Validate(map[string]interface{}{
		"rewrites": []interface{}{
			rewrite("first"),
			rewrite(""), // dropped: no improved text
			"not a map", // dropped: wrong shape
			rewrite("second"),
			rewrite("third"),
			rewrite("fourth"), // over the cap of 3
		},
	})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if len(fb.Rewrites) != 3 {
		t.Fatalf("got %d rewrites, want 3", len(fb.Rewrites))
	}
	if fb.Rewrites[0].Better != "first" || fb.Rewrites[1].Better != "second" {
		t.Errorf("rewrites out of order: %+v", fb.Rewrites)
	}
}

func TestValidateRewriteTruncation(t *testing.T) {
	long := strings.Repeat("x", 600)
	fb, err := Validate(map[string]interface{}{
		"rewrites": []interface{}{
			map[string]interface{}{
				"original": long,
				"better":   long,
				"why":      long,
			},
		},
	})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	r := fb.Rewrites[0]
	if len(r.Original) != 500 || len(r.Better) != 500 {
		t.Errorf("original/better lengths = %d/%d, want 500/500", len(r.Original), len(r.Better))
	}
	if len(r.Why) != 300 {
		t.Errorf("why length = %d, want 300", len(r.Why))
	}
}

func TestValidateNextTaskDefaults(t *testing.T) {
	// Missing entirely: full default
	fb, _ := Validate(map[string]interface{}{})
	if fb.NextTask.Type != "follow_up_question" {
		t.Errorf("default type = %q, want follow_up_question", fb.NextTask.Type)
	}
	if fb.NextTask.Text != "What specific improvements can you make to your text?" {
		t.Errorf("default text = %q", fb.NextTask.Text)
	}

	// Present but missing type: type defaults, text kept
	fb, _ = Validate(map[string]interface{}{
		"next_task": map[string]interface{}{"text": "Try again with numbers."},
	})
	if fb.NextTask.Type != "follow_up_question" {
		t.Errorf("type = %q, want follow_up_question", fb.NextTask.Type)
	}
	if fb.NextTask.Text != "Try again with numbers." {
		t.Errorf("text = %q, want kept", fb.NextTask.Text)
	}

	// Wrong shape: full default, no partial merge
	fb, _ = Validate(map[string]interface{}{
		"next_task": "do something",
	})
	if fb.NextTask.Text != "What specific improvements can you make to your text?" {
		t.Errorf("non-object next_task should fall back to full default, got %q", fb.NextTask.Text)
	}
}

func TestValidateTemplates(t *testing.T) {
	fb, err := Validate(map[string]interface{}{
		"templates_to_save": []interface{}{
			map[string]interface{}{"title": "Keep", "content": "Some content"},
			map[string]interface{}{"title": "Drop", "content": ""},
			map[string]interface{}{"title": strings.Repeat("t", 300), "content": strings.Repeat("c", 1200)},
		},
	})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if len(fb.TemplatesToSave) != 2 {
		t.Fatalf("got %d templates, want 2 (empty content dropped)", len(fb.TemplatesToSave))
	}
	if len(fb.TemplatesToSave[1].Title) != 255 {
		t.Errorf("title length = %d, want 255", len(fb.TemplatesToSave[1].Title))
	}
	if len(fb.TemplatesToSave[1].Content) != 1000 {
		t.Errorf("content length = %d, want 1000", len(fb.TemplatesToSave[1].Content))
	}
}

func TestValidateIdempotent(t *testing.T) {
	raw := map[string]interface{}{
		"scores": map[string]interface{}{
			"clarity": float64(7),
			"tone":    "good",
		},
		"error_tags": []interface{}{"too_vague", "bogus"},
		"rewrites": []interface{}{
			map[string]interface{}{"original": "a", "better": "b", "why": "c"},
		},
		"next_task": map[string]interface{}{"text": "do it"},
	}

	first, err := Validate(raw)
	if err != nil {
		t.Fatalf("first Validate failed: %v", err)
	}

	// Re-validating the canonical output must be a fixed point
	encoded, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var roundTrip map[string]interface{}
	if err := json.Unmarshal(encoded, &roundTrip); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	second, err := Validate(roundTrip)
	if err != nil {
		t.Fatalf("second Validate failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Validate is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestFallback(t *testing.T) {
	input := strings.Repeat("a", 150)
	fb := Fallback(input)

	if len(fb.Scores) != 5 {
		t.Errorf("fallback scores has %d dimensions, want 5", len(fb.Scores))
	}
	for dim, score := range fb.Scores {
		if score != 3 {
			t.Errorf("fallback Scores[%s] = %d, want 3", dim, score)
		}
	}
	if len(fb.ErrorTags) != 0 {
		t.Errorf("fallback should carry no error tags, got %v", fb.ErrorTags)
	}
	if len(fb.Rewrites) != 1 {
		t.Fatalf("fallback should carry exactly one rewrite, got %d", len(fb.Rewrites))
	}
	if fb.Rewrites[0].Original != input[:100] {
		t.Errorf("fallback should echo the first 100 chars of the submission")
	}
	if fb.NextTask.Type != "follow_up_question" {
		t.Errorf("fallback next task type = %q", fb.NextTask.Type)
	}
}

func TestFallbackEchoMultibyte(t *testing.T) {
	input := strings.Repeat("你", 120)
	fb := Fallback(input)

	original := fb.Rewrites[0].Original
	if !utf8.ValidString(original) {
		t.Fatal("fallback echo is not valid UTF-8")
	}
	if got := utf8.RuneCountInString(original); got != 100 {
		t.Errorf("fallback echo has %d characters, want 100", got)
	}
	if original != string([]rune(input)[:100]) {
		t.Error("fallback echo should be the first 100 characters of the submission")
	}

	// Short input passes through untouched
	short := "résumé of the change"
	if got := Fallback(short).Rewrites[0].Original; got != short {
		t.Errorf("short submission should echo in full, got %q", got)
	}
}
