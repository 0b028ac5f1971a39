package filter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func testPost() Record {
	return Record{
		"id":         float64(1),
		"rating":     "s",
		"created_at": time.Now().AddDate(0, 0, -10).Format(time.RFC3339),
		"fav_count":  float64(120),
		"score":      map[string]any{"up": float64(90), "down": float64(-4), "total": float64(86)},
		"tags": map[string]any{
			"general": []any{"solo", "smile"},
			"species": []any{"Wolf"},
			"artist":  []any{},
		},
		"flags": map[string]any{"deleted": false},
	}
}

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `hasTag("wolf")`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `hasTag("unclosed`,
			wantErr:    true,
		},
		{
			name:       "not boolean",
			expression: `1 + 2`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `hasTag("wolf") and score.total > 50 and rating == "s"`,
		},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := compiler.Compile(tt.expression)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error but got none")
				}
				var ce *CompilationError
				if !errors.As(err, &ce) {
					t.Errorf("expected *CompilationError, got %T", err)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if filter == nil {
				t.Fatalf("expected filter but got nil")
			}
		})
	}
}

func TestFilterEvaluation(t *testing.T) {
	post := testPost()

	tests := []struct {
		name       string
		expression string
		expected   bool
	}{
		{"has tag", `hasTag("wolf")`, true},
		{"has tag case insensitive", `hasTag("SOLO")`, true},
		{"does not have tag", `hasTag("fox")`, false},
		{"nested field", `score.total > 50`, true},
		{"top level field", `rating == "s" and fav_count >= 100`, true},
		{"tag count", `tagCount() == 3`, true},
		{"age", `daysSince(created_at) >= 9`, true},
		{"date comparison", `date(created_at) < daysAgo(5)`, true},
		{"boolean field", `not flags.deleted`, true},
		{"membership", `"Wolf" in tags.species`, true},
		{"missing field does not match", `pool.name == "x"`, false},
		{"record variable", `Record.id == 1`, true},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := compiler.Compile(tt.expression)
			if err != nil {
				t.Fatalf("failed to compile filter: %v", err)
			}

			if result := filter.Evaluate(post); result != tt.expected {
				t.Errorf("expected %v but got %v for expression %q", tt.expected, result, tt.expression)
			}
		})
	}
}

func TestTagString(t *testing.T) {
	compiler := NewExprCompiler()
	filter, err := compiler.Compile(`hasTag("canine")`)
	if err != nil {
		t.Fatal(err)
	}

	if !filter.Evaluate(Record{"tag_string": "wolf canine  solo"}) {
		t.Error("expected tag_string to be searched")
	}
}

func TestCompilerCache(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))

	first, err := compiler.Compile(`rating == "s"`)
	if err != nil {
		t.Fatal(err)
	}
	again, err := compiler.Compile(`  rating == "s"  `)
	if err != nil {
		t.Fatal(err)
	}
	if first != again {
		t.Error("expected cached filter to be reused")
	}

	_, _ = compiler.Compile(`rating == "q"`)
	_, _ = compiler.Compile(`rating == "e"`)
	if got := compiler.Size(); got != 2 {
		t.Errorf("expected cache size 2, got %d", got)
	}

	compiler.Clear()
	if got := compiler.Size(); got != 0 {
		t.Errorf("expected empty cache, got %d", got)
	}
}

func TestCustomFunctions(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"isFavorite": func(n any) bool {
			f, _ := n.(float64)
			return f > 100
		},
	}))
	filter, err := compiler.Compile(`isFavorite(fav_count)`)
	if err != nil {
		t.Fatal(err)
	}
	if !filter.Evaluate(testPost()) {
		t.Error("expected custom function to match")
	}
}

func generateTestRecords(n int) []Record {
	records := make([]Record, n)
	for i := range n {
		rating := "s"
		if i%3 == 0 {
			rating = "e"
		}
		records[i] = Record{
			"id":     float64(i),
			"rating": rating,
			"tags":   map[string]any{"general": []any{fmt.Sprintf("tag%d", i%5)}},
		}
	}
	return records
}

func TestConcurrentEvaluation(t *testing.T) {
	records := generateTestRecords(1000)

	compiler := NewExprCompiler()
	filter, err := compiler.Compile(`rating == "e" and not hasTag("tag0")`)
	if err != nil {
		t.Fatalf("failed to compile filter: %v", err)
	}

	evaluator := NewConcurrentEvaluator(WithWorkers(4), WithBatchSize(50))
	matches, err := evaluator.Evaluate(context.Background(), filter, records)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}

	expected := evaluateSequential(filter, records)
	if len(matches) != len(expected) {
		t.Fatalf("expected %d matches, got %d", len(expected), len(matches))
	}
	for i := range matches {
		if matches[i]["id"] != expected[i]["id"] {
			t.Fatalf("order differs at %d: %v != %v", i, matches[i]["id"], expected[i]["id"])
		}
	}
}

func TestConcurrentEvaluationCancelled(t *testing.T) {
	records := generateTestRecords(500)
	filter, err := NewExprCompiler().Compile(`rating == "s"`)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewConcurrentEvaluator(WithWorkers(2), WithBatchSize(10)).Evaluate(ctx, filter, records)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestManager(t *testing.T) {
	m := NewManager(WithEvaluator(NewConcurrentEvaluator(WithWorkers(2))))

	err := m.RegisterFilters(map[string]string{
		"safe":     `rating == "s"`,
		"explicit": `rating == "e"`,
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := m.ListFilters(); len(got) != 2 || got[0] != "explicit" || got[1] != "safe" {
		t.Errorf("unexpected filter names %v", got)
	}

	records := generateTestRecords(30)
	safe, err := m.Apply(context.Background(), "@safe", records)
	if err != nil {
		t.Fatal(err)
	}
	if len(safe) != 20 {
		t.Errorf("expected 20 safe records, got %d", len(safe))
	}

	inline, err := m.Apply(context.Background(), `rating == "e"`, records)
	if err != nil {
		t.Fatal(err)
	}
	if len(inline) != 10 {
		t.Errorf("expected 10 explicit records, got %d", len(inline))
	}

	_, err = m.Apply(context.Background(), "@missing", records)
	if !errors.Is(err, ErrUnknownFilter) {
		t.Errorf("expected ErrUnknownFilter, got %v", err)
	}

	if err := m.RegisterFilters(map[string]string{"bad": `rating ==`}); err == nil {
		t.Error("expected compile error")
	}
	if _, ok := m.GetFilter("bad"); ok {
		t.Error("failed filter must not be registered")
	}
}

func TestRecords(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{"bare array", `[{"id":1},{"id":2}]`, 2, false},
		{"wrapped array", `{"posts":[{"id":1}]}`, 1, false},
		{"empty wrapped", `{"tags":[]}`, 0, false},
		{"single object", `{"id":1,"name":"fox"}`, 1, false},
		{"single key object", `{"post":{"id":1}}`, 1, false},
		{"empty body", ``, 0, true},
		{"garbage", `not json`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Records([]byte(tt.body))
			if tt.wantErr {
				var de *DecodeError
				if !errors.As(err, &de) {
					t.Fatalf("expected *DecodeError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(records) != tt.want {
				t.Errorf("expected %d records, got %d", tt.want, len(records))
			}
		})
	}
}
