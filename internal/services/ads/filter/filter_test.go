package filter

import (
	"strings"
	"testing"
)

func TestParseRecommendationFilterEmpty(t *testing.T) {
	cond, err := ParseRecommendationFilter("   ")
	if err != nil {
		t.Fatalf("ParseRecommendationFilter() error = %v", err)
	}
	if cond.Clause != "" || len(cond.Params) != 0 {
		t.Fatalf("condition = %+v, want empty", cond)
	}
}

func TestParseRecommendationFilterEquality(t *testing.T) {
	cond, err := ParseRecommendationFilter(`status = "approved"`)
	if err != nil {
		t.Fatalf("ParseRecommendationFilter() error = %v", err)
	}
	if cond.Clause != "status = ?" {
		t.Fatalf("Clause = %q, want status = ?", cond.Clause)
	}
	if len(cond.Params) != 1 || cond.Params[0] != "approved" {
		t.Fatalf("Params = %v, want [approved]", cond.Params)
	}
}

func TestParseRecommendationFilterAnd(t *testing.T) {
	cond, err := ParseRecommendationFilter(`channel = "google" AND kind = "headline"`)
	if err != nil {
		t.Fatalf("ParseRecommendationFilter() error = %v", err)
	}
	if cond.Clause != "(channel = ? AND kind = ?)" {
		t.Fatalf("Clause = %q", cond.Clause)
	}
	if len(cond.Params) != 2 {
		t.Fatalf("Params = %v, want 2 params", cond.Params)
	}
}

func TestParseRecommendationFilterOr(t *testing.T) {
	cond, err := ParseRecommendationFilter(`status = "approved" OR status = "pending"`)
	if err != nil {
		t.Fatalf("ParseRecommendationFilter() error = %v", err)
	}
	if cond.Clause != "(status = ? OR status = ?)" {
		t.Fatalf("Clause = %q", cond.Clause)
	}
}

func TestParseRecommendationFilterTimestamp(t *testing.T) {
	cond, err := ParseRecommendationFilter(`create_time >= timestamp("2026-01-01T00:00:00Z")`)
	if err != nil {
		t.Fatalf("ParseRecommendationFilter() error = %v", err)
	}
	if cond.Clause != "created_at >= ?" {
		t.Fatalf("Clause = %q", cond.Clause)
	}
	millis, ok := cond.Params[0].(int64)
	if !ok {
		t.Fatalf("Params[0] = %T, want int64 millis", cond.Params[0])
	}
	if millis != 1767225600000 {
		t.Fatalf("Params[0] = %d, want unix millis for 2026-01-01", millis)
	}
}

func TestParseRecommendationFilterUnknownField(t *testing.T) {
	_, err := ParseRecommendationFilter(`budget = "100"`)
	if err == nil {
		t.Fatal("ParseRecommendationFilter() error = nil, want unknown field error")
	}
}

func TestParseRecommendationFilterMalformed(t *testing.T) {
	_, err := ParseRecommendationFilter(`status = `)
	if err == nil {
		t.Fatal("ParseRecommendationFilter() error = nil, want parse error")
	}
	if !strings.Contains(err.Error(), "parse filter") {
		t.Fatalf("error = %v, want parse filter wrap", err)
	}
}
