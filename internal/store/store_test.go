package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestTablesCreated(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{tableSettings, tableLLMEvents} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s not found: %v", table, err)
		}
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")
	for i := 0; i < 2; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("open #%d: %v", i+1, err)
		}
		s.Close()
	}
}

func TestSettingsGetMissing(t *testing.T) {
	s := openTestStore(t)
	_, ok, err := s.SettingsRepo().GetSetting(context.Background(), "theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected missing setting")
	}
}

func TestSettingsSetOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingsRepo()
	ctx := context.Background()

	if err := repo.SetSetting(ctx, "theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.SetSetting(ctx, "theme", "light"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, ok, err := repo.GetSetting(ctx, "theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got != "light" {
		t.Errorf("got (%q, %v), want (\"light\", true)", got, ok)
	}

	var rows int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM settings").Scan(&rows); err != nil {
		t.Fatalf("count: %v", err)
	}
	if rows != 1 {
		t.Errorf("rows = %d, want 1", rows)
	}
}

func TestSettingsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.SettingsRepo().SetSetting(ctx, "theme", "light"); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, ok, err := s.SettingsRepo().GetSetting(ctx, "theme")
	if err != nil || !ok || got != "light" {
		t.Errorf("after reopen got (%q, %v, %v)", got, ok, err)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "analysis", InputTokens: 100, OutputTokens: 40, LatencyMs: 900, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "analysis", InputTokens: 80, OutputTokens: 0, LatencyMs: 300, Success: false, ErrorMessage: "boom"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "unknown", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	if all[0].Model != "gpt-4o-mini" {
		t.Errorf("expected newest first, got %q", all[0].Model)
	}
	if all[1].Success || all[1].ErrorMessage != "boom" {
		t.Errorf("failed event not round-tripped: %+v", all[1])
	}
	if all[2].Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1, Purpose: "analysis"})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 || limited[0].Purpose != "analysis" {
		t.Errorf("limited query = %+v", limited)
	}

	one, err := repo.GetLLMEvent(ctx, all[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if one == nil || one.InputTokens != 100 {
		t.Errorf("get returned %+v", one)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Provider: "gemini", Model: "m1", Purpose: "analysis", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "gemini", Model: "m1", Purpose: "analysis", InputTokens: 20, OutputTokens: 10, LatencyMs: 400, Success: true},
		{Provider: "gemini", Model: "m2", Purpose: "unknown", InputTokens: 1, OutputTokens: 1, LatencyMs: 10, Success: true},
	} {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("len = %d, want 2", len(byPurpose))
	}
	a := byPurpose[0]
	if a.Purpose != "analysis" || a.Calls != 2 || a.InputTokens != 120 || a.OutputTokens != 60 || a.AvgLatencyMs != 300 {
		t.Errorf("analysis usage = %+v", a)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("by model: %v", err)
	}
	if len(byModel) != 2 || byModel[1].Model != "m2" || byModel[1].Calls != 1 {
		t.Errorf("model usage = %+v", byModel)
	}
}

func TestDefaultDBPathUsesEnv(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("LEARNSENSE_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDefaultDBPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEARNSENSE_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if want := filepath.Join(dir, "learnsense", "learnsense.db"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
