package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/asif-merchant/leadintel/internal/dataset"
	"github.com/asif-merchant/leadintel/internal/scoring"
)

func setupTestDB(t *testing.T) (*DB, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "leadintel-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := Open(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to open database: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return db, cleanup
}

func sampleLeads() []Lead {
	return []Lead{
		{LeadID: "L-1", Name: "Ayesha", Location: "Dubai", Areas: "JVC, Dubai Marina",
			Score: 92, Tag: "Hot", Reasoning: "recent activity", NextAction: "call"},
		{LeadID: "L-2", Name: "Omar", Location: "Sharjah", Areas: "JVC",
			Score: 65, Tag: "Warm", Reasoning: "activity recorded", NextAction: "message"},
		{LeadID: "L-3", Name: "Noor", Location: "Abu Dhabi", Areas: "",
			Score: 30, Tag: "Cold", Reasoning: "activity recorded", NextAction: "nurture"},
	}
}

func TestOpen(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	if db == nil {
		t.Fatal("expected non-nil database")
	}

	// Verify tables exist
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='leads'").Scan(&count)
	if err != nil {
		t.Fatalf("failed to query tables: %v", err)
	}
	if count != 1 {
		t.Errorf("expected leads table to exist")
	}
}

func TestReplaceAndListLeads(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := db.ReplaceLeads(ctx, sampleLeads()); err != nil {
		t.Fatalf("ReplaceLeads failed: %v", err)
	}

	leads, err := db.ListLeads(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("ListLeads failed: %v", err)
	}
	if len(leads) != 3 {
		t.Fatalf("got %d leads, want 3", len(leads))
	}

	// default ordering is score descending
	if leads[0].LeadID != "L-1" || leads[2].LeadID != "L-3" {
		t.Errorf("unexpected order: %s, %s, %s", leads[0].LeadID, leads[1].LeadID, leads[2].LeadID)
	}

	// replacing again drops the old snapshot
	if err := db.ReplaceLeads(ctx, sampleLeads()[:1]); err != nil {
		t.Fatalf("second ReplaceLeads failed: %v", err)
	}
	leads, err = db.ListLeads(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("ListLeads failed: %v", err)
	}
	if len(leads) != 1 {
		t.Errorf("got %d leads after replace, want 1", len(leads))
	}
}

func TestReplaceLeadsGeneratesIDs(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	leads := []Lead{{Name: "Anon", Score: 50, Tag: "Cold"}}
	if err := db.ReplaceLeads(ctx, leads); err != nil {
		t.Fatalf("ReplaceLeads failed: %v", err)
	}

	stored, err := db.ListLeads(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("ListLeads failed: %v", err)
	}
	if stored[0].LeadID == "" {
		t.Error("expected generated lead ID")
	}
}

func TestReplaceLeadsDuplicateIDs(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	// lead_id is opaque source data; duplicates are valid input
	leads := []Lead{
		{LeadID: "L-1", Name: "Ayesha", Score: 92, Tag: "Hot"},
		{LeadID: "L-1", Name: "Ayesha (retargeted)", Score: 40, Tag: "Cold"},
		{LeadID: "L-1", Name: "Ayesha (organic)", Score: 70, Tag: "Warm"},
	}
	if err := db.ReplaceLeads(ctx, leads); err != nil {
		t.Fatalf("ReplaceLeads failed: %v", err)
	}

	stored, err := db.ListLeadsInOrder(ctx)
	if err != nil {
		t.Fatalf("ListLeadsInOrder failed: %v", err)
	}
	if len(stored) != 3 {
		t.Fatalf("got %d leads, want all 3 duplicate-ID rows", len(stored))
	}
	for i, want := range []string{"Ayesha", "Ayesha (retargeted)", "Ayesha (organic)"} {
		if stored[i].Name != want {
			t.Errorf("row %d = %q, want %q", i, stored[i].Name, want)
		}
	}

	// lookup by a duplicated ID returns the earliest row
	lead, err := db.GetLead(ctx, "L-1")
	if err != nil {
		t.Fatalf("GetLead failed: %v", err)
	}
	if lead == nil || lead.Name != "Ayesha" {
		t.Errorf("GetLead = %v, want earliest L-1 row", lead)
	}
}

func TestListLeadsFilters(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := db.ReplaceLeads(ctx, sampleLeads()); err != nil {
		t.Fatalf("ReplaceLeads failed: %v", err)
	}

	minScore := 60
	leads, err := db.ListLeads(ctx, ListOptions{MinScore: &minScore})
	if err != nil {
		t.Fatalf("ListLeads failed: %v", err)
	}
	if len(leads) != 2 {
		t.Errorf("min-score filter: got %d leads, want 2", len(leads))
	}

	tag := "Warm"
	leads, err = db.ListLeads(ctx, ListOptions{Tag: &tag})
	if err != nil {
		t.Fatalf("ListLeads failed: %v", err)
	}
	if len(leads) != 1 || leads[0].LeadID != "L-2" {
		t.Errorf("tag filter: got %v", leads)
	}

	area := "Dubai Marina"
	leads, err = db.ListLeads(ctx, ListOptions{Area: &area})
	if err != nil {
		t.Fatalf("ListLeads failed: %v", err)
	}
	if len(leads) != 1 || leads[0].LeadID != "L-1" {
		t.Errorf("area filter: got %v", leads)
	}

	leads, err = db.ListLeads(ctx, ListOptions{Limit: 2})
	if err != nil {
		t.Fatalf("ListLeads failed: %v", err)
	}
	if len(leads) != 2 {
		t.Errorf("limit: got %d leads, want 2", len(leads))
	}
}

func TestListLeadsInOrder(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	// input order differs from score order
	if err := db.ReplaceLeads(ctx, sampleLeads()); err != nil {
		t.Fatalf("ReplaceLeads failed: %v", err)
	}

	leads, err := db.ListLeadsInOrder(ctx)
	if err != nil {
		t.Fatalf("ListLeadsInOrder failed: %v", err)
	}

	for i, want := range []string{"L-1", "L-2", "L-3"} {
		if leads[i].LeadID != want {
			t.Errorf("row %d = %s, want %s", i, leads[i].LeadID, want)
		}
	}
}

func TestGetLead(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := db.ReplaceLeads(ctx, sampleLeads()); err != nil {
		t.Fatalf("ReplaceLeads failed: %v", err)
	}

	lead, err := db.GetLead(ctx, "L-2")
	if err != nil {
		t.Fatalf("GetLead failed: %v", err)
	}
	if lead == nil || lead.Name != "Omar" {
		t.Errorf("GetLead = %v", lead)
	}

	lead, err = db.GetLead(ctx, "missing")
	if err != nil {
		t.Fatalf("GetLead failed: %v", err)
	}
	if lead != nil {
		t.Errorf("expected nil for missing lead, got %v", lead)
	}

	lead, err = db.GetLeadByName(ctx, "noor")
	if err != nil {
		t.Fatalf("GetLeadByName failed: %v", err)
	}
	if lead == nil || lead.LeadID != "L-3" {
		t.Errorf("GetLeadByName = %v", lead)
	}
}

func TestGetStats(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	// empty database: all zero
	stats, err := db.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalLeads != 0 || stats.Hot != 0 || stats.Warm != 0 || stats.Cold != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	if err := db.ReplaceLeads(ctx, sampleLeads()); err != nil {
		t.Fatalf("ReplaceLeads failed: %v", err)
	}

	stats, err = db.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalLeads != 3 || stats.Hot != 1 || stats.Warm != 1 || stats.Cold != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Hot+stats.Warm+stats.Cold != stats.TotalLeads {
		t.Errorf("tier counts do not partition total: %+v", stats)
	}
	if stats.MaxScore != 92 {
		t.Errorf("max score = %d, want 92", stats.MaxScore)
	}
}

func TestLeadRecordRoundTrip(t *testing.T) {
	row := dataset.Record{
		scoring.ColLeadID:         "L-9",
		scoring.ColName:           "Fatima",
		scoring.ColLocation:       "Dubai",
		scoring.ColAreas:          "Business Bay",
		scoring.ColBehavior:       "visited site|asked about payment plan",
		scoring.ColScore:          "77",
		scoring.ColTag:            "Warm",
		scoring.ColReasoning:      "recent activity",
		scoring.ColNextAction:     "message",
		scoring.ColLastSeenDays:   "2",
		scoring.ColSearchesLast7d: "4",
	}

	lead := FromRecord(row)
	if lead.Score != 77 || lead.Name != "Fatima" || lead.Behavior == "" {
		t.Fatalf("FromRecord = %+v", lead)
	}

	back := lead.ToRecord()
	for _, col := range []string{
		scoring.ColLeadID, scoring.ColName, scoring.ColLocation, scoring.ColAreas,
		scoring.ColBehavior, scoring.ColScore, scoring.ColTag,
		scoring.ColReasoning, scoring.ColNextAction,
		scoring.ColLastSeenDays, scoring.ColSearchesLast7d,
	} {
		if back.Get(col) != row.Get(col) {
			t.Errorf("column %q = %q, want %q", col, back.Get(col), row.Get(col))
		}
	}
}

func TestBehaviorNotes(t *testing.T) {
	tests := []struct {
		behavior string
		want     int
	}{
		{"visited site|asked about payment plan", 2},
		{"single note", 1},
		{"", 0},
		{" | | ", 0},
	}

	for _, tt := range tests {
		l := Lead{Behavior: tt.behavior}
		if got := len(l.BehaviorNotes()); got != tt.want {
			t.Errorf("BehaviorNotes(%q) = %d notes, want %d", tt.behavior, got, tt.want)
		}
	}
}
