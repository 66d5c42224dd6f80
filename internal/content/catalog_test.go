package content_test

import (
	"context"
	"testing"

	"github.com/abhisek/trihelix/internal/content"
	"github.com/abhisek/trihelix/internal/store"
)

func openTestCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return content.NewCatalog(s.Client())
}

func TestCatalogPutAndFetchBatch(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	bodies := []content.Body{
		{
			ContentID: "add-01",
			Question:  "7 + 3 = ?",
			Answer:    "10",
			Distractors: map[int][]string{
				1: {"20", "0"},
				2: {"11", "9"},
			},
			SourceID: "starter-addition",
		},
		{
			ContentID: "add-02",
			Question:  "8 + 4 = ?",
			Answer:    "12",
			SourceID:  "starter-addition",
		},
	}
	for _, b := range bodies {
		if err := c.Put(ctx, b); err != nil {
			t.Fatalf("Put %s: %v", b.ContentID, err)
		}
	}

	got, err := c.FetchBatch(ctx, []string{"add-01", "add-02", "missing"})
	if err != nil {
		t.Fatalf("FetchBatch: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("fetched %d bodies, want 2", len(got))
	}
	if _, ok := got["missing"]; ok {
		t.Error("missing id should be absent, not present")
	}
	if got["add-01"].Answer != "10" {
		t.Errorf("add-01 answer = %q, want %q", got["add-01"].Answer, "10")
	}
	if len(got["add-01"].Distractors[2]) != 2 {
		t.Errorf("add-01 tier-2 distractors = %v", got["add-01"].Distractors[2])
	}
}

func TestCatalogPutUpserts(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	b := content.Body{ContentID: "sub-01", Question: "9 - 4 = ?", Answer: "5", SourceID: "starter-subtraction"}
	if err := c.Put(ctx, b); err != nil {
		t.Fatalf("Put: %v", err)
	}
	b.Question = "10 - 5 = ?"
	if err := c.Put(ctx, b); err != nil {
		t.Fatalf("Put (update): %v", err)
	}

	got, err := c.FetchBatch(ctx, []string{"sub-01"})
	if err != nil {
		t.Fatalf("FetchBatch: %v", err)
	}
	if got["sub-01"].Question != "10 - 5 = ?" {
		t.Errorf("question = %q, want updated text", got["sub-01"].Question)
	}
}

func TestCatalogFetchBatchEmpty(t *testing.T) {
	c := openTestCatalog(t)

	got, err := c.FetchBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("FetchBatch: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("fetched %d bodies, want 0", len(got))
	}
}
