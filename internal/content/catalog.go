package content

import (
	"context"
	"fmt"

	"github.com/abhisek/trihelix/ent"
	"github.com/abhisek/trihelix/ent/stitch"
)

// Catalog is a Source backed by the local stitch table. It serves the
// offline-first path: content synced down earlier stays fetchable when
// the remote content service is unreachable.
type Catalog struct {
	client *ent.Client
}

// NewCatalog returns a Catalog over the given ent client.
func NewCatalog(client *ent.Client) *Catalog {
	return &Catalog{client: client}
}

// FetchBatch resolves ids against the stitch table, returning the found
// subset. Missing ids are simply absent from the result.
func (c *Catalog) FetchBatch(ctx context.Context, ids []string) (map[string]Body, error) {
	if len(ids) == 0 {
		return map[string]Body{}, nil
	}

	rows, err := c.client.Stitch.Query().
		Where(stitch.ContentIDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query stitches: %w", err)
	}

	bodies := make(map[string]Body, len(rows))
	for _, row := range rows {
		bodies[row.ContentID] = Body{
			ContentID:   row.ContentID,
			Question:    row.Question,
			Answer:      row.Answer,
			Distractors: row.Distractors,
			SourceID:    row.SourceID,
		}
	}
	return bodies, nil
}

// Put inserts or replaces a stitch body. Used by seeding and by tests.
func (c *Catalog) Put(ctx context.Context, body Body) error {
	err := c.client.Stitch.Create().
		SetContentID(body.ContentID).
		SetQuestion(body.Question).
		SetAnswer(body.Answer).
		SetDistractors(body.Distractors).
		SetSourceID(body.SourceID).
		OnConflictColumns(stitch.FieldContentID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert stitch %s: %w", body.ContentID, err)
	}
	return nil
}
