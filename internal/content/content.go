// Package content defines the materialized content body and the source
// the buffer manager fetches bodies from. The scheduler core never
// reads bodies; it schedules content ids and leaves materialization to
// this boundary.
package content

import "context"

// Body is the full payload for one stitch: the question to present,
// the accepted answer, and wrong-answer distractors keyed by tier.
type Body struct {
	ContentID   string           `json:"content_id"`
	Question    string           `json:"question"`
	Answer      string           `json:"answer"`
	Distractors map[int][]string `json:"distractors,omitempty"`
	SourceID    string           `json:"source_id,omitempty"`
}

// Source provides batched access to content bodies. A partial result is
// not an error: implementations return whatever subset of ids they
// could resolve, and callers treat missing ids as retryable.
type Source interface {
	FetchBatch(ctx context.Context, ids []string) (map[string]Body, error)
}
