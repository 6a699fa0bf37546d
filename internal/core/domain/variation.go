package domain

import "time"

// Variation is one piece of candidate promotional copy belonging to an
// offer. Variations rotate between sends to reduce repetition; only approved
// variations are selectable. Counters are mutated exclusively by tracking
// ingest.
type Variation struct {
	ID             int64
	OfferID        int64
	TextContent    string
	CTAText        string
	Tone           string
	LengthCategory string
	Approved       bool

	Impressions int64
	Clicks      int64
	CTR         float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
