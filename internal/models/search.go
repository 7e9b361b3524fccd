package models

// Citation is a verse returned by semantic search with its relevance score
type Citation struct {
	VerseID        string   `json:"verse_id" db:"verse_id"`
	Translation    string   `json:"translation" db:"translation"`
	Book           string   `json:"book" db:"book"`
	Chapter        int      `json:"chapter" db:"chapter"`
	Verse          int      `json:"verse" db:"verse"`
	Text           string   `json:"text" db:"text"`
	RelevanceScore *float64 `json:"relevance_score,omitempty" db:"relevance_score"`
}

// ScoredVerse is a verse with its cosine similarity to a query
type ScoredVerse struct {
	VerseID     string  `db:"verse_id"`
	Translation string  `db:"translation"`
	Book        string  `db:"book"`
	Chapter     int     `db:"chapter"`
	Verse       int     `db:"verse"`
	Text        string  `db:"text"`
	Score       float64 `db:"score"`
}

// SemanticSearchRequest is the request for semantic search
type SemanticSearchRequest struct {
	Query       string `json:"query"`
	Translation string `json:"translation"`
	Limit       int    `json:"limit"`
}

// SemanticSearchResponse is the response for semantic search
type SemanticSearchResponse struct {
	Query   string     `json:"query"`
	Results []Citation `json:"results"`
}
