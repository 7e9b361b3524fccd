package vertex

import (
	"encoding/json"
	"fmt"
	"io"
)

// Datapoint is one line of a Vertex AI Vector Search JSONL import file
type Datapoint struct {
	ID        string     `json:"id"`
	Embedding []float32  `json:"embedding"`
	Restricts []Restrict `json:"restricts,omitempty"`
}

// Restrict defines a token-based filter
type Restrict struct {
	Namespace string   `json:"namespace"`
	Allow     []string `json:"allow"`
}

// DatapointWriter writes verse embeddings in the index import format
type DatapointWriter struct {
	encoder *json.Encoder
	count   int
}

// NewDatapointWriter creates a writer over w
func NewDatapointWriter(w io.Writer) *DatapointWriter {
	return &DatapointWriter{encoder: json.NewEncoder(w)}
}

// Write emits one verse; the translation becomes the restrict searched by SearchVersesByEmbedding
func (w *DatapointWriter) Write(verseID, translation string, embedding []float32) error {
	dp := Datapoint{
		ID:        verseID,
		Embedding: embedding,
		Restricts: []Restrict{{Namespace: TranslationNamespace, Allow: []string{translation}}},
	}
	if err := w.encoder.Encode(dp); err != nil {
		return fmt.Errorf("write datapoint %s: %w", verseID, err)
	}
	w.count++
	return nil
}

// Count returns the number of datapoints written
func (w *DatapointWriter) Count() int {
	return w.count
}
