package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// Word is a time-stamped token as produced by the ASR collaborator.
type Word struct {
	Word        string  `json:"word"`
	Start       float64 `json:"start"`
	End         float64 `json:"end"`
	Probability float64 `json:"probability,omitempty"`
}

// Segment is one utterance with its word-level timestamps.
type Segment struct {
	ID      string  `json:"id,omitempty"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker,omitempty"`
	Words   []Word  `json:"words"`
}

// Payload is a whole transcript in the whisper-style JSON shape.
type Payload struct {
	Language string    `json:"language,omitempty"`
	Segments []Segment `json:"segments"`
}

// Parse decodes a whisper-style JSON transcript.
func Parse(data []byte) (Payload, error) {
	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Payload{}, fmt.Errorf("parse transcript json: %w", err)
	}
	return payload, nil
}

// Load reads and decodes a transcript file.
func Load(path string) (Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Payload{}, fmt.Errorf("read transcript: %w", err)
	}
	return Parse(data)
}

// Encode writes the payload as indented JSON.
func (p Payload) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode transcript json: %w", err)
	}
	return nil
}

// idNamespace scopes the deterministic segment IDs this package derives.
// Determinism is load-bearing: identical inputs must produce identical
// outputs so downstream caching stays valid.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("captionseg/segment"))

// segmentID returns the ID for the nth piece split from a parent segment.
// The first piece keeps the parent's ID; later pieces get a stable UUID
// derived from the parent ID and ordinal.
func segmentID(parent string, ordinal int) string {
	if ordinal == 0 && parent != "" {
		return parent
	}
	name := fmt.Sprintf("%s/%d", parent, ordinal)
	return uuid.NewSHA1(idNamespace, []byte(name)).String()
}
