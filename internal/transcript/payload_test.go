package transcript

import "testing"

func TestParse(t *testing.T) {
	data := []byte(`{
		"language": "en",
		"segments": [
			{
				"id": "seg-1",
				"start": 0.0,
				"end": 1.2,
				"text": "Hello world",
				"speaker": "SPEAKER_00",
				"words": [
					{"word": "Hello", "start": 0.0, "end": 0.6, "probability": 0.98},
					{"word": "world", "start": 0.6, "end": 1.2}
				]
			}
		]
	}`)

	payload, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if payload.Language != "en" {
		t.Errorf("language = %q, want en", payload.Language)
	}
	if len(payload.Segments) != 1 {
		t.Fatalf("parsed %d segments, want 1", len(payload.Segments))
	}
	seg := payload.Segments[0]
	if seg.ID != "seg-1" || seg.Speaker != "SPEAKER_00" || len(seg.Words) != 2 {
		t.Errorf("segment = %+v, want id seg-1, speaker SPEAKER_00, 2 words", seg)
	}
	if seg.Words[0].Probability != 0.98 {
		t.Errorf("probability = %g, want 0.98", seg.Words[0].Probability)
	}
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Error("Parse() accepted invalid JSON")
	}
}
