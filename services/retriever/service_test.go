package retriever

import "testing"

func TestChunkFromMetadata(t *testing.T) {
	tests := []struct {
		name     string
		metadata map[string]any
		wantOK   bool
		wantText string
	}{
		{
			name: "content only",
			metadata: map[string]any{
				"source":  "notes.pdf",
				"content": "stacks are LIFO",
			},
			wantOK:   true,
			wantText: "stacks are LIFO",
		},
		{
			name: "content with enrichment",
			metadata: map[string]any{
				"source":           "notes.pdf",
				"content":          "stacks are LIFO",
				"enriched_context": "Covers stack basics.",
			},
			wantOK:   true,
			wantText: "stacks are LIFO\n\nContext: Covers stack basics.",
		},
		{
			name: "missing source is dropped",
			metadata: map[string]any{
				"content": "stacks are LIFO",
			},
			wantOK: false,
		},
		{
			name: "empty source is dropped",
			metadata: map[string]any{
				"source":  "",
				"content": "stacks are LIFO",
			},
			wantOK: false,
		},
		{
			name: "missing content is dropped",
			metadata: map[string]any{
				"source": "notes.pdf",
			},
			wantOK: false,
		},
		{
			name: "non-string source is dropped",
			metadata: map[string]any{
				"source":  42,
				"content": "stacks are LIFO",
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunk, ok := chunkFromMetadata(tt.metadata)
			if ok != tt.wantOK {
				t.Fatalf("chunkFromMetadata() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if chunk.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", chunk.Text, tt.wantText)
			}
			if chunk.SourceID != "notes.pdf" {
				t.Errorf("SourceID = %q, want %q", chunk.SourceID, "notes.pdf")
			}
		})
	}
}
