package agent

import "testing"

func TestExtractTopic(t *testing.T) {
	tests := []struct {
		name     string
		question string
		phrases  []string
		expected string
	}{
		{
			name:     "strips task phrasing",
			question: "Create a quiz on graph theory",
			phrases:  []string{"quiz"},
			expected: "graph theory",
		},
		{
			name:     "case insensitive phrase removal",
			question: "EXPLAIN Binary Search",
			phrases:  []string{"explain"},
			expected: "Binary Search",
		},
		{
			name:     "filler words removed",
			question: "Give me flashcards about the French Revolution",
			phrases:  []string{"flashcards"},
			expected: "French Revolution",
		},
		{
			name:     "trailing punctuation trimmed",
			question: "What is a B-tree?",
			phrases:  []string{"what is"},
			expected: "B-tree",
		},
		{
			name:     "phrase only leaves empty topic",
			question: "flashcards",
			phrases:  []string{"flashcards"},
			expected: "",
		},
		{
			name:     "phrase inside a word is kept",
			question: "quiz on bidirectional testing",
			phrases:  []string{"test"},
			expected: "quiz bidirectional testing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractTopic(tt.question, tt.phrases...); got != tt.expected {
				t.Errorf("extractTopic(%q) = %q, want %q", tt.question, got, tt.expected)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		question string
		fallback int
		expected int
	}{
		{"give me 15 flashcards", 10, 15},
		{"quiz me on sorting", 5, 5},
		{"make 500 questions", 10, 50},
		{"0 questions please", 5, 5},
		{"a 7 question quiz", 5, 7},
	}

	for _, tt := range tests {
		if got := parseCount(tt.question, tt.fallback); got != tt.expected {
			t.Errorf("parseCount(%q, %d) = %d, want %d", tt.question, tt.fallback, got, tt.expected)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		question string
		expected string
	}{
		{"an easy quiz on loops", "easy"},
		{"something for beginners", "easy"},
		{"hard questions please", "hard"},
		{"advanced material", "hard"},
		{"medium difficulty", "medium"},
		{"set the difficulty yourself", ""},
		{"a question about hardware", ""},
		{"quiz me on recursion", ""},
	}

	for _, tt := range tests {
		if got := parseDifficulty(tt.question); got != tt.expected {
			t.Errorf("parseDifficulty(%q) = %q, want %q", tt.question, got, tt.expected)
		}
	}
}
