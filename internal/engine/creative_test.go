package engine

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestCreativeScore(t *testing.T) {
	tests := []struct {
		name    string
		story   string
		want    float64
		wantErr error
	}{
		{
			name:    "empty story rejected",
			story:   "",
			wantErr: ErrEmptyStory,
		},
		{
			name:    "whitespace only rejected",
			story:   "   \n\t ",
			wantErr: ErrEmptyStory,
		},
		{
			name:  "short story scores by length",
			story: strings.Repeat("ب", 25),
			want:  2.5,
		},
		{
			name:  "length score caps at twenty",
			story: strings.Repeat("ب", 500),
			want:  20,
		},
		{
			name:  "keyword bonus",
			story: "كان في المملكة كنز عظيم يحرسه ملك",
			want:  3.3 + 10, // 33 runes plus two keywords
		},
		{
			name:  "repeated keyword counts once",
			story: "سحر ثم سحر ثم سحر",
			want:  1.7 + 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CreativeScore(tt.story, CreativeKeywords)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreativeScore() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreativeScore() unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CreativeScore() = %v, want %v", got, tt.want)
			}
		})
	}
}
