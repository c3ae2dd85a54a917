package leagues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraftIDFromURL(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID string
		wantOK bool
	}{
		{
			name:   "standard draft url",
			input:  "https://sleeper.com/draft/nfl/1137629842345",
			wantID: "1137629842345",
			wantOK: true,
		},
		{
			name:   "trailing slash",
			input:  "https://sleeper.com/draft/nfl/1004/",
			wantID: "1004",
			wantOK: true,
		},
		{
			name:   "bare numeric id",
			input:  "987654321",
			wantID: "987654321",
			wantOK: true,
		},
		{
			name:   "surrounding whitespace",
			input:  "  https://sleeper.com/draft/nfl/42  ",
			wantID: "42",
			wantOK: true,
		},
		{
			name:   "no numeric segment",
			input:  "https://sleeper.com/draft/nfl",
			wantOK: false,
		},
		{
			name:   "empty",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := DraftIDFromURL(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
