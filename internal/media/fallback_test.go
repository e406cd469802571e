package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestFallbackURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		text string
		want string
	}{
		{
			name: "hero fallback",
			text: "Pantai Bali",
			want: "https://placehold.co/800x600/E0E0E0/707070?text=Pantai%20Bali",
		},
		{
			name: "custom base",
			base: "https://img.example/400x300",
			text: "Sampah & Laut",
			want: "https://img.example/400x300?text=Sampah%20%26%20Laut",
		},
		{
			name: "unreserved marks stay literal",
			text: "Aksi (Nyata)!",
			want: DefaultPlaceholderBase + "?text=Aksi%20(Nyata)!",
		},
		{
			name: "empty text",
			want: DefaultPlaceholderBase + "?text=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FallbackURL(tt.base, tt.text))
		})
	}
}

func TestFallbackURLIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")
		first := FallbackURL("", text)
		if first != FallbackURL("", text) {
			t.Fatalf("fallback changed for %q", text)
		}
	})
}
