package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskdeck/taskdeck/internal/theme"
)

func TestScheme(t *testing.T) {
	t.Run("known schemes are valid", func(t *testing.T) {
		for _, s := range theme.Schemes() {
			assert.True(t, s.Valid(), string(s))
		}
	})

	t.Run("unknown scheme is invalid", func(t *testing.T) {
		assert.False(t, theme.Scheme("neon").Valid())
	})

	t.Run("every scheme has a full palette", func(t *testing.T) {
		for _, s := range theme.Schemes() {
			p := s.Colors()
			assert.NotEmpty(t, p.Primary, string(s))
			assert.NotEmpty(t, p.Secondary, string(s))
			assert.NotEmpty(t, p.Background, string(s))
			assert.NotEmpty(t, p.Text, string(s))
			assert.NotEmpty(t, p.Accent, string(s))
		}
	})

	t.Run("unknown scheme falls back to the default palette", func(t *testing.T) {
		assert.Equal(t, theme.Default.Colors(), theme.Scheme("neon").Colors())
	})
}
