//go:build unit

package patch_test

import (
	"testing"

	"ecopoints/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	v := "dark"
	assert.Equal(t, "dark", patch.Coalesce(&v, "light"))
	assert.Equal(t, "light", patch.Coalesce(nil, "light"))
}

func TestNonEmpty(t *testing.T) {
	empty := ""
	filled := "Jl. Sudirman No. 1"

	assert.Nil(t, patch.NonEmpty(nil))
	assert.Nil(t, patch.NonEmpty(&empty))
	assert.Equal(t, &filled, patch.NonEmpty(&filled))
}
