package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServiceDetail(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		detail, err := GetServiceDetail("ipr-registration")
		require.NoError(t, err)
		assert.Equal(t, "IPR Registration", detail.Title)
		assert.Len(t, detail.PreviewFeatures(), 3)
	})

	t.Run("ReturnsCopy", func(t *testing.T) {
		detail, err := GetServiceDetail("loan-settlement")
		require.NoError(t, err)
		detail.Title = "changed"
		assert.Equal(t, "Loan Settlement", ServiceCatalog[0].Title)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := GetServiceDetail("tax-filing")
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestServiceCatalogIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	featured := 0
	for _, s := range ServiceCatalog {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
		assert.NotEmpty(t, s.Features)
		if s.Featured {
			featured++
		}
	}
	assert.Equal(t, 1, featured)
}
