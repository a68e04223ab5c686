package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	catalog := Catalog()
	assert.Len(t, catalog, 3)

	codes := map[string]bool{}
	for _, p := range catalog {
		codes[p.Code] = true
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Features)
		assert.Greater(t, p.PriceINR, 0.0)
	}
	assert.True(t, codes["basic"])
	assert.True(t, codes["standard"])
	assert.True(t, codes["premium"])
}

func TestByCode(t *testing.T) {
	premium, ok := ByCode("premium")
	assert.True(t, ok)
	assert.Equal(t, "Premium Plan", premium.Name)
	assert.Equal(t, 1999.0, premium.PriceINR)

	_, ok = ByCode("enterprise")
	assert.False(t, ok)
}
