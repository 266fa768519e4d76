package dockets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComponentsFlorida(t *testing.T) {
	c := ParseComponents("FL", "20240035-GU")
	require.True(t, c.Valid)
	require.NotNil(t, c.Year)
	assert.Equal(t, 2024, *c.Year)
	assert.Equal(t, "0035", c.CaseNumber)
	assert.Equal(t, "GU", c.Suffix)
	assert.Equal(t, "gas", c.Sector)
}

func TestParseComponentsFloridaBareNumber(t *testing.T) {
	c := ParseComponents("FL", "20240035")
	require.True(t, c.Valid)
	assert.Equal(t, FallbackSuffix, c.Suffix)
	assert.Empty(t, c.Sector)
}

func TestParseComponentsFloridaImplausibleYear(t *testing.T) {
	c := ParseComponents("FL", "98765432-GU")
	assert.False(t, c.Valid)
}

func TestParseComponentsTexas(t *testing.T) {
	c := ParseComponents("TX", "44250")
	require.True(t, c.Valid)
	assert.Nil(t, c.Year)
	assert.Equal(t, "44250", c.CaseNumber)
	assert.Equal(t, FallbackSuffix, c.Suffix)
}

func TestParseComponentsCalifornia(t *testing.T) {
	c := ParseComponents("CA", "A.24-07-003")
	require.True(t, c.Valid)
	require.NotNil(t, c.Year)
	assert.Equal(t, 2024, *c.Year)
	assert.Equal(t, "07-003", c.CaseNumber)
	assert.Equal(t, "A", c.Suffix)
	assert.Equal(t, "application", c.Sector)
}

func TestParseComponentsOhio(t *testing.T) {
	c := ParseComponents("OH", "24-0508-EL-AIR")
	require.True(t, c.Valid)
	require.NotNil(t, c.Year)
	assert.Equal(t, 2024, *c.Year)
	assert.Equal(t, "0508", c.CaseNumber)
	assert.Equal(t, "AIR", c.Suffix)
	assert.Equal(t, "electric", c.Sector)
}

func TestParseComponentsInvalid(t *testing.T) {
	tests := []struct {
		state string
		raw   string
	}{
		{"CA", "44250"},
		{"FL", "not-a-docket"},
		{"TX", "1234"},
		{"OH", "20240035-GU"},
		{"ZZ", "anything"},
	}
	for _, tt := range tests {
		c := ParseComponents(tt.state, tt.raw)
		assert.False(t, c.Valid, "%s %s should be invalid", tt.state, tt.raw)
	}
}

func TestNormalizeID(t *testing.T) {
	assert.Equal(t, "FL-20240035-GU", NormalizeID("fl", " 20240035-gu "))
	assert.Equal(t, "TX-44250", NormalizeID("TX", "44250"))
	assert.Equal(t, "CA-A.24-07-003", NormalizeID("ca", "a.24-07-003"))
}
