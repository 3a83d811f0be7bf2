package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/jasonlam510/scount-currency-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCurrencyCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already normalized", in: "USD", want: "USD"},
		{name: "lowercase", in: "usd", want: "USD"},
		{name: "surrounding whitespace", in: "  eur\t", want: "EUR"},
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.NormalizeCurrencyCode(tt.in)
			assert.Equal(t, tt.want, got)
			// Idempotent: normalizing twice changes nothing.
			assert.Equal(t, got, domain.NormalizeCurrencyCode(got))
		})
	}
}

func TestBuildSearchKey(t *testing.T) {
	assert.Equal(t, "us dollarusd$", domain.BuildSearchKey("US Dollar", "USD", "$"))
	assert.Equal(t, "", domain.BuildSearchKey("", "", ""))
}

func TestSnapshotEntry_UnmarshalJSON(t *testing.T) {
	t.Run("bare name string", func(t *testing.T) {
		var e domain.SnapshotEntry
		require.NoError(t, json.Unmarshal([]byte(`"Euro"`), &e))
		assert.Equal(t, "Euro", e.Name)
		assert.Empty(t, e.Flag)
	})

	t.Run("name and flag object", func(t *testing.T) {
		var e domain.SnapshotEntry
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Euro","flag":"🇪🇺"}`), &e))
		assert.Equal(t, "Euro", e.Name)
		assert.Equal(t, "🇪🇺", e.Flag)
	})

	t.Run("invalid shape", func(t *testing.T) {
		var e domain.SnapshotEntry
		assert.Error(t, json.Unmarshal([]byte(`42`), &e))
	})

	t.Run("mixed snapshot", func(t *testing.T) {
		var s domain.Snapshot
		payload := `{"EUR":"Euro","JPY":{"name":"Japanese Yen","flag":"🇯🇵"}}`
		require.NoError(t, json.Unmarshal([]byte(payload), &s))
		assert.Equal(t, "Euro", s["EUR"].Name)
		assert.Equal(t, "Japanese Yen", s["JPY"].Name)
		assert.Equal(t, "🇯🇵", s["JPY"].Flag)
	})
}

func TestSnapshot_Normalized(t *testing.T) {
	s := domain.Snapshot{
		" usd ": {Name: "US Dollar"},
		"EUR":   {Name: "Euro"},
		"   ":   {Name: "ghost"},
	}
	norm := s.Normalized()
	assert.Len(t, norm, 2)
	assert.Equal(t, "US Dollar", norm["USD"].Name)
	assert.Equal(t, "Euro", norm["EUR"].Name)
}
