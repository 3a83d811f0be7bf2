package services_test

import (
	"testing"

	"github.com/jasonlam510/scount-currency-backend/internal/core/domain"
	"github.com/jasonlam510/scount-currency-backend/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestGetLocalCurrencyCode(t *testing.T) {
	tests := []struct {
		name string
		loc  domain.DeviceLocale
		want string
	}{
		{
			name: "directly reported currency wins",
			loc:  domain.DeviceLocale{CurrencyCode: "usd", RegionCode: "TW"},
			want: "USD",
		},
		{
			name: "region resolves via country table",
			loc:  domain.DeviceLocale{RegionCode: "TW"},
			want: "TWD",
		},
		{
			name: "region parsed from language tag",
			loc:  domain.DeviceLocale{LanguageTag: "zh-Hant-TW"},
			want: "TWD",
		},
		{
			name: "underscore-delimited tag",
			loc:  domain.DeviceLocale{LanguageTag: "en_GB"},
			want: "GBP",
		},
		{
			name: "lowercase region segment",
			loc:  domain.DeviceLocale{LanguageTag: "ja-jp"},
			want: "JPY",
		},
		{
			name: "nothing resolvable falls back to fixed code",
			loc:  domain.DeviceLocale{},
			want: "HKD",
		},
		{
			name: "unknown region falls back",
			loc:  domain.DeviceLocale{RegionCode: "XX"},
			want: "HKD",
		},
		{
			name: "language-only tag does not invent a region",
			loc:  domain.DeviceLocale{LanguageTag: "zh-Hant"},
			want: "HKD",
		},
		{
			name: "garbage tag falls back",
			loc:  domain.DeviceLocale{LanguageTag: "not a tag!!"},
			want: "HKD",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.GetLocalCurrencyCode(tt.loc))
		})
	}
}

func TestGetLocalCurrencyCode_IsTotal(t *testing.T) {
	// Whatever the inputs, a code always comes back.
	weird := []domain.DeviceLocale{
		{CurrencyCode: "   "},
		{RegionCode: "T"},
		{RegionCode: "TWN"},
		{LanguageTag: "----"},
		{CurrencyCode: "", RegionCode: "", LanguageTag: ""},
	}
	for _, loc := range weird {
		assert.NotEmpty(t, services.GetLocalCurrencyCode(loc))
	}
}
