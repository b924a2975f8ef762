package store

import (
	"reflect"
	"testing"
)

func TestNeedsMarketingUpdate(t *testing.T) {
	tests := []struct {
		name   string
		stored *MarketingData
		sess   SessionFields
		want   bool
	}{
		{
			name:   "empty session never triggers",
			stored: &MarketingData{UTMSource: "newsletter"},
			sess:   SessionFields{},
			want:   false,
		},
		{
			name:   "differing source triggers",
			stored: &MarketingData{UTMSource: "b"},
			sess:   SessionFields{UTMSource: "a"},
			want:   true,
		},
		{
			name:   "identical values do not trigger",
			stored: &MarketingData{UTMSource: "a", UTMMedium: "email"},
			sess:   SessionFields{UTMSource: "a", UTMMedium: "email"},
			want:   false,
		},
		{
			name:   "nil stored data with session fields triggers",
			stored: nil,
			sess:   SessionFields{UTMCampaign: "spring"},
			want:   true,
		},
		{
			name:   "session locale alone is not a UTM field",
			stored: nil,
			sess:   SessionFields{Locale: "en-US"},
			want:   false,
		},
		{
			name:   "one matching and one differing field triggers",
			stored: &MarketingData{UTMSource: "a", UTMIPage: "home"},
			sess:   SessionFields{UTMSource: "a", UTMIPage: "checkout"},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := needsMarketingUpdate(tt.stored, tt.sess); got != tt.want {
				t.Errorf("needsMarketingUpdate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeMarketingData_SessionWins(t *testing.T) {
	stored := &MarketingData{
		UTMSource:   "newsletter",
		UTMCampaign: "winter",
		Coupon:      "SAVE10",
	}
	sess := SessionFields{UTMSource: "social", UTMIPart: "banner"}

	got := mergeMarketingData(stored, sess)
	if got.UTMSource != "social" {
		t.Errorf("UTMSource: want social, got %q", got.UTMSource)
	}
	if got.UTMCampaign != "winter" {
		t.Errorf("UTMCampaign must keep stored value, got %q", got.UTMCampaign)
	}
	if got.UTMIPart != "banner" {
		t.Errorf("UTMIPart: want banner, got %q", got.UTMIPart)
	}
	if got.Coupon != "SAVE10" {
		t.Errorf("Coupon must survive the merge, got %q", got.Coupon)
	}
}

func TestMergeMarketingData_TagNormalization(t *testing.T) {
	// Absent tags stay absent.
	got := mergeMarketingData(nil, SessionFields{UTMSource: "a"})
	if got.MarketingTags != nil {
		t.Errorf("absent tags must stay nil, got %v", got.MarketingTags)
	}

	// Present tags are filtered of empty entries.
	stored := &MarketingData{MarketingTags: []string{"vip", "", "wholesale", ""}}
	got = mergeMarketingData(stored, SessionFields{UTMSource: "a"})
	if !reflect.DeepEqual(got.MarketingTags, []string{"vip", "wholesale"}) {
		t.Errorf("tags: want [vip wholesale], got %v", got.MarketingTags)
	}

	// All-empty tag lists collapse to nil.
	stored = &MarketingData{MarketingTags: []string{"", ""}}
	got = mergeMarketingData(stored, SessionFields{UTMSource: "a"})
	if got.MarketingTags != nil {
		t.Errorf("all-empty tags must collapse to nil, got %v", got.MarketingTags)
	}
}
