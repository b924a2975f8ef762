package store

// utmPairs lines up each session field with the value currently stored on
// the order form's marketing data.
func utmPairs(stored MarketingData, sess SessionFields) [][2]string {
	return [][2]string{
		{sess.UTMSource, stored.UTMSource},
		{sess.UTMMedium, stored.UTMMedium},
		{sess.UTMCampaign, stored.UTMCampaign},
		{sess.UTMICampaign, stored.UTMICampaign},
		{sess.UTMIPage, stored.UTMIPage},
		{sess.UTMIPart, stored.UTMIPart},
	}
}

func (f SessionFields) hasUTM() bool {
	return f.UTMSource != "" || f.UTMMedium != "" || f.UTMCampaign != "" ||
		f.UTMICampaign != "" || f.UTMIPage != "" || f.UTMIPart != ""
}

// needsMarketingUpdate decides whether the stored marketing data must be
// rewritten: the session must carry at least one UTM field, and at least one
// of those fields must differ from what the order form already has.
func needsMarketingUpdate(stored *MarketingData, sess SessionFields) bool {
	if !sess.hasUTM() {
		return false
	}
	var cur MarketingData
	if stored != nil {
		cur = *stored
	}
	for _, p := range utmPairs(cur, sess) {
		if p[0] != "" && p[0] != p[1] {
			return true
		}
	}
	return false
}

// mergeMarketingData builds the marketingData attachment payload: stored
// values survive unless the session carries a replacement, and marketing
// tags are normalized.
func mergeMarketingData(stored *MarketingData, sess SessionFields) MarketingData {
	var md MarketingData
	if stored != nil {
		md = *stored
	}
	if sess.UTMSource != "" {
		md.UTMSource = sess.UTMSource
	}
	if sess.UTMMedium != "" {
		md.UTMMedium = sess.UTMMedium
	}
	if sess.UTMCampaign != "" {
		md.UTMCampaign = sess.UTMCampaign
	}
	if sess.UTMICampaign != "" {
		md.UTMICampaign = sess.UTMICampaign
	}
	if sess.UTMIPage != "" {
		md.UTMIPage = sess.UTMIPage
	}
	if sess.UTMIPart != "" {
		md.UTMIPart = sess.UTMIPart
	}
	md.MarketingTags = cleanMarketingTags(md.MarketingTags)
	return md
}

// cleanMarketingTags drops the tag list entirely when absent and filters out
// empty entries otherwise.
func cleanMarketingTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
