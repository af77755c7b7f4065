package analysis

import (
	"regexp"
	"strings"

	"github.com/asal3ti/charizard/internal/model"
)

// Points each kind of sponsorship evidence adds to the confidence score.
const (
	pointsIndicator        = 30
	pointsKnownCompany     = 25
	pointsExtractedCompany = 20
	pointsDiscountCode     = 15
	pointsURL              = 10

	levelHighMin   = 70
	levelMediumMin = 40
	levelLowMin    = 20
	maxConfidence  = 100
)

var sponsorshipIndicatorPatterns = compileAll(
	`sponsored\s+by`,
	`this\s+video\s+is\s+sponsored\s+by`,
	`thanks\s+to\s+.*?\s+for\s+sponsoring`,
	`partnered\s+with`,
	`in\s+partnership\s+with`,
	`promotion\s+code`,
	`discount\s+code`,
	`use\s+code\s+[A-Z0-9]+`,
	`promo\s+code`,
	`coupon\s+code`,
	`check\s+out\s+.*?\s+link\s+in\s+description`,
	`link\s+in\s+description`,
	`click\s+the\s+link\s+below`,
	`visit\s+.*?\s+com`,
	`go\s+to\s+.*?\s+com`,
	`head\s+over\s+to`,
	`check\s+out\s+.*?\s+website`,
	`visit\s+.*?\s+website`,
	`go\s+to\s+.*?\s+website`,
)

var companyExtractPatterns = compileAll(
	`(?:sponsored by|partnered with|thanks to)\s+([A-Z][a-zA-Z\s&]+?)(?:\s+for|\.|,|$)`,
	`check out ([A-Z][a-zA-Z\s&]+?)(?:\s+at|\.|,|$)`,
	`visit ([A-Z][a-zA-Z\s&]+?)(?:\s+com|\.|,|$)`,
	`go to ([A-Z][a-zA-Z\s&]+?)(?:\s+com|\.|,|$)`,
	`head over to ([A-Z][a-zA-Z\s&]+?)(?:\s+com|\.|,|$)`,
)

var evidencePatterns = compileAll(
	`[^.]*(?:sponsored by|partnered with|thanks to)[^.]*\.`,
	`[^.]*(?:check out|visit|go to|head over to)[^.]*\.`,
	`[^.]*(?:use code|promo code|discount code)[^.]*\.`,
	`[^.]*(?:link in description|click the link)[^.]*\.`,
)

var (
	discountCodeRe = regexp.MustCompile(`(?i)(?:use|promo|discount|coupon)\s+code\s+([A-Z0-9]+)`)
	urlRe          = regexp.MustCompile(`https?://[^\s]+`)
)

// DefaultKnownBrands lists frequent YouTube sponsors, matched by substring.
func DefaultKnownBrands() []string {
	return []string{
		"nordvpn", "expressvpn", "surfshark", "protonvpn", "cyberghost",
		"skillshare", "masterclass", "udemy", "coursera", "brilliant",
		"audible", "spotify", "amazon", "shopify", "squarespace",
		"wix", "bluehost", "hostinger", "godaddy", "namecheap",
		"grammarly", "honey", "raid", "mobile legends", "genshin impact",
		"raycon", "airpods", "samsung", "apple", "google",
		"microsoft", "adobe", "canva", "figma", "notion",
		"robinhood", "coinbase", "binance", "stripe", "paypal",
		"uber", "lyft", "doordash", "ubereats", "grubhub",
		"netflix", "disney+", "hulu", "hbo max", "paramount+",
		"nike", "adidas", "puma", "under armour", "reebok",
		"coca cola", "pepsi", "red bull", "monster", "gatorade",
		"mcdonalds", "burger king", "kfc", "subway", "dominos",
		"starbucks", "dunkin", "tim hortons", "peets", "caribou",
	}
}

// SponsorshipDetector finds paid-promotion evidence in video text.
type SponsorshipDetector struct {
	brands []string
}

func NewSponsorshipDetector(brands []string) *SponsorshipDetector {
	return &SponsorshipDetector{brands: brands}
}

// Detect analyzes the combined title, description and transcript.
// The confidence score is the raw sum of evidence points; the level is derived
// from the score clamped to 100.
func (d *SponsorshipDetector) Detect(transcript, title, description string) model.SponsorshipAnalysis {
	full := title + " " + description + " " + transcript
	lower := strings.ToLower(full)

	var indicators []string
	for _, re := range sponsorshipIndicatorPatterns {
		indicators = append(indicators, re.FindAllString(lower, -1)...)
	}

	var companies []string
	for _, brand := range d.brands {
		if strings.Contains(lower, brand) {
			companies = append(companies, brand)
		}
	}

	var extracted []string
	for _, re := range companyExtractPatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			if name := strings.TrimSpace(m[1]); name != "" {
				extracted = append(extracted, name)
			}
		}
	}

	var codes []string
	for _, m := range discountCodeRe.FindAllStringSubmatch(full, -1) {
		codes = append(codes, m[1])
	}

	urls := urlRe.FindAllString(lower, -1)

	score := 0
	if len(indicators) > 0 {
		score += pointsIndicator
	}
	if len(companies) > 0 {
		score += pointsKnownCompany
	}
	if len(extracted) > 0 {
		score += pointsExtractedCompany
	}
	if len(codes) > 0 {
		score += pointsDiscountCode
	}
	if len(urls) > 0 {
		score += pointsURL
	}

	return model.SponsorshipAnalysis{
		HasSponsorship:     score >= levelLowMin,
		Level:              SponsorshipLevelFor(score),
		ConfidenceScore:    score,
		DetectedIndicators: dedupe(indicators),
		DetectedCompanies:  dedupe(companies),
		ExtractedCompanies: dedupe(extracted),
		DiscountCodes:      dedupe(codes),
		URLs:               dedupe(urls),
		EvidenceText:       ExtractSponsorshipText(transcript, title, description),
	}
}

// SponsorshipLevelFor buckets a confidence score.
func SponsorshipLevelFor(score int) model.SponsorshipLevel {
	score = min(score, maxConfidence)
	switch {
	case score >= levelHighMin:
		return model.SponsorshipHigh
	case score >= levelMediumMin:
		return model.SponsorshipMedium
	case score >= levelLowMin:
		return model.SponsorshipLow
	default:
		return model.SponsorshipNone
	}
}

// ExtractSponsorshipText returns the sentences that mention sponsorship
// phrasing, in their original case.
func ExtractSponsorshipText(transcript, title, description string) []string {
	full := title + " " + description + " " + transcript
	var segments []string
	for _, re := range evidencePatterns {
		segments = append(segments, re.FindAllString(full, -1)...)
	}
	return dedupe(segments)
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(`(?i)` + p)
	}
	return out
}

// dedupe drops repeats while keeping first-seen order. It never returns nil so
// JSON output carries [] rather than null.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}
