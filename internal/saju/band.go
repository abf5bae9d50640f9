package saju

// Band is one of the four score ranges a result falls into
type Band string

const (
	BandExcellent  Band = "excellent"
	BandHarmonious Band = "harmonious"
	BandEffort     Band = "effort"
	BandCaution    Band = "caution"
)

var bandMessages = map[Band]string{
	BandExcellent:  "두 분은 서로를 잘 이해하고 보완해주는 환상의 궁합이에요.",
	BandHarmonious: "조화롭게 어울릴 수 있지만, 작은 배려가 필요해요.",
	BandEffort:     "성향 차이가 있지만 노력하면 충분히 맞춰갈 수 있어요.",
	BandCaution:    "가치관이나 기질이 많이 다를 수 있어요. 신중한 접근이 필요해요.",
}

// BandFor maps a score to its band. Lower bounds are inclusive.
func BandFor(score int) Band {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 60:
		return BandHarmonious
	case score >= 40:
		return BandEffort
	default:
		return BandCaution
	}
}

// Message returns the fixed message for the band
func (b Band) Message() string {
	return bandMessages[b]
}
