package saju

import (
	"fmt"
	"math"
)

const (
	baseScore  = 50
	scoreScale = 10.0
)

// mod returns the non-negative remainder so years before 4 CE still
// land inside the cycle.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// YearPillar returns the stem and branch of a year
func YearPillar(year int) (Stem, Branch) {
	return Stem(mod(year-4, 10)), Branch(mod(year-4, 12))
}

// HourBranch returns the branch of a time of day. Each branch spans two
// hours starting at midnight.
func HourBranch(hour, minute int) Branch {
	total := hour*60 + minute
	return Branch(mod(int(math.Floor(float64(total)/120)), 12))
}

// Read derives the reading for one person
func Read(b Birth) (Reading, error) {
	if b.Year == 0 {
		return Reading{}, ErrMissingYear
	}

	stem, branch := YearPillar(b.Year)
	r := Reading{
		Year:     b.Year,
		Stem:     stem,
		Branch:   branch,
		Elements: ElementProfile{stem.Element(), branch.Element()},
	}

	if !b.NoTime {
		hb := HourBranch(b.Hour, b.Minute)
		r.HourBranch = &hb
		r.Elements = append(r.Elements, hb.Element())
	}

	return r, nil
}

// Profile returns the element profile for one person
func Profile(b Birth) (ElementProfile, error) {
	r, err := Read(b)
	if err != nil {
		return nil, err
	}
	return r.Elements, nil
}

// rawScore sums the matrix over every ordered pair of the two profiles
func rawScore(a, b ElementProfile) (int, []Contribution) {
	sum := 0
	contribs := make([]Contribution, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			v := Compatibility(x, y)
			sum += v
			contribs = append(contribs, Contribution{From: x, To: y, Value: v})
		}
	}
	return sum, contribs
}

// normalize maps the average contribution onto the score scale,
// rounding halves up.
func normalize(sum, pairs int) int {
	avg := float64(sum) / float64(pairs)
	return baseScore + int(math.Floor(avg*scoreScale+0.5))
}

// Score computes the compatibility of a and b. It fails only when a
// year is missing, in which case no score is produced.
func Score(a, b Birth) (Result, error) {
	ra, err := Read(a)
	if err != nil {
		return Result{}, fmt.Errorf("person a: %w", err)
	}
	rb, err := Read(b)
	if err != nil {
		return Result{}, fmt.Errorf("person b: %w", err)
	}

	sum, contribs := rawScore(ra.Elements, rb.Elements)
	score := normalize(sum, len(ra.Elements)*len(rb.Elements))
	band := BandFor(score)

	return Result{
		Score:   score,
		Band:    band,
		Message: band.Message(),
		Breakdown: Breakdown{
			PersonA: ra,
			PersonB: rb,
		},
		Contributors: contribs,
	}, nil
}
