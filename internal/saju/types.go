package saju

import "errors"

// ErrMissingYear is returned when a birth year is absent. It is a
// validation failure, never an internal error.
var ErrMissingYear = errors.New("birth year is required")

// MissingYearPrompt is the prompt shown to the user when a year is missing
const MissingYearPrompt = "생년을 입력해주세요."

// Default time used for the hour-branch computation when none was given
const (
	DefaultHour   = 12
	DefaultMinute = 0
)

// Element is one of the five elements
type Element string

const (
	Wood  Element = "목"
	Fire  Element = "화"
	Earth Element = "토"
	Metal Element = "금"
	Water Element = "수"
)

// Elements lists the five elements in generating-cycle order
var Elements = []Element{Wood, Fire, Earth, Metal, Water}

// Name returns the English name of the element
func (e Element) Name() string {
	switch e {
	case Wood:
		return "wood"
	case Fire:
		return "fire"
	case Earth:
		return "earth"
	case Metal:
		return "metal"
	case Water:
		return "water"
	default:
		return "unknown"
	}
}

// Birth is the scoring input for one person. Hour and Minute are only
// consulted when NoTime is false.
type Birth struct {
	Year   int  `json:"year"`
	Hour   int  `json:"hour"`
	Minute int  `json:"minute"`
	NoTime bool `json:"no_time"`
}

// ElementProfile is the 2 or 3 element sequence representing one person
type ElementProfile []Element

// Reading explains how a person's profile was derived
type Reading struct {
	Year       int            `json:"year" yaml:"year"`
	Stem       Stem           `json:"stem" yaml:"stem"`
	Branch     Branch         `json:"branch" yaml:"branch"`
	HourBranch *Branch        `json:"hour_branch,omitempty" yaml:"hour_branch,omitempty"`
	Elements   ElementProfile `json:"elements" yaml:"elements"`
}

// Breakdown holds both readings of a scored pair
type Breakdown struct {
	PersonA Reading `json:"person_a" yaml:"person_a"`
	PersonB Reading `json:"person_b" yaml:"person_b"`
}

// Contribution is a single matrix lookup that went into the raw sum
type Contribution struct {
	From  Element `json:"from" yaml:"from"`
	To    Element `json:"to" yaml:"to"`
	Value int     `json:"value" yaml:"value"`
}

// Result is the outcome of scoring two people
type Result struct {
	Score        int            `json:"score" yaml:"score"`
	Band         Band           `json:"band" yaml:"band"`
	Message      string         `json:"message" yaml:"message"`
	Breakdown    Breakdown      `json:"breakdown" yaml:"breakdown"`
	Contributors []Contribution `json:"contributors" yaml:"contributors"`
}
