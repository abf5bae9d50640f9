package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/hongyeon/internal/saju"
)

// LenientInt is an integer field that tolerates malformed input. JSON
// numbers, numeric strings, empty strings and null are accepted; anything
// that does not start with an integer leaves the value unset.
type LenientInt struct {
	Value int
	Valid bool
}

// Int returns a set LenientInt
func Int(v int) LenientInt {
	return LenientInt{Value: v, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler
func (l *LenientInt) UnmarshalJSON(data []byte) error {
	*l = LenientInt{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		l.Value, l.Valid = ParseLenientInt(s)
		return nil
	}

	l.Value, l.Valid = ParseLenientInt(string(data))
	return nil
}

// MarshalJSON implements json.Marshaler
func (l LenientInt) MarshalJSON() ([]byte, error) {
	if !l.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(l.Value)), nil
}

// ParseLenientInt parses the leading integer of s: optional surrounding
// whitespace, an optional sign, then at least one digit. Trailing
// characters after the digits are ignored, so "12.7" and "12시" yield 12.
func ParseLenientInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	end := 0
	if s[0] == '+' || s[0] == '-' {
		end = 1
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil {
		// out of int range
		return 0, false
	}
	return v, true
}

// PersonInput is one side of the form. Month, Day and Name are collected
// for display only and never reach the scorer.
type PersonInput struct {
	Name   string     `json:"name,omitempty"`
	Year   LenientInt `json:"year" swaggertype:"integer" example:"1990"`
	Month  LenientInt `json:"month,omitempty" swaggertype:"integer"`
	Day    LenientInt `json:"day,omitempty" swaggertype:"integer"`
	Hour   LenientInt `json:"hour,omitempty" swaggertype:"integer" example:"8"`
	Minute LenientInt `json:"minute,omitempty" swaggertype:"integer" example:"30"`
	NoTime bool       `json:"no_time"`
}

// HasYear reports whether a usable year was supplied. Zero counts as
// missing.
func (p PersonInput) HasYear() bool {
	return p.Year.Valid && p.Year.Value != 0
}

// Birth converts the raw input into scorer input. Absent or out of range
// hour and minute fall back to noon and zero minutes. Hour 0 counts as
// absent, like year 0, so a midnight entry scores as noon.
func (p PersonInput) Birth() saju.Birth {
	b := saju.Birth{
		Hour:   saju.DefaultHour,
		Minute: saju.DefaultMinute,
		NoTime: p.NoTime,
	}

	if p.HasYear() {
		b.Year = p.Year.Value
	}
	if p.Hour.Valid && p.Hour.Value >= 1 && p.Hour.Value <= 23 {
		b.Hour = p.Hour.Value
	}
	if p.Minute.Valid && p.Minute.Value >= 0 && p.Minute.Value <= 59 {
		b.Minute = p.Minute.Value
	}

	return b
}

// ScoreRequest represents the request structure for the score endpoint
type ScoreRequest struct {
	PersonA PersonInput `json:"person_a"`
	PersonB PersonInput `json:"person_b"`
}

// MissingYears lists the sides that lack a year
func (r ScoreRequest) MissingYears() []string {
	var missing []string
	if !r.PersonA.HasYear() {
		missing = append(missing, "person_a")
	}
	if !r.PersonB.HasYear() {
		missing = append(missing, "person_b")
	}
	return missing
}

// ScoreResponse is returned by the score endpoint
type ScoreResponse struct {
	saju.Result `yaml:",inline"`
	Names       []string `json:"names,omitempty" yaml:"names,omitempty"`
}

// NewScoreResponse attaches the display names to a result
func NewScoreResponse(req ScoreRequest, res saju.Result) ScoreResponse {
	resp := ScoreResponse{Result: res}
	if req.PersonA.Name != "" || req.PersonB.Name != "" {
		resp.Names = []string{strings.TrimSpace(req.PersonA.Name), strings.TrimSpace(req.PersonB.Name)}
	}
	return resp
}
