package types

import (
	"encoding/json"
	"testing"

	"github.com/ZanzyTHEbar/hongyeon/internal/saju"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLenientInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		valid    bool
	}{
		{"plain number", "1990", 1990, true},
		{"surrounding whitespace", "  8 ", 8, true},
		{"signed", "-3", -3, true},
		{"plus sign", "+7", 7, true},
		{"decimal truncates", "12.7", 12, true},
		{"trailing text", "12시", 12, true},
		{"empty", "", 0, false},
		{"only sign", "-", 0, false},
		{"letters", "abc", 0, false},
		{"leading letters", "x12", 0, false},
		{"overflow", "99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := ParseLenientInt(tt.input)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestLenientIntUnmarshal(t *testing.T) {
	var req ScoreRequest
	body := `{
		"person_a": {"name": "A", "year": 1990, "hour": "8", "minute": null, "no_time": false},
		"person_b": {"year": "2000년", "hour": "오후", "minute": 12.5, "no_time": true}
	}`

	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, Int(1990), req.PersonA.Year)
	assert.Equal(t, Int(8), req.PersonA.Hour)
	assert.False(t, req.PersonA.Minute.Valid)
	assert.Equal(t, Int(2000), req.PersonB.Year)
	assert.False(t, req.PersonB.Hour.Valid)
	assert.Equal(t, Int(12), req.PersonB.Minute)
	assert.True(t, req.PersonB.NoTime)
}

func TestLenientIntMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A LenientInt `json:"a"`
		B LenientInt `json:"b"`
	}{A: Int(5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":5,"b":null}`, string(out))
}

func TestPersonInputBirth(t *testing.T) {
	tests := []struct {
		name     string
		input    PersonInput
		expected saju.Birth
	}{
		{
			name:     "all fields present",
			input:    PersonInput{Year: Int(1990), Hour: Int(8), Minute: Int(30)},
			expected: saju.Birth{Year: 1990, Hour: 8, Minute: 30},
		},
		{
			name:     "absent time defaults to noon",
			input:    PersonInput{Year: Int(1990)},
			expected: saju.Birth{Year: 1990, Hour: 12, Minute: 0},
		},
		{
			name:     "hour zero falls back to noon",
			input:    PersonInput{Year: Int(1990), Hour: Int(0), Minute: Int(0)},
			expected: saju.Birth{Year: 1990, Hour: 12, Minute: 0},
		},
		{
			name:     "hour zero keeps the minute",
			input:    PersonInput{Year: Int(1990), Hour: Int(0), Minute: Int(45)},
			expected: saju.Birth{Year: 1990, Hour: 12, Minute: 45},
		},
		{
			name:     "one in the morning is kept",
			input:    PersonInput{Year: Int(1990), Hour: Int(1), Minute: Int(0)},
			expected: saju.Birth{Year: 1990, Hour: 1, Minute: 0},
		},
		{
			name:     "out of range values default",
			input:    PersonInput{Year: Int(1990), Hour: Int(25), Minute: Int(-1)},
			expected: saju.Birth{Year: 1990, Hour: 12, Minute: 0},
		},
		{
			name:     "no time flag carried",
			input:    PersonInput{Year: Int(1990), Hour: Int(3), NoTime: true},
			expected: saju.Birth{Year: 1990, Hour: 3, Minute: 0, NoTime: true},
		},
		{
			name:     "zero year is missing",
			input:    PersonInput{Year: Int(0)},
			expected: saju.Birth{Hour: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Birth())
		})
	}
}

func TestMidnightScoresAsNoon(t *testing.T) {
	b := PersonInput{Year: Int(1974), NoTime: true}.Birth()

	midnight, err := saju.Score(PersonInput{Year: Int(1990), Hour: Int(0), Minute: Int(0)}.Birth(), b)
	require.NoError(t, err)
	noon, err := saju.Score(PersonInput{Year: Int(1990), Hour: Int(12), Minute: Int(0)}.Birth(), b)
	require.NoError(t, err)

	assert.Equal(t, 83, midnight.Score)
	assert.Equal(t, noon.Score, midnight.Score)
}

func TestMissingYears(t *testing.T) {
	assert.Empty(t, ScoreRequest{PersonA: PersonInput{Year: Int(1990)}, PersonB: PersonInput{Year: Int(2000)}}.MissingYears())
	assert.Equal(t, []string{"person_a"}, ScoreRequest{PersonB: PersonInput{Year: Int(2000)}}.MissingYears())
	assert.Equal(t, []string{"person_a", "person_b"}, ScoreRequest{PersonA: PersonInput{Year: Int(0)}}.MissingYears())
}

func TestNewScoreResponse(t *testing.T) {
	res := saju.Result{Score: 50, Band: saju.BandEffort}

	resp := NewScoreResponse(ScoreRequest{}, res)
	assert.Nil(t, resp.Names)

	resp = NewScoreResponse(ScoreRequest{PersonA: PersonInput{Name: " 민수 "}, PersonB: PersonInput{Name: "지은"}}, res)
	assert.Equal(t, []string{"민수", "지은"}, resp.Names)

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"score":50`)
	assert.Contains(t, string(out), `"band":"effort"`)
}
