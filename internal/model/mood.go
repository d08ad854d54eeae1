package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Mood is the user's self-reported state of mind.
type Mood string

const (
	MoodChaos   Mood = "chaos"
	MoodAnxious Mood = "anxious"
	MoodNumb    Mood = "numb"
	MoodCalm    Mood = "calm"
	MoodHope    Mood = "hope"
)

// Moods lists every mood in picker order.
var Moods = []Mood{MoodChaos, MoodAnxious, MoodNumb, MoodCalm, MoodHope}

var moodLabels = map[Mood]string{
	MoodChaos:   "Chaos",
	MoodAnxious: "Anxious",
	MoodNumb:    "Numb",
	MoodCalm:    "Calm",
	MoodHope:    "Hope",
}

// Label returns the display label.
func (m Mood) Label() string {
	if l, ok := moodLabels[m]; ok {
		return l
	}
	return string(m)
}

// ParseMood validates a mood id.
func ParseMood(s string) (Mood, error) {
	m := Mood(s)
	if _, ok := moodLabels[m]; !ok {
		return "", fmt.Errorf("unknown mood %q", s)
	}
	return m, nil
}

// UnmarshalJSON accepts the id string or an object carrying an "id" field,
// which is how older exports stored the mood.
func (m *Mood) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*m = Mood(obj.ID)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*m = Mood(s)
	return nil
}

// MoodPtr returns a pointer to m, or nil for the empty mood.
func MoodPtr(m Mood) *Mood {
	if m == "" {
		return nil
	}
	return &m
}
