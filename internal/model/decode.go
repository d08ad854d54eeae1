package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Stored records may come from older versions or be edited by hand, so the
// free-form fields decode leniently: a value of the wrong JSON kind degrades
// to its zero value instead of failing the whole collection.

// UnmarshalJSON implements json.Unmarshaler. Interest and Date accept a
// string, a number or null; LastPaid that is not a timestamp becomes nil.
func (d *Debt) UnmarshalJSON(data []byte) error {
	type plain Debt
	aux := struct {
		*plain
		Interest json.RawMessage `json:"interest"`
		Date     json.RawMessage `json:"date"`
		LastPaid json.RawMessage `json:"lastPaid"`
	}{plain: (*plain)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Interest != nil {
		d.Interest = looseString(aux.Interest)
	}
	if aux.Date != nil {
		d.Date = looseString(aux.Date)
	}
	if aux.LastPaid != nil {
		d.LastPaid = nil
		if t := looseTime(aux.LastPaid); !t.IsZero() {
			d.LastPaid = &t
		}
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. A date that is empty or not a
// timestamp becomes the zero time; Day, Month and Year are kept as stored.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type plain Transaction
	aux := struct {
		*plain
		Date json.RawMessage `json:"date"`
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Date != nil {
		t.Date = looseTime(aux.Date)
	}
	return nil
}

// looseString reads a JSON scalar as text. Numbers and booleans keep their
// literal form; null, objects and arrays give "".
func looseString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '{', '[', 'n':
		return ""
	}
	return string(raw)
}

// looseTime reads an RFC 3339 timestamp, a bare YYYY-MM-DD date or a number
// of Unix milliseconds. Anything else is the zero time.
func looseTime(raw json.RawMessage) time.Time {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return time.Time{}
	}
	if raw[0] != '"' {
		ms, err := strconv.ParseFloat(string(raw), 64)
		if err != nil || ms <= 0 || ms > 1e15 {
			return time.Time{}
		}
		return time.UnixMilli(int64(ms)).UTC()
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
