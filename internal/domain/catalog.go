package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RawCourse is a course record as found in the input document
type RawCourse struct {
	ID     FlexibleID `json:"id"`
	Name   string     `json:"name" validate:"required"`
	Shifts []RawShift `json:"shifts"`
}

// RawShift is a section record as found in the input document
type RawShift struct {
	Code      string       `json:"code" validate:"required"`
	Meetings  []RawMeeting `json:"meetings"`
	Type      string       `json:"type"`
	Vacancies *int         `json:"vacancies"`
}

// RawMeeting is a weekly meeting record as found in the input document
type RawMeeting struct {
	End     string `json:"end" validate:"required"`
	Room    string `json:"room"`
	Start   string `json:"start" validate:"required"`
	Weekday string `json:"weekday" validate:"required"`
}

// FlexibleID accepts both JSON strings and numbers
type FlexibleID string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*f = FlexibleID(n.String())
	return nil
}

// legacyMeeting is the meeting shape of the older object-keyed format
type legacyMeeting struct {
	Day     string `json:"dia"`
	Room    string `json:"sala"`
	TimeKey string `json:"horario"`
}

// DecodeCatalog parses an input document. Two layouts are accepted: a list of
// course records, or the older object keyed by discipline then section code
// whose meetings carry "dia" and "horario". Object key order is preserved.
func DecodeCatalog(data []byte) ([]RawCourse, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrDataLoad)
	}
	switch trimmed[0] {
	case '[':
		var courses []RawCourse
		if err := json.Unmarshal(trimmed, &courses); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDataLoad, err)
		}
		return courses, nil
	case '{':
		courses, err := decodeLegacy(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDataLoad, err)
		}
		return courses, nil
	default:
		return nil, fmt.Errorf("%w: document must be a JSON array or object", ErrDataLoad)
	}
}

func decodeLegacy(data []byte) ([]RawCourse, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var courses []RawCourse
	for dec.More() {
		name, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		if err := expectDelim(dec, '{'); err != nil {
			return nil, fmt.Errorf("discipline %q: %w", name, err)
		}
		course := RawCourse{Name: name}
		for dec.More() {
			code, err := readKey(dec)
			if err != nil {
				return nil, err
			}
			var meetings []legacyMeeting
			if err := dec.Decode(&meetings); err != nil {
				return nil, fmt.Errorf("discipline %q section %q: %w", name, code, err)
			}
			shift := RawShift{Code: code}
			for _, m := range meetings {
				slot := ParseTimeSlot(m.TimeKey)
				shift.Meetings = append(shift.Meetings, RawMeeting{
					End:     slot.End,
					Room:    m.Room,
					Start:   slot.Start,
					Weekday: m.Day,
				})
			}
			course.Shifts = append(course.Shifts, shift)
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return courses, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}

// Describe returns a short label for error messages
func (c RawCourse) Describe(i int) string {
	if c.Name != "" {
		return strconv.Quote(c.Name)
	}
	return fmt.Sprintf("course #%d", i+1)
}
