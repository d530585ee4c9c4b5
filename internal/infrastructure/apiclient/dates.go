package apiclient

import (
	"encoding/json"
	"time"
)

// dateFormats are the shapes the hotel API has been seen sending, tried in
// order.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// apiDate decodes the hotel API's ISO-8601 date strings. A missing, null or
// malformed value decodes to the zero time instead of failing, so one bad
// record never breaks a whole list call; the aggregation and derivation
// layers treat zero dates as matching nothing.
type apiDate time.Time

func (d *apiDate) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil || raw == "" {
		*d = apiDate(time.Time{})
		return nil
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, raw); err == nil {
			*d = apiDate(t)
			return nil
		}
	}
	*d = apiDate(time.Time{})
	return nil
}

func (d apiDate) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

func (d apiDate) Time() time.Time {
	return time.Time(d)
}
