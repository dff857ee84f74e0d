package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date serializes as "2006-01-02".
type Date struct {
	Date time.Time
}

func (t *Date) UnmarshalJSON(data []byte) error {
	// Strip the surrounding quotes
	str := string(data[1 : len(data)-1])

	parsedDate, err := time.Parse("2006-01-02", str)
	if err != nil {
		return fmt.Errorf("failed to parse date: %v", err)
	}

	*t = Date{Date: parsedDate}
	return nil
}

func (t Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format("2006-01-02"))
}

// DateTime serializes as RFC3339 with the instant's own offset.
type DateTime struct {
	Date time.Time
}

func (t *DateTime) UnmarshalJSON(data []byte) error {
	// Strip the surrounding quotes
	str := string(data[1 : len(data)-1])

	parsedDate, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return fmt.Errorf("failed to parse datetime: %v", err)
	}

	*t = DateTime{Date: parsedDate}
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format(time.RFC3339))
}
