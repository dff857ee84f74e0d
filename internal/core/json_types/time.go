package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClockTime serializes as a wall-clock "15:04" string.
type ClockTime struct {
	Time time.Time
}

func (t *ClockTime) UnmarshalJSON(data []byte) error {
	// Strip the surrounding quotes
	str := string(data[1 : len(data)-1])

	parsedTime, err := time.Parse("15:04", str)
	if err != nil {
		return fmt.Errorf("failed to parse time: %v", err)
	}

	*t = ClockTime{Time: parsedTime}
	return nil
}

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format("15:04"))
}
