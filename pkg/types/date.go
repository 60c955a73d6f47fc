package types

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// NullDate - опциональная дата для DATE-колонок. В JSON принимает как
// "2006-01-02", так и полный RFC3339; null и пустая строка дают Valid=false.
type NullDate struct {
	Time  time.Time
	Valid bool
}

func (d *NullDate) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		*d = NullDate{}
		return nil
	}

	for _, layout := range []string{dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, *s); err == nil {
			d.Time, d.Valid = t, true
			return nil
		}
	}
	return fmt.Errorf("неверный формат даты %q, ожидается YYYY-MM-DD", *s)
}

func (d NullDate) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(dateLayout))
}
