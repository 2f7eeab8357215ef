package sql

import (
	"database/sql/driver"
	"fmt"
	"time"
)

var textTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05",
}

// Time scans timestamps stored natively or as text, sqlite keeps them as text.
type Time struct {
	time.Time
}

func (t *Time) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case int64:
		t.Time = time.Unix(v, 0)
		return nil
	default:
		return fmt.Errorf("unsupported time value type %T", src)
	}
}

func (t Time) Value() (driver.Value, error) {
	return t.UTC(), nil
}

func (t *Time) parse(value string) error {
	for _, layout := range textTimeLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("unsupported time format %q", value)
}
