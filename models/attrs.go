package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Attrs menyimpan atribut bebas dari client (JSON) di kolom TEXT,
// sehingga field tambahan ikut tersimpan apa adanya.
type Attrs map[string]interface{}

func (a Attrs) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *Attrs) Scan(value interface{}) error {
	if value == nil {
		*a = Attrs{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for Attrs: %T", value)
	}

	if len(raw) == 0 {
		*a = Attrs{}
		return nil
	}
	if !json.Valid(raw) {
		return errors.New("invalid JSON in attrs column")
	}
	return json.Unmarshal(raw, a)
}
