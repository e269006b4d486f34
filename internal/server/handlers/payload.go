package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var jsonNull = []byte("null")

// jsonDate holds a client date as sent: a string in one of dateLayouts or a
// number of milliseconds since the Unix epoch. Parsing is deferred to Time so
// handlers can report which value was rejected.
type jsonDate struct {
	text   string
	millis *int64
}

func (d *jsonDate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*d = jsonDate{}
	switch {
	case bytes.Equal(data, jsonNull):
		return nil
	case len(data) > 0 && data[0] == '"':
		return json.Unmarshal(data, &d.text)
	}

	var ms float64
	if err := json.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("date must be a string or epoch milliseconds: %w", err)
	}
	v := int64(ms)
	d.millis = &v
	return nil
}

// Time resolves the date. An absent or empty value yields nil.
func (d jsonDate) Time() (*time.Time, error) {
	if d.millis != nil {
		t := time.UnixMilli(*d.millis).UTC()
		return &t, nil
	}
	return parseDate(d.text)
}

// jsonNumber decodes a JSON number or a numeric string. An empty string is 0.
type jsonNumber float64

func (n *jsonNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", s)
		}
		*n = jsonNumber(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = jsonNumber(v)
	return nil
}

// Float returns nil when the field was absent.
func (n *jsonNumber) Float() *float64 {
	if n == nil {
		return nil
	}
	v := float64(*n)
	return &v
}

// jsonText decodes a JSON string, number or boolean into its text form.
type jsonText string

func (t *jsonText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, jsonNull):
		*t = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = jsonText(s)
		return nil
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*t = jsonText(data)
		return nil
	}

	var v json.Number
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("expected text or number: %w", err)
	}
	*t = jsonText(v.String())
	return nil
}

// jsonBool decodes a JSON boolean, 0/1 or one of the strings
// "true", "false", "yes", "no", "1", "0".
type jsonBool bool

func (b *jsonBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*b = false
		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case bool:
		*b = jsonBool(v)
		return nil
	case float64:
		switch v {
		case 0:
			*b = false
			return nil
		case 1:
			*b = true
			return nil
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "1":
			*b = true
			return nil
		case "false", "no", "0", "":
			*b = false
			return nil
		}
	}
	return fmt.Errorf("not a boolean: %s", data)
}
