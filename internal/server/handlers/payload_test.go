package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONDate(t *testing.T) {
	cases := map[string]struct {
		input string
		want  *time.Time
	}{
		"local with seconds": {`"2026-05-01T06:30:00"`, ptrTime(time.Date(2026, 5, 1, 6, 30, 0, 0, time.UTC))},
		"local with millis":  {`"2026-05-01T06:30:00.250"`, ptrTime(time.Date(2026, 5, 1, 6, 30, 0, 250e6, time.UTC))},
		"rfc3339":            {`"2026-05-01T06:30:00+02:00"`, ptrTime(time.Date(2026, 5, 1, 4, 30, 0, 0, time.UTC))},
		"epoch millis":       {`1767225600000`, ptrTime(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))},
		"null":               {`null`, nil},
		"empty":              {`""`, nil},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var d jsonDate
			require.NoError(t, json.Unmarshal([]byte(tc.input), &d))

			got, err := d.Time()
			require.NoError(t, err)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tc.want.Equal(*got), "got %s", got)
		})
	}

	var d jsonDate
	require.NoError(t, json.Unmarshal([]byte(`"next tuesday"`), &d))
	_, err := d.Time()
	assert.Error(t, err)

	assert.Error(t, json.Unmarshal([]byte(`{"when":1}`), &d))
}

func TestJSONNumber(t *testing.T) {
	for input, want := range map[string]float64{
		`12.5`:   12.5,
		`"120"`:  120,
		`" 3 "`:  3,
		`""`:     0,
		`"-1.5"`: -1.5,
	} {
		var n jsonNumber
		require.NoError(t, json.Unmarshal([]byte(input), &n), input)
		assert.Equal(t, want, float64(n), input)
	}

	var n jsonNumber
	assert.Error(t, json.Unmarshal([]byte(`"twelve"`), &n))
	assert.Error(t, json.Unmarshal([]byte(`true`), &n))

	var absent *jsonNumber
	assert.Nil(t, absent.Float())
}

func TestJSONText(t *testing.T) {
	for input, want := range map[string]string{
		`"3 years"`: "3 years",
		`3`:         "3",
		`2.5`:       "2.5",
		`true`:      "true",
		`null`:      "",
	} {
		var txt jsonText
		require.NoError(t, json.Unmarshal([]byte(input), &txt), input)
		assert.Equal(t, want, string(txt), input)
	}

	var txt jsonText
	assert.Error(t, json.Unmarshal([]byte(`["3"]`), &txt))
}

func TestJSONBool(t *testing.T) {
	for input, want := range map[string]bool{
		`true`:    true,
		`false`:   false,
		`"true"`:  true,
		`"FALSE"`: false,
		`"yes"`:   true,
		`1`:       true,
		`0`:       false,
		`null`:    false,
	} {
		var b jsonBool
		require.NoError(t, json.Unmarshal([]byte(input), &b), input)
		assert.Equal(t, want, bool(b), input)
	}

	var b jsonBool
	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &b))
	assert.Error(t, json.Unmarshal([]byte(`2`), &b))
}

func ptrTime(t time.Time) *time.Time { return &t }
