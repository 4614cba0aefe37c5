package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	for _, in := range []string{
		"2024-03-01T09:30:00.000Z",
		"2024-03-01T09:30:00Z",
		"2024-03-01T11:30:00+02:00",
		"2024-03-01T09:30:00",
		"2024-03-01T09:30",
	} {
		ts, err := ParseTimestamp(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(ts.Time), in)
		assert.Equal(t, time.UTC, ts.Location(), in)
	}

	ts, err := ParseTimestamp("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T00:00:00.000Z", ts.String())

	_, err = ParseTimestamp("yesterday")
	assert.Error(t, err)
}

func TestTimestamp_StringTruncatesToMillis(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 3, 1, 9, 0, 0, 123456789, time.FixedZone("X", 3600)))
	assert.Equal(t, "2024-03-01T08:00:00.123Z", ts.String())

	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T08:00:00.123Z", v)
}

func TestTimestamp_Scan(t *testing.T) {
	var ts Timestamp

	require.NoError(t, ts.Scan("2024-03-01T09:00:00.250Z"))
	assert.Equal(t, "2024-03-01T09:00:00.250Z", ts.String())

	require.NoError(t, ts.Scan([]byte("2024-03-02T00:00:00.000Z")))
	assert.Equal(t, 2, ts.Day())

	require.NoError(t, ts.Scan(time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 3, ts.Day())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
	assert.Error(t, ts.Scan("not a time"))
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultRange(), r)
	assert.Equal(t, "1970-01-01T00:00:00.000Z", r.From.String())
	assert.Equal(t, "2999-12-31T00:00:00.000Z", r.To.String())

	r, err = ParseRange("2024-03-01", "")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T00:00:00.000Z", r.From.String())
	assert.Equal(t, RangeEnd, r.To)

	_, err = ParseRange("", "soon")
	assert.Error(t, err)
}

func TestParseOptionalTimestamp(t *testing.T) {
	ts, err := ParseOptionalTimestamp("")
	require.NoError(t, err)
	assert.Nil(t, ts)

	ts, err = ParseOptionalTimestamp("2024-03-01T09:00:00Z")
	require.NoError(t, err)
	require.NotNil(t, ts)
	assert.Equal(t, "2024-03-01T09:00:00.000Z", ts.String())
}

func TestNullString(t *testing.T) {
	assert.Nil(t, NullString("   "))
	s := NullString("  Olaplex ")
	require.NotNil(t, s)
	assert.Equal(t, "Olaplex", *s)
}
