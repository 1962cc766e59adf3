package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffset(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		seconds int
		str     string
		utc     bool
		err     bool
	}{
		{name: "utc", seconds: 0, str: "+00:00", utc: true},
		{name: "plus_two", seconds: 2 * secondsPerHour, str: "+02:00"},
		{name: "minus_five_thirty", seconds: -(5*secondsPerHour + 30*secondsPerMinute), str: "-05:30"},
		{name: "nepal", seconds: 5*secondsPerHour + 45*secondsPerMinute, str: "+05:45"},
		{name: "east_bound", seconds: 18 * secondsPerHour, str: "+18:00"},
		{name: "west_bound", seconds: -18 * secondsPerHour, str: "-18:00"},
		{name: "too_far_east", seconds: 18*secondsPerHour + 1, err: true},
		{name: "too_far_west", seconds: -18*secondsPerHour - 1, err: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			off, err := NewOffset(tc.seconds)
			if tc.err {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrType)
				return
			}
			require.NoError(t, err)
			a.Equal(tc.seconds, off.InSeconds())
			a.Equal(tc.str, off.String())
			a.Equal(tc.utc, off.IsUTC())
		})
	}
}

func TestParseOffset(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		src     string
		seconds int
		err     bool
	}{
		{name: "zulu", src: "Z", seconds: 0},
		{name: "lower_zulu", src: "z", seconds: 0},
		{name: "zero", src: "+00:00", seconds: 0},
		{name: "plus_nine", src: "+09:00", seconds: 9 * secondsPerHour},
		{name: "minus_four", src: "-04:00", seconds: -4 * secondsPerHour},
		{name: "half_hour", src: "+05:30", seconds: 5*secondsPerHour + 30*secondsPerMinute},
		{name: "words", src: "UTC", err: true},
		{name: "empty", src: "", err: true},
		{name: "bare_hours", src: "+02", err: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			off, err := ParseOffset(tc.src)
			if tc.err {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.seconds, off.InSeconds())
		})
	}
}

func TestOffsetCompare(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	east, err := NewOffset(secondsPerHour)
	require.NoError(t, err)
	west, err := NewOffset(-secondsPerHour)
	require.NoError(t, err)

	a.Equal(0, east.Compare(east))
	a.Equal(1, east.Compare(west))
	a.Equal(-1, west.Compare(east))
	a.Equal(1, east.Compare(Offset{}))
}

func TestOffsetLocation(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	// The zero offset is time.UTC itself.
	a.Same(time.UTC, Offset{}.Location())

	off, err := NewOffset(2 * secondsPerHour)
	require.NoError(t, err)
	loc := off.Location()
	ts := time.Date(2024, 6, 24, 10, 17, 32, 0, loc)
	name, sec := ts.Zone()
	a.Empty(name)
	a.Equal(2*secondsPerHour, sec)

	// OffsetOf recovers the offset from a time in the location.
	a.Equal(off, OffsetOf(ts))
}

func TestOffsetJSON(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	off, err := NewOffset(-(9*secondsPerHour + 30*secondsPerMinute))
	r.NoError(err)

	data, err := off.MarshalJSON()
	r.NoError(err)
	a.Equal(`"-09:30"`, string(data))

	off2 := new(Offset)
	r.NoError(off2.UnmarshalJSON(data))
	a.Equal(off, *off2)

	r.ErrorIs(off2.UnmarshalJSON([]byte(`"later"`)), ErrType)
	r.ErrorIs(off2.UnmarshalJSON([]byte(`3600`)), ErrType)
}
