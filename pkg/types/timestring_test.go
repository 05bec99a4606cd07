package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func TestNewTimeStringFromString(t *testing.T) {
	cases := []struct {
		in      string
		want    types.TimeString
		wantErr bool
	}{
		{in: "09:00", want: "09:00"},
		{in: "9:05", want: "09:05"},
		{in: "17:30:00", want: "17:30"},
		{in: " 08:15 ", want: "08:15"},
		{in: "24:00", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := types.NewTimeStringFromString(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, types.ErrInvalidTimeString, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	start := types.TimeString("10:30")

	got, err := start.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:15"), got)

	_, err = types.TimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, types.ErrTimeOverflow)

	got, err = types.TimeString("23:00").AddMinutes(59)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("23:59"), got)
}

func TestTimeString_Compare(t *testing.T) {
	a := types.TimeString("09:00")
	b := types.TimeString("10:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.True(t, a.Equal("09:00"))
	assert.False(t, a.IsBefore("garbage"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts types.TimeString

	require.NoError(t, ts.Scan([]byte("12:45:00")))
	assert.Equal(t, types.TimeString("12:45"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 8, 5, 0, 0, time.UTC)))
	assert.Equal(t, types.TimeString("08:05"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := types.TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = types.TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
