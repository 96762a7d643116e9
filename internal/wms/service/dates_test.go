package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2021, 11, 29, 9, 33, 0, 0, time.UTC)
	for _, s := range []string{"2021/11/29 09:33", "2021-11-29 09:33", "2021-11-29T09:33:00Z"} {
		got, err := ParseDate(s)
		require.NoError(t, err, s)
		assert.True(t, want.Equal(got), s)
	}

	got, err := ParseDate(" 2021/11/29 ")
	require.NoError(t, err)
	assert.Equal(t, "2021/11/29 00:00", FormatDate(got))
	assert.Equal(t, "2021/11/29", FormatDay(got))

	for _, s := range []string{"", "29/11/2021", "2021/13/01", "yesterday"} {
		_, err := ParseDate(s)
		assert.Error(t, err, s)
	}
}

func TestValidRFID(t *testing.T) {
	assert.True(t, ValidRFID("12345678901234567890123456789016"))
	assert.False(t, ValidRFID("1234567890123456789012345678901"))
	assert.False(t, ValidRFID("123456789012345678901234567890166"))
	assert.False(t, ValidRFID("1234567890123456789012345678901a"))
	assert.False(t, ValidRFID(""))
}
