package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBack(t *testing.T) {
	assert.Equal(t, "UTC", Location("Not/AZone").String())
	assert.Equal(t, "UTC", Location("").String())
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	d, err := ParseDate("2026-03-01", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), d)

	_, err = ParseDate("01/03/2026", loc)
	assert.Error(t, err)
}
