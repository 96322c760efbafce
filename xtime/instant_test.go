package xtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/badu/wstd/internal/wasip2/clocks/monotonicclock"
)

func TestInstantDurationSince(t *testing.T) {
	start := Instant{raw: monotonicclock.Instant(1_000_000_000)}
	end := Instant{raw: monotonicclock.Instant(2_500_000_000)}
	assert.Equal(t, 1500*time.Millisecond, end.DurationSince(start))
	assert.Equal(t, -1500*time.Millisecond, start.DurationSince(end))
}

func TestInstantAdd(t *testing.T) {
	start := Instant{raw: monotonicclock.Instant(1_000_000_000)}
	later := start.Add(500 * time.Millisecond)
	assert.Equal(t, 500*time.Millisecond, later.DurationSince(start))
}

func TestSystemTimeDurationSince(t *testing.T) {
	earlier := SystemTime{seconds: 100, nanos: 500_000_000}
	later := SystemTime{seconds: 101, nanos: 200_000_000}

	d, err := later.DurationSince(earlier)
	assert.NoError(t, err)
	assert.Equal(t, 700*time.Millisecond, d)
}

func TestSystemTimeDurationSinceBorrowsASecond(t *testing.T) {
	earlier := SystemTime{seconds: 100, nanos: 800_000_000}
	later := SystemTime{seconds: 101, nanos: 200_000_000}

	d, err := later.DurationSince(earlier)
	assert.NoError(t, err)
	assert.Equal(t, 400*time.Millisecond, d)
}

func TestSystemTimeDurationSinceErrorsWhenEarlierIsLater(t *testing.T) {
	earlier := SystemTime{seconds: 101}
	later := SystemTime{seconds: 100}

	_, err := later.DurationSince(earlier)
	assert.ErrorIs(t, err, errSystemTimeBeforeEarlier)
}

func TestUnixEpochIsZeroValue(t *testing.T) {
	assert.Equal(t, SystemTime{}, UnixEpoch)
}
