package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketDurations(t *testing.T) {
	want := map[Bucket]time.Duration{
		ThirtySeconds: 30 * time.Second,
		ThirtyMinutes: 30 * time.Minute,
		Hour:          time.Hour,
		Day:           24 * time.Hour,
		Week:          7 * 24 * time.Hour,
		Month:         30 * 24 * time.Hour,
		SixMonths:     180 * 24 * time.Hour,
		Year:          365 * 24 * time.Hour,
	}
	require.Len(t, Buckets(), len(want))
	for b, d := range want {
		assert.Equal(t, d, b.Duration(), b.String())
	}
}

func TestBucketsAscending(t *testing.T) {
	all := Buckets()
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Duration(), all[i].Duration())
	}
}

func TestBucketString(t *testing.T) {
	assert.Equal(t, "30 seconds", ThirtySeconds.String())
	assert.Equal(t, "6 months", SixMonths.String())
	assert.Equal(t, "Bucket(42)", Bucket(42).String())
	assert.Equal(t, time.Duration(0), Bucket(-1).Duration())
}

func TestBucketNextPrev(t *testing.T) {
	assert.Equal(t, Day, Hour.Next())
	assert.Equal(t, ThirtySeconds, Year.Next())
	assert.Equal(t, Year, ThirtySeconds.Prev())
	assert.Equal(t, Hour, Day.Prev())
}

func TestParseBucket(t *testing.T) {
	tests := []struct {
		in   string
		want Bucket
	}{
		{"30 seconds", ThirtySeconds},
		{"  1 Hour ", Hour},
		{"1w", Week},
		{"1mo", Month},
		{"6MO", SixMonths},
		{"1y", Year},
	}
	for _, tt := range tests {
		got, err := ParseBucket(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseBucket("forever")
	assert.Error(t, err)
}

func TestMatchBucket(t *testing.T) {
	tests := []struct {
		in   string
		want Bucket
	}{
		{"1d", Day},
		{"6 mo", SixMonths},
		{"week", Week},
		{"yr", Year},
		{"sec", ThirtySeconds},
	}
	for _, tt := range tests {
		got, err := MatchBucket(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestMatchBucket_NoMatch(t *testing.T) {
	_, err := MatchBucket("zzz")
	assert.Error(t, err)

	_, err = MatchBucket("   ")
	assert.Error(t, err)
}
