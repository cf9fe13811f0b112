package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeSpanConversions(t *testing.T) {
	ts := FromMilliseconds(1500)
	assert.Equal(t, int64(1500), ts.Milliseconds())
	assert.Equal(t, 1500*time.Millisecond, ts.Duration())
	assert.InDelta(t, 1.5, ts.Seconds(), 1e-9)

	assert.Equal(t, ts, FromDuration(1500*time.Millisecond))
}

func TestSaturatingSub(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int64
		wantMS int64
	}{
		{"positive_difference", 25000, 10000, 15000},
		{"equal", 10000, 10000, 0},
		{"would_go_negative", 10000, 25000, 0},
		{"zero_reference", 40000, 0, 40000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromMilliseconds(tt.a).SaturatingSub(FromMilliseconds(tt.b))
			assert.Equal(t, tt.wantMS, got.Milliseconds())
		})
	}
}

func TestTimeCloneIsDeep(t *testing.T) {
	real := FromMilliseconds(1000)
	orig := Time{RealTime: &real}

	clone := orig.Clone()
	*clone.RealTime = FromMilliseconds(9999)

	assert.Equal(t, int64(1000), orig.RealTime.Milliseconds())
	assert.Nil(t, clone.GameTime)
}

func TestTimeWithMethod(t *testing.T) {
	orig := Time{RealTime: FromMilliseconds(1000).Ptr()}

	updated := orig.WithMethod(GameTime, FromMilliseconds(2000).Ptr())
	assert.Equal(t, int64(1000), updated.RealTime.Milliseconds())
	assert.Equal(t, int64(2000), updated.GameTime.Milliseconds())

	// The original is untouched and the new entry does not alias its input.
	assert.Nil(t, orig.GameTime)

	cleared := updated.WithMethod(RealTime, nil)
	assert.Nil(t, cleared.RealTime)
	assert.Equal(t, int64(2000), cleared.GameTime.Milliseconds())
	assert.False(t, cleared.IsEmpty())
	assert.True(t, Time{}.IsEmpty())
}

func TestTimeGet(t *testing.T) {
	tm := Time{
		RealTime: FromMilliseconds(100).Ptr(),
		GameTime: FromMilliseconds(200).Ptr(),
	}
	assert.Equal(t, int64(100), tm.Get(RealTime).Milliseconds())
	assert.Equal(t, int64(200), tm.Get(GameTime).Milliseconds())
	assert.Nil(t, Time{}.Get(RealTime))
}
