// Copyright (C) 2025 CardinalHQ, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSecondsToNanos(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    int64
	}{
		{"whole seconds", 1704067200, 1704067200000000000},
		{"half second", 1704067200.5, 1704067200500000000},
		{"quarter second", 1704067200.25, 1704067200250000000},
		{"zero", 0, 0},
		{"sub-second only", 0.123, 123000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SecondsToNanos(tt.seconds))
		})
	}
}

func TestNanosToSeconds(t *testing.T) {
	assert.Equal(t, int64(1704067200), NanosToSeconds(1704067200999999999))
	assert.Equal(t, int64(0), NanosToSeconds(999999999))
}

func TestNowNanos(t *testing.T) {
	before := time.Now().UnixNano()
	got := NowNanos()
	after := time.Now().UnixNano()
	assert.GreaterOrEqual(t, got, before)
	assert.LessOrEqual(t, got, after)
}

func TestAgoHelpers(t *testing.T) {
	now := NowNanos()
	assert.InDelta(t, now-5*NanosPerMinute, MinutesAgoNanos(5), float64(time.Second))
	assert.InDelta(t, now-2*NanosPerHour, HoursAgoNanos(2), float64(time.Second))
	assert.InDelta(t, now-30*NanosPerDay, DaysAgoNanos(30), float64(time.Second))
}
