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

// Package timeutil provides helpers for Loki's nanosecond-denominated
// Unix timestamps.
package timeutil

import (
	"math"
	"time"
)

const (
	NanosPerSecond int64 = 1_000_000_000
	NanosPerMinute       = NanosPerSecond * 60
	NanosPerHour         = NanosPerMinute * 60
	NanosPerDay          = NanosPerHour * 24
)

// NowNanos returns the current time as Unix nanoseconds.
func NowNanos() int64 {
	return time.Now().UnixNano()
}

// SecondsToNanos converts a possibly fractional Unix-seconds timestamp to
// nanoseconds. The whole and fractional parts are converted separately so
// that sub-second precision survives for large epoch values, which a single
// float64 multiplication would not guarantee.
func SecondsToNanos(seconds float64) int64 {
	whole := math.Floor(seconds)
	frac := seconds - whole
	return int64(whole)*NanosPerSecond + int64(math.Round(frac*float64(NanosPerSecond)))
}

// NanosToSeconds converts Unix nanoseconds to whole Unix seconds.
func NanosToSeconds(nanos int64) int64 {
	return nanos / NanosPerSecond
}

// MinutesAgoNanos returns the timestamp n minutes in the past as Unix nanoseconds.
func MinutesAgoNanos(n int) int64 {
	return NowNanos() - int64(n)*NanosPerMinute
}

// HoursAgoNanos returns the timestamp n hours in the past as Unix nanoseconds.
func HoursAgoNanos(n int) int64 {
	return NowNanos() - int64(n)*NanosPerHour
}

// DaysAgoNanos returns the timestamp n days in the past as Unix nanoseconds.
func DaysAgoNanos(n int) int64 {
	return NowNanos() - int64(n)*NanosPerDay
}
