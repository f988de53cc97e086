package util

import "time"

// NowMillis is the current time at the resolution generated file names use.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

func FromMillis(m int64) time.Time {
	return time.UnixMilli(m)
}
