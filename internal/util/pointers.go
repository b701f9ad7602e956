package util

import "time"

func FloatPointer(f float64) *float64 {
	return &f
}

func IntPointer(i int) *int {
	return &i
}

func Uint64Pointer(u uint64) *uint64 {
	return &u
}

func TimePointer(t time.Time) *time.Time {
	return &t
}
