// Package datemap anchors a wave to the calendar.
//
// Given a wave of n values, a zero date Z and a step of d days, value i is
// dated Z − n·d + i·d. The zero point sits one step after the last value:
// the final point is dated Z − d, never Z itself.
//
// All arithmetic is on civil dates (year, month, day) in UTC, so month
// lengths and leap years are respected and no time-of-day or DST shift can
// leak into the result.
//
//	points, err := datemap.MapWaveToDates(w, datemap.MustDate(2012, 12, 21), 1)
package datemap
