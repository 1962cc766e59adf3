package leap

import "time"

// utcDate returns midnight UTC on the given date.
func utcDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// history returns the embedded adjustment records. The first record is
// the 1972-01-01 alignment step that set UTC ten seconds behind TAI;
// each later record is a single leap second, effective at midnight UTC
// following its insertion. The cumulative offset through the 2017
// insertion is 37 seconds.
//
// Data source: IERS Bulletin C.
func history() []Record {
	return []Record{
		{utcDate(1972, time.January, 1), 10},
		{utcDate(1972, time.July, 1), 1},
		{utcDate(1973, time.January, 1), 1},
		{utcDate(1974, time.January, 1), 1},
		{utcDate(1975, time.January, 1), 1},
		{utcDate(1976, time.January, 1), 1},
		{utcDate(1977, time.January, 1), 1},
		{utcDate(1978, time.January, 1), 1},
		{utcDate(1979, time.January, 1), 1},
		{utcDate(1980, time.January, 1), 1},
		{utcDate(1981, time.July, 1), 1},
		{utcDate(1982, time.July, 1), 1},
		{utcDate(1983, time.July, 1), 1},
		{utcDate(1985, time.July, 1), 1},
		{utcDate(1988, time.January, 1), 1},
		{utcDate(1990, time.January, 1), 1},
		{utcDate(1991, time.January, 1), 1},
		{utcDate(1992, time.July, 1), 1},
		{utcDate(1993, time.July, 1), 1},
		{utcDate(1994, time.July, 1), 1},
		{utcDate(1996, time.January, 1), 1},
		{utcDate(1997, time.July, 1), 1},
		{utcDate(1999, time.January, 1), 1},
		{utcDate(2006, time.January, 1), 1},
		{utcDate(2009, time.January, 1), 1},
		{utcDate(2012, time.July, 1), 1},
		{utcDate(2015, time.July, 1), 1},
		{utcDate(2017, time.January, 1), 1},
	}
}
