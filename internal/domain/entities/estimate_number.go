package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const estimateNumberPrefix = "EST"

// EstimateDatePrefix returns the YYYYMMDD portion used to key a day's
// sequence of estimate numbers.
func EstimateDatePrefix(now time.Time) string {
	return now.UTC().Format("20060102")
}

// FormatEstimateNumber renders EST-<YYYYMMDD>-<NNNN> for the given date and
// sequence number.
func FormatEstimateNumber(now time.Time, seq int) string {
	return fmt.Sprintf("%s-%s-%04d", estimateNumberPrefix, EstimateDatePrefix(now), seq)
}

// NextEstimateNumber derives the next number for the given date from the
// highest number already issued that day. An empty latest means the day's
// first estimate; an unparsable suffix falls back to sequence 1 rather than
// failing.
func NextEstimateNumber(now time.Time, latest string) string {
	return FormatEstimateNumber(now, SequenceOf(latest)+1)
}

// SequenceOf extracts the 4-digit sequence from an estimate number, returning
// 0 when the number is empty or its suffix is malformed.
func SequenceOf(number string) int {
	if number == "" {
		return 0
	}
	idx := strings.LastIndex(number, "-")
	if idx < 0 || idx == len(number)-1 {
		return 0
	}
	seq, err := strconv.Atoi(number[idx+1:])
	if err != nil || seq < 0 {
		return 0
	}
	return seq
}
