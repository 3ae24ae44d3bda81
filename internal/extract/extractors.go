package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	whatsappPattern = regexp.MustCompile(`IMG-(\d{8})-WA\d+`)
	androidPattern  = regexp.MustCompile(`IMG_(\d{8})_(\d{6})`)

	// A leading year, optional month/day, optional HHMMSS time with loose
	// separators, terminated by a separator character. Capture groups that
	// matched decide how missing components default; see datePrefixDate.
	datePrefixPattern = regexp.MustCompile(`^(\d{4})(?:[-_\s]?(\d{2}))?(?:[-_\s]?(\d{2}))?(?:[-_\s](\d{2})[-_\s]?(\d{2})[-_\s]?(\d{2}))?[\s\-_a-zA-Z]`)

	epochUUIDPattern = regexp.MustCompile(`^(\d+)-([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12})`)
)

var screenshotPrefixes = []string{"Screenshot_", "Screenshot-", "Screenshot "}

// whatsappDate parses WhatsApp media names such as IMG-20250127-WA0006.jpg,
// yielding that day at midnight.
func whatsappDate(name string) (time.Time, bool) {
	m := whatsappPattern.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, false
	}
	value, err := time.ParseInLocation("20060102", m[1], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return value, true
}

// androidDate parses Android camera names such as IMG_20190818_130841.jpg,
// yielding the exact second.
func androidDate(name string) (time.Time, bool) {
	m := androidPattern.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, false
	}
	value, err := time.ParseInLocation("20060102150405", m[1]+m[2], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return value, true
}

// datePrefixDate parses names that open with a date, from a bare year
// ("2021 vacation.jpg") up to a full timestamp ("2021-07-14 20_25_57 party.jpg").
//
// Missing components nest: month defaults to 01, day only counts when the
// month was given, and each time component only counts when the next-coarser
// one was captured too. Combinations outside that nesting collapse to the
// coarser date or, when the calendar rejects them, to no date at all.
func datePrefixDate(name string) (time.Time, bool) {
	m := datePrefixPattern.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, false
	}
	year, monthRaw, dayRaw, hourRaw, minuteRaw, secondRaw := m[1], m[2], m[3], m[4], m[5], m[6]

	month := "01"
	if monthRaw != "" {
		month = monthRaw
	}
	day := "01"
	if monthRaw != "" && dayRaw != "" {
		day = dayRaw
	}
	hour := "00"
	if dayRaw != "" && hourRaw != "" {
		hour = hourRaw
	}
	minute := "00"
	if hourRaw != "" && minuteRaw != "" {
		minute = minuteRaw
	}
	second := "00"
	if minuteRaw != "" && secondRaw != "" {
		second = secondRaw
	}

	assembled, err := time.ParseInLocation("2006-01-02 15:04:05",
		year+"-"+month+"-"+day+" "+hour+":"+minute+":"+second, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return assembled, true
}

// epochUUIDDate parses names that open with a millisecond epoch timestamp
// followed by a UUID, e.g. 1575287300397-e1b3b2a6-....jpg.
func epochUUIDDate(name string) (time.Time, bool) {
	m := epochUUIDPattern.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, false
	}
	if _, err := uuid.Parse(m[2]); err != nil {
		return time.Time{}, false
	}
	millis, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(millis), true
}

// screenshotDate strips a screenshot prefix and feeds the remainder back
// through the full extractor chain.
func (d *Dispatcher) screenshotDate(name string) (time.Time, bool) {
	for _, prefix := range screenshotPrefixes {
		if strings.HasPrefix(name, prefix) {
			return d.dispatch(strings.TrimPrefix(name, prefix))
		}
	}
	return time.Time{}, false
}
