package reminder

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "02.01.2006"

// ParseDueTime turns the raw "when" answer of the reminder dialog into an
// absolute timestamp. It understands literal keywords only: "today",
// "tomorrow", "day after tomorrow", an explicit dd.mm.yyyy date, and an
// HH:MM clock, with an optional "at" in between. Anything it cannot make
// sense of falls back to tomorrow 09:00 rather than failing the dialog.
//
// TODO: swap for a real date/time parser; the state machine only depends
// on this one function.
func ParseDueTime(now time.Time, raw string) time.Time {
	input := strings.ToLower(strings.TrimSpace(raw))

	base := now
	switch {
	case strings.Contains(input, "day after tomorrow"):
		base = now.AddDate(0, 0, 2)
		input = strings.Replace(input, "day after tomorrow", "", 1)
	case strings.Contains(input, "tomorrow"):
		base = now.AddDate(0, 0, 1)
		input = strings.Replace(input, "tomorrow", "", 1)
	case strings.Contains(input, "today"):
		input = strings.Replace(input, "today", "", 1)
	default:
		fields := strings.Fields(input)
		if len(fields) > 0 {
			if d, err := time.ParseInLocation(dateLayout, fields[0], now.Location()); err == nil {
				base = d
				input = strings.Join(fields[1:], " ")
				break
			}
		}
		base = now.AddDate(0, 0, 1)
	}

	hour, minute, ok := parseClock(input)
	if !ok {
		return fallback(now)
	}
	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, now.Location())
}

// fallback is the original bot's silent default: tomorrow at 09:00.
func fallback(now time.Time) time.Time {
	t := now.AddDate(0, 0, 1)
	return time.Date(t.Year(), t.Month(), t.Day(), 9, 0, 0, 0, now.Location())
}

func parseClock(input string) (hour, minute int, ok bool) {
	for _, tok := range strings.Fields(input) {
		if tok == "at" || !strings.Contains(tok, ":") {
			continue
		}
		parts := strings.SplitN(tok, ":", 2)
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
			return 0, 0, false
		}
		return h, m, true
	}
	return 0, 0, false
}
