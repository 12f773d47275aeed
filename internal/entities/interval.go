package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrIntervalFormat = errors.New("interval must be in HH:MM-HH:MM format")
	ErrIntervalRange  = errors.New("interval start must be before its end")
)

// TimeInterval это интервал внутри суток, границы в минутах от полуночи.
// Каноничный ключ интервала - его строковая форма "HH:MM-HH:MM".
type TimeInterval struct {
	Start int
	End   int
}

func ParseInterval(s string) (TimeInterval, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeInterval{}, fmt.Errorf("%q: %w", s, ErrIntervalFormat)
	}

	start, err := parseWallClock(parts[0])
	if err != nil {
		return TimeInterval{}, fmt.Errorf("%q: %w", s, ErrIntervalFormat)
	}
	end, err := parseWallClock(parts[1])
	if err != nil {
		return TimeInterval{}, fmt.Errorf("%q: %w", s, ErrIntervalFormat)
	}

	if start >= end {
		return TimeInterval{}, fmt.Errorf("%q: %w", s, ErrIntervalRange)
	}

	return TimeInterval{Start: start, End: end}, nil
}

// Overlaps сравнивает строго: совпадение границ пересечением не считается.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start < other.End && i.End > other.Start
}

func (i TimeInterval) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", i.Start/60, i.Start%60, i.End/60, i.End%60)
}

func parseWallClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrIntervalFormat
	}

	hours, err := strconv.Atoi(s[:2])
	if err != nil || hours < 0 || hours > 23 {
		return 0, ErrIntervalFormat
	}

	minutes, err := strconv.Atoi(s[3:])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, ErrIntervalFormat
	}

	return hours*60 + minutes, nil
}
