package types

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("types: invalid time string format")

// TimeString время суток в каноническом формате "HH:MM" (24 часа).
// Канонический формат сравнивается лексикографически, поэтому IsBefore/IsAfter
// не требуют парсинга. Пустая строка означает незаданное время (IsZero).
type TimeString string

var (
	// "7:30 pm", "12:05AM" - 12-часовой формат с меридиемом
	twelveHourRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp])[Mm]$`)
	// "19:30", "9:05" - 24-часовой формат
	twentyFourHourRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// NewTimeString создает TimeString из time.Time (берётся только время суток)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит строку времени.
// Принимает 24-часовой формат "HH:MM" и 12-часовой "H:MM am|pm"
// (регистр меридиема не важен, пробел перед ним опционален).
// Некорректный ввод возвращает ErrInvalidTimeString, а не полночь:
// вызывающая сторона сама решает, отклонить запрос или подставить дефолт.
func NewTimeStringFromString(s string) (TimeString, error) {
	trimmed := strings.TrimSpace(s)

	if m := twelveHourRe.FindStringSubmatch(trimmed); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour < 1 || hour > 12 || minute > 59 {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
		hour = hour % 12
		if m[3] == "p" || m[3] == "P" {
			hour += 12
		}
		return FromMinutes(hour*60 + minute), nil
	}

	if m := twentyFourHourRe.FindStringSubmatch(trimmed); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
		return FromMinutes(hour*60 + minute), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// FromMinutes создает TimeString из количества минут с начала суток.
// Значения вне [0, 1440) заворачиваются на циферблат следующего/предыдущего дня,
// сама граница суток при этом не отслеживается.
func FromMinutes(m int) TimeString {
	m = ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение находится в каноническом формате "HH:MM"
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	m := twentyFourHourRe.FindStringSubmatch(string(t))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return hour*60 + minute, nil
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут.
// Результат заворачивается по модулю суток.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(m + minutes), nil
}

// IsBefore возвращает true, если t строго раньше other.
// Канонический формат "HH:MM" сравнивается лексикографически.
func (t TimeString) IsBefore(other TimeString) bool {
	return t < other
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t > other
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов
// [aStart, aStart+aDuration) и [bStart, bStart+bDuration).
// Интервалы с независимыми длительностями; строгие неравенства,
// поэтому слоты "впритык" пересечением не считаются.
func Overlaps(aStart TimeString, aDuration int, bStart TimeString, bDuration int) (bool, error) {
	aMin, err := aStart.Minutes()
	if err != nil {
		return false, err
	}
	bMin, err := bStart.Minutes()
	if err != nil {
		return false, err
	}
	// Концы интервалов считаем без заворота: бронирования в рамках одних суток
	return aMin < bMin+bDuration && bMin < aMin+aDuration, nil
}
