package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeOfDay возвращается при некорректном формате времени
var ErrInvalidTimeOfDay = errors.New("types: invalid time of day")

// TimeOfDay время суток с точностью до минуты.
// Хранится как количество минут с полуночи, чтобы сравнения и арифметика
// были целочисленными, а не строковыми.
type TimeOfDay int

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// NewTimeOfDay создает TimeOfDay из часов и минут
func NewTimeOfDay(hours, minutes int) TimeOfDay {
	return TimeOfDay(hours*60 + minutes)
}

// TimeOfDayFromTime извлекает время суток из time.Time (секунды отбрасываются)
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// ParseTimeOfDay парсит строку формата "HH:MM" (также принимает "HH:MM:SS")
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hours, minutes, seconds int

	switch n, _ := fmt.Sscanf(s, "%d:%d:%d", &hours, &minutes, &seconds); n {
	case 2, 3:
		// ok
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	return NewTimeOfDay(hours, minutes), nil
}

// String возвращает время в формате "HH:MM"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед.
// Выход за границы суток не нормализуется: конец интервала "18:00" + 60
// минут должен оставаться больше любого времени внутри дня.
func (t TimeOfDay) AddMinutes(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// Before строгое "раньше"
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// After строгое "позже"
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

// Valid проверяет, что время находится внутри суток
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

// At комбинирует дату и время суток в time.Time в локации даты
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), int(t)/60, int(t)%60, 0, 0, date.Location())
}

// MarshalJSON сериализует время как строку "HH:MM"
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON десериализует время из строки "HH:MM"
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// Value реализует driver.Valuer: в БД время хранится как TIME ("HH:MM:SS")
func (t TimeOfDay) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:00", int(t)/60, int(t)%60), nil
}

// Scan реализует sql.Scanner для колонок типа TIME
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = TimeOfDayFromTime(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeOfDay, src)
	}
}
