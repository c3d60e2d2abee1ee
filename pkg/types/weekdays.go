package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Weekdays типизированный набор дней недели (0=воскресенье .. 6=суббота)
// В БД хранится как JSON-массив чисел, например "[1,2,3,4,5]" для будних дней
type Weekdays []int

// ParseWeekdays декодирует JSON-представление набора дней недели
// Некорректные данные (не массив, значения вне 0..6) приводят к ошибке -
// вызывающая сторона пропускает такую строку расписания, не прерывая запрос
func ParseWeekdays(raw string) (Weekdays, error) {
	var days []int
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		return nil, fmt.Errorf("types: invalid weekdays encoding %q: %v", raw, err)
	}

	seen := make(map[int]bool, len(days))
	result := make(Weekdays, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("types: weekday %d out of range 0..6", d)
		}
		// Дубликаты внутри одной строки схлопываем
		if seen[d] {
			continue
		}
		seen[d] = true
		result = append(result, d)
	}

	sort.Ints(result)
	return result, nil
}

// Contains проверяет, входит ли день недели в набор
func (w Weekdays) Contains(day time.Weekday) bool {
	for _, d := range w {
		if d == int(day) {
			return true
		}
	}
	return false
}

// IsEmpty проверяет, что набор пуст
func (w Weekdays) IsEmpty() bool {
	return len(w) == 0
}

// Validate проверяет корректность набора
func (w Weekdays) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("types: weekdays must not be empty")
	}
	for _, d := range w {
		if d < 0 || d > 6 {
			return fmt.Errorf("types: weekday %d out of range 0..6", d)
		}
	}
	return nil
}

// String возвращает JSON-представление набора (формат хранения)
func (w Weekdays) String() string {
	if w == nil {
		return "[]"
	}
	b, err := json.Marshal([]int(w))
	if err != nil {
		return "[]"
	}
	return string(b)
}

// Value реализует driver.Valuer для записи в БД
func (w Weekdays) Value() (driver.Value, error) {
	return w.String(), nil
}
