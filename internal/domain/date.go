package domain

import "time"

// Граница дня везде считается по UTC: день недели и полночь вычисляются
// от UTC-представления переданного момента. Конвертация в часовой пояс
// клиента - забота слоя отображения, не движка

// MidnightUTC возвращает полночь (UTC) дня, которому принадлежит момент ts
func MidnightUTC(ts int64) int64 {
	t := time.UnixMilli(ts).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).UnixMilli()
}

// WeekdayUTC возвращает день недели (UTC) момента ts
func WeekdayUTC(ts int64) time.Weekday {
	return time.UnixMilli(ts).UTC().Weekday()
}
