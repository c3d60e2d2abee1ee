package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekdays(t *testing.T) {
	t.Run("валидный набор", func(t *testing.T) {
		days, err := ParseWeekdays("[1,2,3,4,5]")
		require.NoError(t, err)
		assert.Equal(t, Weekdays{1, 2, 3, 4, 5}, days)
	})

	t.Run("дубликаты схлопываются, порядок нормализуется", func(t *testing.T) {
		days, err := ParseWeekdays("[5,1,5,3,1]")
		require.NoError(t, err)
		assert.Equal(t, Weekdays{1, 3, 5}, days)
	})

	t.Run("пустой массив валиден на уровне декодирования", func(t *testing.T) {
		days, err := ParseWeekdays("[]")
		require.NoError(t, err)
		assert.True(t, days.IsEmpty())
	})

	t.Run("не массив - ошибка", func(t *testing.T) {
		_, err := ParseWeekdays(`{"monday":true}`)
		assert.Error(t, err)
	})

	t.Run("мусор - ошибка", func(t *testing.T) {
		_, err := ParseWeekdays("not json")
		assert.Error(t, err)
	})

	t.Run("значение вне диапазона - ошибка", func(t *testing.T) {
		_, err := ParseWeekdays("[1,7]")
		assert.Error(t, err)

		_, err = ParseWeekdays("[-1]")
		assert.Error(t, err)
	})
}

func TestWeekdays_Contains(t *testing.T) {
	days := Weekdays{1, 3, 5}

	assert.True(t, days.Contains(time.Monday))
	assert.True(t, days.Contains(time.Friday))
	assert.False(t, days.Contains(time.Sunday))
	assert.False(t, days.Contains(time.Saturday))

	assert.False(t, Weekdays(nil).Contains(time.Monday))
}

func TestWeekdays_Validate(t *testing.T) {
	assert.NoError(t, Weekdays{0, 6}.Validate())
	assert.Error(t, Weekdays{}.Validate())
	assert.Error(t, Weekdays{7}.Validate())
}

func TestWeekdays_String(t *testing.T) {
	assert.Equal(t, "[1,2,3]", Weekdays{1, 2, 3}.String())
	assert.Equal(t, "[]", Weekdays(nil).String())

	v, err := Weekdays{0, 6}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[0,6]", v)
}
