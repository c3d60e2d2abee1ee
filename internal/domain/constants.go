package domain

// Default configuration values
const (
	// DefaultServiceDurationMin длительность слота, когда услуга не указана
	// Значение переопределяется секцией [booking] в config.toml
	DefaultServiceDurationMin = 30
)

// Business validation constants
const (
	MinServiceDurationMin = 5
	MaxServiceDurationMin = 480 // 8 часов

	MinutesPerDay = 24 * 60

	MinSlotIntervalMin = 1

	MaxCustomerNameLength = 200
	MaxNotesLength        = 500
)

// MillisPerMinute количество миллисекунд в минуте
// Все расчёты интервалов ведутся в миллисекундах Unix-эпохи
const MillisPerMinute int64 = 60 * 1000

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
