package domain

// Default restaurant configuration values
const (
	DefaultBaseTurnoverMinutes = 120
	DefaultSlotIntervalMinutes = 30
	DefaultOpeningTime         = "12:00"
	DefaultClosingTime         = "23:00"
)

// Floor plan canvas defaults
const (
	FloorPlanVersion    = "1.0"
	DefaultCanvasWidth  = 1200.0
	DefaultCanvasHeight = 800.0
	DefaultGridSize     = 20.0

	// DefaultFootprint сторона стандартного footprint стола на канвасе.
	// Используется и как размер square/round столов, и как габарит при
	// ограничении перетаскивания (даже для прямоугольных столов - крупные
	// прямоугольники могут визуально выходить за канвас, это принятое упрощение).
	DefaultFootprint = 100.0

	// DuplicateOffset смещение копии стола при дублировании (кратно сетке)
	DuplicateOffset = 40.0
)

// Business validation constants
const (
	MinPartySize         = 1
	MaxPartySize         = 50
	MaxGuestNotesLength  = 500
	MaxTableNumberLength = 50
	MaxZoneNameLength    = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
