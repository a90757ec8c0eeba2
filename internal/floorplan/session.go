// Package floorplan реализует сессию редактора плана зала: изменяемую
// in-memory коллекцию столов с привязкой к сетке, выделением, дублированием
// и фоновым изображением.
//
// Сессия - явный объект, принадлежащий вызывающей стороне (одна активная
// сессия редактирования на сотрудника). Арбитраж конкурентных писателей
// не предусмотрен.
package floorplan

import (
	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
)

// Session сессия редактора плана зала одного ресторана
type Session struct {
	restaurantID    uuid.UUID
	tables          []*domain.Table
	selectedTableID *uuid.UUID
	dragging        bool
	backgroundImage *string

	gridSize     float64
	canvasWidth  float64
	canvasHeight float64
}

// Options параметры канваса сессии. Нулевые поля заменяются значениями
// по умолчанию (1200x800, сетка 20).
type Options struct {
	GridSize     float64
	CanvasWidth  float64
	CanvasHeight float64
}

// NewSession создает пустую сессию редактора для ресторана
func NewSession(restaurantID uuid.UUID, opts Options) *Session {
	if opts.GridSize <= 0 {
		opts.GridSize = domain.DefaultGridSize
	}
	if opts.CanvasWidth <= 0 {
		opts.CanvasWidth = domain.DefaultCanvasWidth
	}
	if opts.CanvasHeight <= 0 {
		opts.CanvasHeight = domain.DefaultCanvasHeight
	}

	return &Session{
		restaurantID: restaurantID,
		tables:       make([]*domain.Table, 0),
		gridSize:     opts.GridSize,
		canvasWidth:  opts.CanvasWidth,
		canvasHeight: opts.CanvasHeight,
	}
}

// TableSpec описание нового стола для AddTable
type TableSpec struct {
	TableNumber string
	Capacity    int
	Shape       domain.TableShape
	X           float64
	Y           float64
	Width       *float64 // только для rectangle
	Height      *float64 // только для rectangle
	ZoneName    string
}

// TableUpdate частичное изменение стола: nil-поля не трогаются
type TableUpdate struct {
	TableNumber *string
	Capacity    *int
	Shape       *domain.TableShape
	X           *float64
	Y           *float64
	Rotation    *int
	Width       *float64
	Height      *float64
	ZoneName    *string
}

// AddTable добавляет стол, привязывая координаты к сетке, и делает его
// выделенным. Всегда успешен.
func (s *Session) AddTable(spec TableSpec) *domain.Table {
	table := &domain.Table{
		ID:           uuid.New(),
		RestaurantID: s.restaurantID,
		TableNumber:  spec.TableNumber,
		Capacity:     spec.Capacity,
		Shape:        spec.Shape,
		X:            s.SnapToGrid(spec.X),
		Y:            s.SnapToGrid(spec.Y),
		Rotation:     0,
		Width:        spec.Width,
		Height:       spec.Height,
		ZoneName:     spec.ZoneName,
	}

	s.tables = append(s.tables, table)
	s.selectedTableID = &table.ID
	return table
}

// UpdateTable применяет частичные изменения. Координаты из change set
// привязываются к сетке перед сохранением. Неизвестный id - no-op.
func (s *Session) UpdateTable(id uuid.UUID, update TableUpdate) {
	table := s.findTable(id)
	if table == nil {
		return
	}

	if update.TableNumber != nil {
		table.TableNumber = *update.TableNumber
	}
	if update.Capacity != nil {
		table.Capacity = *update.Capacity
	}
	if update.Shape != nil {
		table.Shape = *update.Shape
	}
	if update.X != nil {
		table.X = s.SnapToGrid(*update.X)
	}
	if update.Y != nil {
		table.Y = s.SnapToGrid(*update.Y)
	}
	if update.Rotation != nil {
		table.Rotation = *update.Rotation
	}
	if update.Width != nil {
		table.Width = update.Width
	}
	if update.Height != nil {
		table.Height = update.Height
	}
	if update.ZoneName != nil {
		table.ZoneName = *update.ZoneName
	}
}

// MoveTable перемещает стол при перетаскивании: позиция сначала
// ограничивается канвасом, затем привязывается к сетке
func (s *Session) MoveTable(id uuid.UUID, x, y float64) {
	clampedX, clampedY := s.ClampToCanvas(x, y)
	s.UpdateTable(id, TableUpdate{X: &clampedX, Y: &clampedY})
}

// RotateTable поворачивает стол на следующий угол цикла 0-90-180-270.
// Неизвестный id - no-op.
func (s *Session) RotateTable(id uuid.UUID) {
	table := s.findTable(id)
	if table == nil {
		return
	}
	table.Rotation = domain.NextRotation(table.Rotation)
}

// DuplicateTable клонирует стол со смещением позиции на DuplicateOffset по
// обеим осям и суффиксом "-copy" в номере. Копия становится выделенной.
// Неизвестный id - no-op.
func (s *Session) DuplicateTable(id uuid.UUID) *domain.Table {
	table := s.findTable(id)
	if table == nil {
		return nil
	}

	clone := *table
	clone.ID = uuid.New()
	clone.X = s.SnapToGrid(table.X + domain.DuplicateOffset)
	clone.Y = s.SnapToGrid(table.Y + domain.DuplicateOffset)
	clone.TableNumber = table.TableNumber + "-copy"

	s.tables = append(s.tables, &clone)
	s.selectedTableID = &clone.ID
	return &clone
}

// DeleteTable удаляет стол и снимает с него выделение, если он был выделен.
// Неизвестный id - no-op. Прошлые бронирования сохраняют ссылку на id
// удаленного стола.
func (s *Session) DeleteTable(id uuid.UUID) {
	for i, table := range s.tables {
		if table.ID == id {
			s.tables = append(s.tables[:i], s.tables[i+1:]...)
			if s.selectedTableID != nil && *s.selectedTableID == id {
				s.selectedTableID = nil
			}
			return
		}
	}
}

// SelectTable выделяет стол (nil снимает выделение). Геометрию не меняет.
func (s *Session) SelectTable(id *uuid.UUID) {
	s.selectedTableID = id
}

// ClearSelection снимает выделение
func (s *Session) ClearSelection() {
	s.selectedTableID = nil
}

// SetDragging устанавливает признак активного перетаскивания
func (s *Session) SetDragging(dragging bool) {
	s.dragging = dragging
}

// IsDragging возвращает признак активного перетаскивания
func (s *Session) IsDragging() bool {
	return s.dragging
}

// SetBackgroundImage связывает с планом фоновое изображение (nil убирает его)
func (s *Session) SetBackgroundImage(url *string) {
	s.backgroundImage = url
}

// BackgroundImage возвращает текущее фоновое изображение
func (s *Session) BackgroundImage() *string {
	return s.backgroundImage
}

// LoadTables заменяет содержимое сессии сохраненным набором столов
// и снимает выделение
func (s *Session) LoadTables(tables []*domain.Table) {
	s.tables = make([]*domain.Table, 0, len(tables))
	for _, table := range tables {
		copied := *table
		s.tables = append(s.tables, &copied)
	}
	s.selectedTableID = nil
}

// Reset возвращает сессию к пустому состоянию
func (s *Session) Reset() {
	s.tables = make([]*domain.Table, 0)
	s.selectedTableID = nil
	s.dragging = false
	s.backgroundImage = nil
}

// Tables возвращает копию текущего набора столов в порядке добавления
func (s *Session) Tables() []*domain.Table {
	tables := make([]*domain.Table, 0, len(s.tables))
	for _, table := range s.tables {
		copied := *table
		tables = append(tables, &copied)
	}
	return tables
}

// SelectedTableID возвращает id выделенного стола или nil
func (s *Session) SelectedTableID() *uuid.UUID {
	if s.selectedTableID == nil {
		return nil
	}
	id := *s.selectedTableID
	return &id
}

// Snapshot возвращает персистируемую форму сессии
func (s *Session) Snapshot() domain.FloorPlanSnapshot {
	return domain.FloorPlanSnapshot{
		RestaurantID: s.restaurantID,
		Meta: domain.FloorPlanMeta{
			Version:         domain.FloorPlanVersion,
			CanvasWidth:     s.canvasWidth,
			CanvasHeight:    s.canvasHeight,
			GridSize:        s.gridSize,
			BackgroundImage: s.backgroundImage,
			Zones:           []string{},
		},
		Tables: s.Tables(),
	}
}

// SnapToGrid привязывает координату к ближайшему узлу сетки сессии
func (s *Session) SnapToGrid(value float64) float64 {
	return domain.SnapToGrid(value, s.gridSize)
}

// ClampToCanvas ограничивает позицию границами канваса. Используется
// фиксированный footprint DefaultFootprint независимо от формы и размеров
// стола - принятое упрощение, крупные прямоугольники могут визуально
// выходить за край.
func (s *Session) ClampToCanvas(x, y float64) (float64, float64) {
	maxX := s.canvasWidth - domain.DefaultFootprint
	maxY := s.canvasHeight - domain.DefaultFootprint

	return clamp(x, 0, maxX), clamp(y, 0, maxY)
}

func (s *Session) findTable(id uuid.UUID) *domain.Table {
	for _, table := range s.tables {
		if table.ID == id {
			return table
		}
	}
	return nil
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
