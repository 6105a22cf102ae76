package client

import (
	"fmt"
	"sync"
	"time"
)

// DefaultHours is the hour grid offered when a day has no records yet.
var DefaultHours = []string{"10:00", "11:00", "12:00", "13:00", "15:00", "16:00", "17:00", "18:00", "19:00"}

// WorkingWeekdays is Monday through Saturday.
var WorkingWeekdays = []int{1, 2, 3, 4, 5, 6}

// BuildDateRange lists every day in [start, end] whose weekday (0 = Sunday)
// is in weekdays. Unparseable bounds or start after end give an empty list.
func BuildDateRange(start, end string, weekdays []int) []string {
	from, err := time.Parse(dateLayout, start)
	if err != nil {
		return []string{}
	}
	to, err := time.Parse(dateLayout, end)
	if err != nil || from.After(to) {
		return []string{}
	}
	selected := map[time.Weekday]bool{}
	for _, day := range weekdays {
		selected[time.Weekday(day)] = true
	}
	dates := []string{}
	for cursor := from; !cursor.After(to); cursor = cursor.AddDate(0, 0, 1) {
		if selected[cursor.Weekday()] {
			dates = append(dates, cursor.Format(dateLayout))
		}
	}
	return dates
}

// TotalSlots previews how many pairs a bulk call over the range would touch.
func TotalSlots(start, end string, weekdays []int, hours []string) int {
	return SlotRange{Fechas: BuildDateRange(start, end, weekdays), Horas: hours}.Size()
}

// AvailabilityBackend is the part of the API the editor needs.
type AvailabilityBackend interface {
	ListSlotsDisponibles(desde, hasta string, includeInactive bool) ([]Slot, error)
	CreateDisponibilidad(r SlotRange) (BulkResult, error)
	DeleteDisponibilidad(r SlotRange) (BulkResult, error)
}

// DaySlots is the loaded slots of one date, in server order.
type DaySlots struct {
	Fecha string
	Slots []Slot
}

// AvailabilityEditor edits slot ranges in bulk. It never patches its local
// view; every mutation is followed by a full reload of [Desde, Hasta].
type AvailabilityEditor struct {
	backend AvailabilityBackend

	mu       sync.Mutex
	desde    string
	hasta    string
	weekdays []int
	hours    []string
	slots    []Slot
	message  string
}

func NewAvailabilityEditor(backend AvailabilityBackend, desde, hasta string) *AvailabilityEditor {
	return &AvailabilityEditor{
		backend:  backend,
		desde:    desde,
		hasta:    hasta,
		weekdays: append([]int(nil), WorkingWeekdays...),
		hours:    append([]string(nil), DefaultHours...),
	}
}

// SetRange changes the view and selection range. Call Load to refresh.
func (e *AvailabilityEditor) SetRange(desde, hasta string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.desde, e.hasta = desde, hasta
}

func (e *AvailabilityEditor) SetWeekdays(weekdays []int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.weekdays = append([]int(nil), weekdays...)
}

func (e *AvailabilityEditor) SetHours(hours []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hours = append([]string(nil), hours...)
}

// Selection is the bulk range currently selected in the form.
func (e *AvailabilityEditor) Selection() SlotRange {
	e.mu.Lock()
	defer e.mu.Unlock()
	return SlotRange{
		Fechas: BuildDateRange(e.desde, e.hasta, e.weekdays),
		Horas:  append([]string(nil), e.hours...),
	}
}

func (e *AvailabilityEditor) TotalSlots() int {
	return e.Selection().Size()
}

// Message describes the outcome of the last mutation.
func (e *AvailabilityEditor) Message() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.message
}

// Load fetches every slot in the range, inactive ones included.
func (e *AvailabilityEditor) Load() error {
	e.mu.Lock()
	desde, hasta := e.desde, e.hasta
	e.mu.Unlock()
	if desde == "" || hasta == "" {
		return invalid("rango", "Debes definir un rango de fechas.")
	}

	slots, err := e.backend.ListSlotsDisponibles(desde, hasta, true)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.slots = slots
	e.mu.Unlock()
	return nil
}

func (e *AvailabilityEditor) Slots() []Slot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Slot(nil), e.slots...)
}

// Grouped returns the loaded slots by date, dates in order of first appearance.
func (e *AvailabilityEditor) Grouped() []DaySlots {
	e.mu.Lock()
	defer e.mu.Unlock()
	return groupSlots(e.slots)
}

func groupSlots(slots []Slot) []DaySlots {
	index := map[string]int{}
	groups := []DaySlots{}
	for _, slot := range slots {
		i, ok := index[slot.Fecha]
		if !ok {
			i = len(groups)
			index[slot.Fecha] = i
			groups = append(groups, DaySlots{Fecha: slot.Fecha})
		}
		groups[i].Slots = append(groups[i].Slots, slot)
	}
	return groups
}

// Save enables the selected range.
func (e *AvailabilityEditor) Save() (BulkResult, error) {
	selection := e.Selection()
	if selection.Size() == 0 {
		return BulkResult{}, invalid("rango", "Selecciona fechas y horas validas.")
	}
	result, err := e.backend.CreateDisponibilidad(selection)
	if err != nil {
		return result, err
	}
	return result, e.afterMutation(fmt.Sprintf("Horarios habilitados: %d", result.Total))
}

// Block disables the selected range. Occupied slots are left untouched by
// the server and reported in the result.
func (e *AvailabilityEditor) Block() (BulkResult, error) {
	selection := e.Selection()
	if selection.Size() == 0 {
		return BulkResult{}, invalid("rango", "Selecciona fechas y horas validas.")
	}
	result, err := e.backend.DeleteDisponibilidad(selection)
	if err != nil {
		return result, err
	}
	return result, e.afterMutation(fmt.Sprintf("Horarios bloqueados: %d", result.Total))
}

// dayHours returns the hours already recorded for fecha, or DefaultHours.
func (e *AvailabilityEditor) dayHours(fecha string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	seen := map[string]bool{}
	hours := []string{}
	for _, slot := range e.slots {
		if slot.Fecha != fecha || seen[slot.Hora] {
			continue
		}
		seen[slot.Hora] = true
		hours = append(hours, slot.Hora)
	}
	if len(hours) == 0 {
		return append([]string(nil), DefaultHours...)
	}
	return hours
}

// ToggleDay enables or blocks one whole date.
func (e *AvailabilityEditor) ToggleDay(fecha string, enable bool) (BulkResult, error) {
	payload := SlotRange{Fechas: []string{fecha}, Horas: e.dayHours(fecha)}
	if enable {
		result, err := e.backend.CreateDisponibilidad(payload)
		if err != nil {
			return result, err
		}
		return result, e.afterMutation(fmt.Sprintf("Dia habilitado (%d)", result.Total))
	}
	result, err := e.backend.DeleteDisponibilidad(payload)
	if err != nil {
		return result, err
	}
	return result, e.afterMutation(fmt.Sprintf("Dia bloqueado (%d)", result.Total))
}

// ToggleSlot flips one slot based on its current active flag.
func (e *AvailabilityEditor) ToggleSlot(slot Slot) (BulkResult, error) {
	payload := SlotRange{Fechas: []string{slot.Fecha}, Horas: []string{slot.Hora}}
	if slot.Activo.Bool() {
		result, err := e.backend.DeleteDisponibilidad(payload)
		if err != nil {
			return result, err
		}
		return result, e.afterMutation("Hora bloqueada")
	}
	result, err := e.backend.CreateDisponibilidad(payload)
	if err != nil {
		return result, err
	}
	return result, e.afterMutation("Hora habilitada")
}

func (e *AvailabilityEditor) afterMutation(message string) error {
	e.mu.Lock()
	e.message = message
	e.mu.Unlock()
	return e.Load()
}
