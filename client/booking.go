package client

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const dateLayout = "2006-01-02"

// BookingBackend is the part of the API the booking form talks to.
type BookingBackend interface {
	ListServices() ([]Service, error)
	ListDiasDisponibles(desde, hasta string) ([]string, error)
	GetDisponibilidadPorFecha(fecha string) ([]string, error)
	CreateCita(cita NewCita) (CitaCreated, error)
}

type BookingState int

const (
	BookingIdle BookingState = iota
	BookingLoadingHours
	BookingHoursReady
	BookingSubmitting
	BookingSuccess
	BookingError
)

func (s BookingState) String() string {
	switch s {
	case BookingLoadingHours:
		return "loading-hours"
	case BookingHoursReady:
		return "hours-ready"
	case BookingSubmitting:
		return "submitting"
	case BookingSuccess:
		return "success"
	case BookingError:
		return "error"
	default:
		return "idle"
	}
}

var (
	diasSemana = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	meses      = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio",
		"agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

// longDate renders 2025-03-10 as "lunes 10 de marzo de 2025".
func longDate(fecha string) string {
	day, err := time.Parse(dateLayout, fecha)
	if err != nil {
		return fecha
	}
	return fmt.Sprintf("%s %d de %s de %d", diasSemana[day.Weekday()], day.Day(), meses[day.Month()-1], day.Year())
}

// BookingContact holds the free-text fields of the public booking form.
type BookingContact struct {
	Rut      string
	Nombre   string
	Correo   string
	Telefono string
}

func (b BookingContact) complete() bool {
	for _, field := range []string{b.Rut, b.Nombre, b.Correo, b.Telefono} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}

// BookingForm drives the public booking workflow. Every fetch is tagged with
// a sequence number and only the latest one per kind may update the form, so
// a slow answer for a previous month or date never overwrites a newer one.
type BookingForm struct {
	backend  BookingBackend
	now      func() time.Time
	location *time.Location

	mu         sync.Mutex
	contact    BookingContact
	servicios  []Service
	servicioID uint
	fecha      string
	hora       string
	horas      []string
	state      BookingState
	message    string

	month      string
	days       map[string]bool
	daysLoaded bool

	monthSeq uint64
	hoursSeq uint64
}

type BookingOption func(*BookingForm)

// WithBookingClock fixes the form's notion of today.
func WithBookingClock(now func() time.Time) BookingOption {
	return func(f *BookingForm) { f.now = now }
}

// WithBookingLocation sets the zone used to decide which dates are in the past.
func WithBookingLocation(loc *time.Location) BookingOption {
	return func(f *BookingForm) { f.location = loc }
}

func NewBookingForm(backend BookingBackend, opts ...BookingOption) *BookingForm {
	f := &BookingForm{
		backend:  backend,
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *BookingForm) SetContact(contact BookingContact) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contact = contact
}

func (f *BookingForm) Contact() BookingContact {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.contact
}

func (f *BookingForm) SetServicio(id uint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.servicioID = id
}

func (f *BookingForm) Servicio() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.servicioID
}

// LoadServices fetches the bookable services and keeps the active ones. When
// no service is chosen yet the first active one is preselected. On error the
// list is left empty.
func (f *BookingForm) LoadServices() error {
	services, err := f.backend.ListServices()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.servicios = []Service{}
	if err != nil {
		return err
	}
	for _, service := range services {
		if service.Activo.Bool() {
			f.servicios = append(f.servicios, service)
		}
	}
	if f.servicioID == 0 && len(f.servicios) > 0 {
		f.servicioID = f.servicios[0].ID
	}
	return nil
}

// Servicios returns the services offered by the form.
func (f *BookingForm) Servicios() []Service {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Service(nil), f.servicios...)
}

// SelectMonth loads the available days of the month containing month. A
// failed fetch leaves an empty set, which disables every day. It is ignored
// while a submit is in flight.
func (f *BookingForm) SelectMonth(month time.Time) {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, f.location)
	last := first.AddDate(0, 1, -1)
	key := first.Format("2006-01")

	f.mu.Lock()
	if f.state == BookingSubmitting {
		f.mu.Unlock()
		return
	}
	f.monthSeq++
	seq := f.monthSeq
	f.month = key
	f.days = nil
	f.daysLoaded = false
	f.mu.Unlock()

	days, err := f.backend.ListDiasDisponibles(first.Format(dateLayout), last.Format(dateLayout))

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.monthSeq {
		return
	}
	set := make(map[string]bool, len(days))
	if err == nil {
		for _, day := range days {
			set[day] = true
		}
	}
	f.days = set
	f.daysLoaded = true
}

// MonthLoaded reports whether the current month's day set has arrived.
func (f *BookingForm) MonthLoaded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.daysLoaded
}

// IsDateDisabled reports whether fecha (YYYY-MM-DD) can not be picked.
// Until the month's day set arrives only past dates and Sundays are disabled.
func (f *BookingForm) IsDateDisabled(fecha string) bool {
	day, err := time.ParseInLocation(dateLayout, fecha, f.location)
	if err != nil {
		return true
	}
	now := f.now().In(f.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, f.location)
	if day.Before(today) || day.Weekday() == time.Sunday {
		return true
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.daysLoaded || day.Format("2006-01") != f.month {
		return false
	}
	return !f.days[fecha]
}

// SelectDate picks a day, clears any chosen hour and loads that day's hours.
// A failed fetch is shown as a day with no hours. It is ignored while a
// submit is in flight.
func (f *BookingForm) SelectDate(fecha string) {
	f.mu.Lock()
	if f.state == BookingSubmitting {
		f.mu.Unlock()
		return
	}
	f.hoursSeq++
	seq := f.hoursSeq
	f.fecha = fecha
	f.hora = ""
	f.horas = nil
	f.state = BookingLoadingHours
	f.message = ""
	f.mu.Unlock()

	horas, err := f.backend.GetDisponibilidadPorFecha(fecha)

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.hoursSeq {
		return
	}
	if err != nil || horas == nil {
		horas = []string{}
	}
	f.horas = horas
	f.state = BookingHoursReady
}

func (f *BookingForm) Fecha() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fecha
}

// Horas returns the hours offered for the selected date. An empty result
// once loaded is the "no slots" state.
func (f *BookingForm) Horas() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.horas...)
}

// NoSlots reports a loaded date with zero hours.
func (f *BookingForm) NoSlots() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == BookingHoursReady && len(f.horas) == 0
}

// SelectHour picks one of the loaded hours.
func (f *BookingForm) SelectHour(hora string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == BookingSubmitting {
		return invalid("hora", "Espera a que termine el envío")
	}
	if f.fecha == "" {
		return invalid("fecha", "Selecciona una fecha")
	}
	for _, h := range f.horas {
		if h == hora {
			f.hora = hora
			return nil
		}
	}
	return invalid("hora", "Hora no disponible")
}

func (f *BookingForm) Hora() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hora
}

func (f *BookingForm) State() BookingState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Message is the success text or the verbatim error of the last submit.
func (f *BookingForm) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

func (f *BookingForm) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canSubmit()
}

func (f *BookingForm) canSubmit() bool {
	return f.state != BookingSubmitting &&
		f.contact.complete() &&
		f.servicioID != 0 &&
		f.fecha != "" &&
		f.hora != ""
}

// Submit posts the appointment. On success the form resets but keeps the
// selected service.
func (f *BookingForm) Submit() (CitaCreated, error) {
	f.mu.Lock()
	if !f.canSubmit() {
		f.mu.Unlock()
		return CitaCreated{}, invalid("form", "Completa todos los campos requeridos")
	}
	cita := NewCita{
		Nombre:     strings.TrimSpace(f.contact.Nombre),
		Correo:     strings.TrimSpace(f.contact.Correo),
		Telefono:   strings.TrimSpace(f.contact.Telefono),
		Rut:        strings.TrimSpace(f.contact.Rut),
		Fecha:      f.fecha + " 00:00:00",
		Hora:       f.hora + ":00",
		ServicioID: f.servicioID,
	}
	f.state = BookingSubmitting
	f.message = ""
	f.mu.Unlock()

	created, err := f.backend.CreateCita(cita)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = BookingError
		f.message = Message(err)
		return CitaCreated{}, err
	}
	f.message = fmt.Sprintf("Reserva confirmada para el %s a las %s.", longDate(f.fecha), f.hora)
	f.contact = BookingContact{}
	f.fecha = ""
	f.hora = ""
	f.horas = nil
	f.hoursSeq++
	f.state = BookingSuccess
	return created, nil
}
