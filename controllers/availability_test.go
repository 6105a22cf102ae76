package controllers_test

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/iskiospa/iskio-api/models"
)

type bulkResponse struct {
	Message  string `json:"message"`
	Total    int    `json:"total"`
	Omitidas int    `json:"omitidas"`
}

type slotResponse struct {
	Fecha   string `json:"fecha"`
	Hora    string `json:"hora"`
	Activo  bool   `json:"activo"`
	Ocupada bool   `json:"ocupada"`
}

func TestCreateDisponibilidadIsIdempotent(t *testing.T) {
	app, conn := newTestApp(t)
	token := adminToken(t, conn)
	body := map[string][]string{"fechas": {"2025-03-10", "2025-03-11"}, "horas": {"10:00", "11:00:00"}}

	var first bulkResponse
	if status := doJSON(t, app, http.MethodPost, "/api/disponibilidad", token, body, &first); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if first.Total != 4 {
		t.Fatalf("expected 4 slots enabled, got %d", first.Total)
	}

	var second bulkResponse
	doJSON(t, app, http.MethodPost, "/api/disponibilidad", token, body, &second)
	if second.Total != 0 {
		t.Errorf("expected repeat to change nothing, got %d", second.Total)
	}

	var count int64
	conn.Model(&models.Slot{}).Count(&count)
	if count != 4 {
		t.Errorf("expected 4 stored slots, got %d", count)
	}
}

func TestDisponibilidadReadModes(t *testing.T) {
	app, conn := newTestApp(t)
	token := adminToken(t, conn)

	doJSON(t, app, http.MethodPost, "/api/disponibilidad", token,
		map[string][]string{"fechas": {"2025-03-10"}, "horas": {"10:00", "11:00"}}, nil)
	doJSON(t, app, http.MethodPost, "/api/disponibilidad", token,
		map[string][]string{"fechas": {"2025-03-12"}, "horas": {"15:00"}}, nil)

	var days []string
	doJSON(t, app, http.MethodGet, "/api/disponibilidad?desde=2025-03-01&hasta=2025-03-31&modo=dias", "", nil, &days)
	if !reflect.DeepEqual(days, []string{"2025-03-10", "2025-03-12"}) {
		t.Errorf("unexpected days %v", days)
	}

	var byDate struct {
		Fecha string   `json:"fecha"`
		Horas []string `json:"horas"`
	}
	doJSON(t, app, http.MethodGet, "/api/disponibilidad?fecha=2025-03-10", "", nil, &byDate)
	if byDate.Fecha != "2025-03-10" || !reflect.DeepEqual(byDate.Horas, []string{"10:00", "11:00"}) {
		t.Errorf("unexpected hours %+v", byDate)
	}

	var empty struct {
		Horas []string `json:"horas"`
	}
	doJSON(t, app, http.MethodGet, "/api/disponibilidad?fecha=2025-03-11", "", nil, &empty)
	if empty.Horas == nil || len(empty.Horas) != 0 {
		t.Errorf("expected empty hour list, got %v", empty.Horas)
	}

	var inverted []string
	doJSON(t, app, http.MethodGet, "/api/disponibilidad?desde=2025-03-31&hasta=2025-03-01&modo=dias", "", nil, &inverted)
	if len(inverted) != 0 {
		t.Errorf("expected inverted range to be empty, got %v", inverted)
	}

	if status := doJSON(t, app, http.MethodGet, "/api/disponibilidad?desde=marzo&hasta=2025-03-01", "", nil, nil); status != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid range, got %d", status)
	}
}

func TestDeleteDisponibilidadDeactivates(t *testing.T) {
	app, conn := newTestApp(t)
	token := adminToken(t, conn)

	doJSON(t, app, http.MethodPost, "/api/disponibilidad", token,
		map[string][]string{"fechas": {"2025-03-10"}, "horas": {"10:00", "11:00"}}, nil)

	var removed bulkResponse
	doJSON(t, app, http.MethodDelete, "/api/disponibilidad", token,
		map[string][]string{"fechas": {"2025-03-10"}, "horas": {"10:00"}}, &removed)
	if removed.Total != 1 {
		t.Fatalf("expected 1 slot blocked, got %d", removed.Total)
	}

	var again bulkResponse
	doJSON(t, app, http.MethodDelete, "/api/disponibilidad", token,
		map[string][]string{"fechas": {"2025-03-10"}, "horas": {"10:00"}}, &again)
	if again.Total != 0 {
		t.Errorf("expected repeat block to change nothing, got %d", again.Total)
	}

	var active []slotResponse
	doJSON(t, app, http.MethodGet, "/api/disponibilidad?desde=2025-03-10&hasta=2025-03-10", "", nil, &active)
	if len(active) != 1 || active[0].Hora != "11:00" {
		t.Errorf("expected only 11:00 active, got %+v", active)
	}

	var all []slotResponse
	doJSON(t, app, http.MethodGet, "/api/disponibilidad?desde=2025-03-10&hasta=2025-03-10&include_inactive=1", "", nil, &all)
	if len(all) != 2 || all[0].Hora != "10:00" || all[0].Activo {
		t.Errorf("expected inactive 10:00 in detail listing, got %+v", all)
	}

	var days []string
	doJSON(t, app, http.MethodGet, "/api/disponibilidad?desde=2025-03-10&hasta=2025-03-10&modo=dias", "", nil, &days)
	if !reflect.DeepEqual(days, []string{"2025-03-10"}) {
		t.Errorf("expected day to stay available, got %v", days)
	}

	doJSON(t, app, http.MethodDelete, "/api/disponibilidad", token,
		map[string][]string{"fechas": {"2025-03-10"}, "horas": {"11:00"}}, nil)
	days = nil
	doJSON(t, app, http.MethodGet, "/api/disponibilidad?desde=2025-03-10&hasta=2025-03-10&modo=dias", "", nil, &days)
	if len(days) != 0 {
		t.Errorf("expected no available days, got %v", days)
	}
}

func TestDeleteDisponibilidadSkipsOccupied(t *testing.T) {
	app, conn := newTestApp(t)
	token := adminToken(t, conn)

	conn.Create(&models.Slot{Fecha: "2025-03-10", Hora: "10:00", Activo: true, Ocupada: true})
	conn.Create(&models.Slot{Fecha: "2025-03-10", Hora: "11:00", Activo: true})

	var removed bulkResponse
	doJSON(t, app, http.MethodDelete, "/api/disponibilidad", token,
		map[string][]string{"fechas": {"2025-03-10"}, "horas": {"10:00", "11:00"}}, &removed)
	if removed.Total != 1 || removed.Omitidas != 1 {
		t.Errorf("expected 1 blocked and 1 skipped, got %+v", removed)
	}

	var slot models.Slot
	conn.Where("fecha = ? AND hora = ?", "2025-03-10", "10:00").First(&slot)
	if !slot.Activo || !slot.Ocupada {
		t.Errorf("occupied slot must stay untouched, got %+v", slot)
	}
}

func TestDisponibilidadMutationsRequireAdmin(t *testing.T) {
	app, conn := newTestApp(t)
	body := map[string][]string{"fechas": {"2025-03-10"}, "horas": {"10:00"}}

	if status := doJSON(t, app, http.MethodPost, "/api/disponibilidad", "", body, nil); status != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", status)
	}

	staff := tokenFor(t, createUser(t, conn, "recepcion", "secreto", models.RoleStaff, ""))
	if status := doJSON(t, app, http.MethodDelete, "/api/disponibilidad", staff, body, nil); status != http.StatusForbidden {
		t.Errorf("expected 403 for staff, got %d", status)
	}

	admin := adminToken(t, conn)
	bad := map[string][]string{"fechas": {"10/03/2025"}, "horas": {"10:00"}}
	if status := doJSON(t, app, http.MethodPost, "/api/disponibilidad", admin, bad, nil); status != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid date, got %d", status)
	}
	empty := map[string][]string{"fechas": {}, "horas": {"10:00"}}
	if status := doJSON(t, app, http.MethodPost, "/api/disponibilidad", admin, empty, nil); status != http.StatusBadRequest {
		t.Errorf("expected 400 for empty dates, got %d", status)
	}
}
