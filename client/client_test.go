package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     exp.Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func loggedInClient(t *testing.T, url, token string) *Client {
	t.Helper()
	c := New(url, nil)
	c.Session().SetAccessToken(token, true)
	c.Session().SetStoredUser(&User{ID: 1, Username: "admin", Rol: "admin"}, true)
	return c
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func TestUnauthorizedClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token inválido"})
	}))
	defer srv.Close()

	c := loggedInClient(t, srv.URL, signedToken(t, time.Now().Add(time.Hour)))
	_, err := c.ListCitasAdmin()
	if !IsUnauthorized(err) {
		t.Fatalf("expected 401 error, got %v", err)
	}
	if c.Session().AccessToken() != "" {
		t.Errorf("token survived a 401")
	}
	if c.Session().StoredUser() != nil {
		t.Errorf("user survived a 401")
	}
}

func TestBearerTokenAttached(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))
	var gotAuth, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		writeJSON(w, http.StatusOK, []AdminCita{{ID: 3, Cliente: "Ana"}})
	}))
	defer srv.Close()

	c := loggedInClient(t, srv.URL, token)
	citas, err := c.ListCitasAdmin()
	if err != nil {
		t.Fatalf("ListCitasAdmin: %v", err)
	}
	if gotAuth != "Bearer "+token {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotType != "application/json" {
		t.Errorf("Content-Type = %q", gotType)
	}
	if len(citas) != 1 || citas[0].Estado != EstadoPendiente {
		t.Errorf("citas = %+v", citas)
	}
}

func TestDoMergesCallerHeaders(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))
	var gotAuth, gotLang, gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotLang = r.Header.Get("Accept-Language")
		gotMethod = r.Method
		gotPath = r.URL.Path
		writeJSON(w, http.StatusOK, map[string]int{"total_citas": 4})
	}))
	defer srv.Close()

	c := loggedInClient(t, srv.URL, token)
	var overview map[string]int
	err := c.Do(http.MethodGet, "dashboard/overview", nil, &overview,
		WithHeader("Accept-Language", "es"))
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if gotMethod != http.MethodGet || gotPath != "/dashboard/overview" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if gotLang != "es" {
		t.Errorf("Accept-Language = %q", gotLang)
	}
	if gotAuth != "Bearer "+token {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if overview["total_citas"] != 4 {
		t.Errorf("overview = %v", overview)
	}

	if err := c.Do(http.MethodGet, "/dashboard/overview", nil, nil,
		WithHeader("Authorization", "Bearer otro")); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if gotAuth != "Bearer otro" {
		t.Errorf("caller Authorization not applied: %q", gotAuth)
	}
}

func TestExpiredTokenDroppedBeforeRequest(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, []Service{})
	}))
	defer srv.Close()

	c := loggedInClient(t, srv.URL, signedToken(t, time.Now().Add(-time.Minute)))
	if _, err := c.ListServices(); err != nil {
		t.Fatalf("ListServices: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expired token was sent: %q", gotAuth)
	}
	if c.Session().AccessToken() != "" || c.Session().StoredUser() != nil {
		t.Errorf("expired session not cleared")
	}
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	if !tokenExpired(signedToken(t, now.Add(-time.Second)), now) {
		t.Errorf("past exp should be expired")
	}
	if tokenExpired(signedToken(t, now.Add(time.Hour)), now) {
		t.Errorf("future exp should not be expired")
	}
	if tokenExpired("not-a-jwt", now) {
		t.Errorf("malformed token is left to the server")
	}
}

func TestErrorMessageIsRawBody(t *testing.T) {
	bodies := map[string]string{
		`{"message":"Horario no disponible"}`: `{"message":"Horario no disponible"}`,
		"":                                    fallbackErrorMessage,
	}
	for body, want := range bodies {
		body := body
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			io.WriteString(w, body)
		}))

		c := New(srv.URL, nil)
		_, err := c.CreateCita(NewCita{Nombre: "Ana"})
		srv.Close()

		if got := Message(err); got != want {
			t.Errorf("Message = %q, want %q", got, want)
		}
	}
}

func TestTransportErrorIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, nil, WithTimeout(time.Second))
	if _, err := c.ListServices(); err == nil {
		t.Fatalf("expected error from closed server")
	}
}

func TestDisponibilidadQueries(t *testing.T) {
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.RawQuery)
		q := r.URL.Query()
		switch {
		case q.Get("modo") == "dias":
			writeJSON(w, http.StatusOK, []string{"2025-03-10"})
		case q.Get("fecha") != "":
			writeJSON(w, http.StatusOK, map[string]interface{}{"fecha": q.Get("fecha"), "horas": nil})
		default:
			writeJSON(w, http.StatusOK, nil)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	days, err := c.ListDiasDisponibles("2025-03-01", "2025-03-31")
	if err != nil || len(days) != 1 {
		t.Fatalf("days = %v, err = %v", days, err)
	}
	horas, err := c.GetDisponibilidadPorFecha("2025-03-11")
	if err != nil || horas == nil || len(horas) != 0 {
		t.Fatalf("horas = %#v, err = %v", horas, err)
	}
	slots, err := c.ListSlotsDisponibles("2025-03-01", "2025-03-31", true)
	if err != nil || slots == nil {
		t.Fatalf("slots = %#v, err = %v", slots, err)
	}
	if queries[2] != "desde=2025-03-01&hasta=2025-03-31&include_inactive=1" {
		t.Errorf("slot query = %q", queries[2])
	}
}

func TestServiceInputClearsCategoria(t *testing.T) {
	raw, err := json.Marshal(ServiceInput{ClearCategoria: true})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(raw) != `{"categoria_id":null}` {
		t.Fatalf("got %s", raw)
	}

	name := "Relajante"
	raw, _ = json.Marshal(ServiceInput{Nombre: &name})
	if string(raw) != `{"nombre":"Relajante"}` {
		t.Fatalf("got %s", raw)
	}

	none := []string{}
	raw, _ = json.Marshal(ServiceInput{Beneficios: &none})
	if string(raw) != `{"beneficios":[]}` {
		t.Fatalf("empty benefits must be sent to clear them, got %s", raw)
	}
}
