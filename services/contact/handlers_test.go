package contact

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"soluciones-site/api/pkg/clients/emailjs"
	"soluciones-site/api/pkg/i18n"
)

func newTestServer(t *testing.T, mailer *mockMailer) *httptest.Server {
	t.Helper()
	tr, err := i18n.New()
	if err != nil {
		t.Fatalf("failed to load translator: %v", err)
	}
	wf, err := NewWorkflow(testConfig, mailer, tr)
	if err != nil {
		t.Fatalf("failed to create workflow: %v", err)
	}

	svc, err := NewService(wf, tr, nil)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	router := mux.NewRouter()
	svc.LoadRoutes(router.PathPrefix("/api/v1").Subrouter())

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postSubmit(t *testing.T, srv *httptest.Server, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/v1/contact", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp, payload
}

func TestHandleSubmit_Success(t *testing.T) {
	t.Parallel()
	mailer := &mockMailer{}
	srv := newTestServer(t, mailer)

	body := `{"lang":"es","givenName":"Ana","familyName":"Lopez","email":"ana@example.com","message":"Hola"}`
	resp, payload := postSubmit(t, srv, body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	status, ok := payload["status"].(map[string]any)
	if !ok {
		t.Fatalf("expected status object, got %v", payload)
	}
	if status["kind"] != "success" {
		t.Errorf("expected success kind, got %v", status["kind"])
	}
	fields, ok := payload["fields"].(map[string]any)
	if !ok || fields["givenName"] != "" || fields["email"] != "" {
		t.Errorf("expected reset fields, got %v", payload["fields"])
	}
	if len(mailer.calls) != 2 {
		t.Errorf("expected 2 sends, got %d", len(mailer.calls))
	}
}

func TestHandleSubmit_ValidationFailureIsBusinessOutcome(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, &mockMailer{})

	body := `{"lang":"es","givenName":"Ana","familyName":"Lopez","email":"not-an-email","message":"Hola"}`
	resp, payload := postSubmit(t, srv, body)

	// Invalid input is a workflow outcome, not an HTTP error.
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	status := payload["status"].(map[string]any)
	if status["kind"] != "error" {
		t.Errorf("expected error kind, got %v", status["kind"])
	}
	if status["message"] != "Ingresa un correo electrónico válido" {
		t.Errorf("unexpected message: %v", status["message"])
	}
	fields := payload["fields"].(map[string]any)
	if fields["email"] != "not-an-email" {
		t.Errorf("expected fields retained, got %v", payload["fields"])
	}
}

func TestHandleSubmit_HoneypotLooksLikeNothingHappened(t *testing.T) {
	t.Parallel()
	mailer := &mockMailer{}
	srv := newTestServer(t, mailer)

	body := `{"lang":"es","givenName":"Bot","familyName":"Net","email":"bot@spam.example","message":"buy","honeypot":"gotcha"}`
	resp, payload := postSubmit(t, srv, body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	status := payload["status"].(map[string]any)
	if status["kind"] != "none" || status["message"] != "" {
		t.Errorf("expected silent drop, got %v", status)
	}
	if len(mailer.calls) != 0 {
		t.Errorf("expected zero sends, got %d", len(mailer.calls))
	}
}

func TestHandleSubmit_UnsupportedLangFallsBack(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, &mockMailer{})

	body := `{"lang":"fr","givenName":"","familyName":"","email":"","message":""}`
	_, payload := postSubmit(t, srv, body)

	status := payload["status"].(map[string]any)
	if status["message"] != "Por favor completa todos los campos obligatorios" {
		t.Errorf("expected spanish fallback, got %v", status["message"])
	}
}

func TestHandleSubmit_InvalidBody(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, &mockMailer{})

	resp, payload := postSubmit(t, srv, `{not json`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if payload["code"] != "INVALID_BODY" {
		t.Errorf("expected INVALID_BODY, got %v", payload["code"])
	}
}

func TestHandleSubmit_TransportFailure(t *testing.T) {
	t.Parallel()
	mailer := &mockMailer{errs: []error{&emailjs.APIError{StatusCode: 500, Text: "server error"}}}
	srv := newTestServer(t, mailer)

	body := `{"lang":"es","givenName":"Ana","familyName":"Lopez","email":"ana@example.com","message":"Hola"}`
	resp, payload := postSubmit(t, srv, body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	status := payload["status"].(map[string]any)
	if status["kind"] != "error" {
		t.Errorf("expected error kind, got %v", status["kind"])
	}
	if status["message"] != "No se pudo enviar. Intenta nuevamente." {
		t.Errorf("unexpected message: %v", status["message"])
	}
	if len(mailer.calls) != 1 {
		t.Errorf("expected the autoreply to be skipped, got %d sends", len(mailer.calls))
	}
}
