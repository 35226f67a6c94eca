package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hospital-portal-gateway/internal/config"
	"hospital-portal-gateway/internal/suggest"
	"hospital-portal-gateway/internal/upstream"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newDoctorHandler(t *testing.T, upstreamHandler http.HandlerFunc) *DoctorHandler {
	t.Helper()
	srv := httptest.NewServer(upstreamHandler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Upstream:   config.UpstreamConfig{APIBaseURL: srv.URL, Timeout: 5 * time.Second},
		DrugSearch: config.DrugSearchConfig{MinChars: 3, Limit: 5},
	}
	api := upstream.NewClient(cfg.Upstream, zerolog.Nop())
	return NewDoctorHandler(api, suggest.NewTracker(), cfg)
}

func TestSearchDrugsDiscardsStaleResponse(t *testing.T) {
	slowArrived := make(chan struct{})
	release := make(chan struct{})

	h := newDoctorHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("query") == "aspold" {
			close(slowArrived)
			<-release
			io.WriteString(w, `["Old Result"]`)
			return
		}
		io.WriteString(w, `["New Result"]`)
	})

	router := gin.New()
	router.GET("/drugs/search", h.SearchDrugs)

	// The first keystroke's query hangs upstream while a newer one is typed.
	staleDone := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/drugs/search?query=aspold", nil))
		staleDone <- rr
	}()

	<-slowArrived

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/drugs/search?query=aspnew", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "New Result") {
		t.Fatalf("newest query: status=%d body=%s", rr.Code, rr.Body.String())
	}

	// The early query's response arrives late and must not be applied.
	close(release)
	stale := <-staleDone
	if stale.Code != http.StatusNoContent {
		t.Errorf("late response for a superseded query: status=%d body=%s", stale.Code, stale.Body.String())
	}
}

func TestCreatePrescriptionResetsAutocompleteSequence(t *testing.T) {
	h := newDoctorHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":9,"appointmentId":5,"diagnosis":"Flu","medicineName":"Oseltamivir","dosage":"75mg"}`)
	})

	// Typing in the form bumps the session's medicine-name sequence. No
	// session middleware runs here, so the key carries an empty cookie.
	h.Tracker.Begin("|medicineName")
	h.Tracker.Begin("|medicineName")

	router := gin.New()
	router.POST("/prescriptions", h.CreatePrescription)

	body := `{"appointmentId":5,"diagnosis":"Flu","medicineName":"Oseltamivir","dosage":"75mg"}`
	req := httptest.NewRequest(http.MethodPost, "/prescriptions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body=%s", rr.Code, rr.Body.String())
	}

	// Saving closed the form; the next query starts a fresh sequence.
	if seq := h.Tracker.Begin("|medicineName"); seq != 1 {
		t.Errorf("expected a fresh sequence after save, got %d", seq)
	}
}
