package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/robalobadob/bossdle/internal/catalog"
	"github.com/robalobadob/bossdle/internal/daily"
	"github.com/robalobadob/bossdle/internal/game"
	"github.com/robalobadob/bossdle/internal/receipt"
	"github.com/robalobadob/bossdle/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	cat, err := catalog.New([]catalog.Entry{
		{Name: "Margit", Region: "Weeping Peninsula", Category: "Demigod", Damage: catalog.Number(500), Remembrance: true},
		{Name: "Godrick", Region: "Stormveil", Category: "Demigod", Damage: catalog.Number(600)},
	})
	if err != nil {
		t.Fatal(err)
	}
	cal := daily.NewCalendar(loc, time.Date(2025, 10, 17, 0, 0, 0, 0, loc))
	now := time.Date(2025, 10, 17, 12, 0, 0, 0, loc)
	eng, err := game.NewEngine(cat, cal, store.NewMemoryStore(), game.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatal(err)
	}
	eng.Load(context.Background())
	signer, err := receipt.NewSigner("test-secret")
	if err != nil {
		t.Fatal(err)
	}
	return New(eng, cat, signer, Options{ClientOrigin: "http://example.test"})
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealthAndCatalog(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://example.test" {
		t.Errorf("CORS origin = %q", got)
	}

	rec = do(t, s, http.MethodGet, "/catalog", "")
	names := decode[map[string][]string](t, rec)["names"]
	if len(names) != 2 || names[0] != "Margit" {
		t.Errorf("GET /catalog names = %v", names)
	}
}

func TestPuzzleFlow(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/puzzle", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /puzzle status = %d body %s", rec.Code, rec.Body)
	}
	snap := decode[game.Snapshot](t, rec)
	if snap.Day != 0 || snap.Label != "Bossdle: 001" || snap.Status != game.StatusInProgress || snap.Answer != "" {
		t.Fatalf("snapshot = %+v", snap)
	}

	rec = do(t, s, http.MethodGet, "/share", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("GET /share before finish status = %d", rec.Code)
	}

	rec = do(t, s, http.MethodPost, "/puzzle/guess", `{"guess":"Malenia"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown guess status = %d", rec.Code)
	}
	if e := decode[errorRes](t, rec); e.Error != "unknown_guess" || e.Message != "Not a valid boss name." {
		t.Errorf("unknown guess body = %+v", e)
	}

	rec = do(t, s, http.MethodPost, "/puzzle/guess", `{"guess":"godrick"}`)
	out := decode[game.Outcome](t, rec)
	if rec.Code != http.StatusOK || !out.Accepted || out.Status != game.StatusInProgress || out.Remaining != 5 {
		t.Fatalf("guess godrick = %d %+v", rec.Code, out)
	}

	rec = do(t, s, http.MethodPost, "/puzzle/guess", `{"guess":"Godrick"}`)
	if e := decode[errorRes](t, rec); rec.Code != http.StatusBadRequest || e.Error != "duplicate_guess" {
		t.Fatalf("duplicate guess = %d %+v", rec.Code, e)
	}

	rec = do(t, s, http.MethodPost, "/puzzle/guess", `{"guess":"Margit"}`)
	out = decode[game.Outcome](t, rec)
	if out.Status != game.StatusWon || out.Answer != "Margit" {
		t.Fatalf("winning guess = %+v", out)
	}

	rec = do(t, s, http.MethodPost, "/puzzle/guess", `{"guess":"Godrick"}`)
	out = decode[game.Outcome](t, rec)
	if rec.Code != http.StatusOK || out.Accepted {
		t.Fatalf("guess after win = %d %+v", rec.Code, out)
	}

	rec = do(t, s, http.MethodGet, "/stats", "")
	if st := decode[game.Stats](t, rec); st != (game.Stats{Played: 1, Wins: 1, Streak: 1}) {
		t.Errorf("GET /stats = %+v", st)
	}

	rec = do(t, s, http.MethodGet, "/share", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /share status = %d body %s", rec.Code, rec.Body)
	}
	share := decode[shareRes](t, rec)
	if share.Text != "Bossdle 001 2/6\n⬛⬛🟩⬛⬛\n🟩🟩🟩🟩🟩" || share.Receipt == "" {
		t.Fatalf("share = %+v", share)
	}

	rec = do(t, s, http.MethodPost, "/share/verify", `{"receipt":"`+share.Receipt+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("verify status = %d body %s", rec.Code, rec.Body)
	}
	v := decode[map[string]any](t, rec)
	if v["valid"] != true || v["status"] != "won" || v["label"] != "Bossdle: 001" {
		t.Errorf("verify body = %v", v)
	}

	rec = do(t, s, http.MethodPost, "/share/verify", `{"receipt":"bogus"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bogus receipt status = %d", rec.Code)
	}
}

func TestBadJSONAndNotFound(t *testing.T) {
	s := newTestServer(t)
	if rec := do(t, s, http.MethodPost, "/puzzle/guess", `{`); rec.Code != http.StatusBadRequest {
		t.Errorf("bad json status = %d", rec.Code)
	}
	if rec := do(t, s, http.MethodGet, "/nope", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown route status = %d", rec.Code)
	}
}
