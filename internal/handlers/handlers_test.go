package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wordkingdom/internal/models"
	"wordkingdom/internal/questionbank"
	"wordkingdom/internal/security"
	"wordkingdom/internal/service"
	"wordkingdom/internal/storage"
	"wordkingdom/internal/store"
)

// newTestServer wires the full API surface over in-memory storage,
// mirroring the mux assembly in cmd/server
func newTestServer(t *testing.T) (*httptest.Server, *questionbank.Bank) {
	t.Helper()

	kv := storage.NewMemory()
	bank := questionbank.New()
	profiles := store.NewProfileStore(kv, nil)
	board := store.NewLeaderboardStore(kv, nil)
	parental := store.NewParentalStore(kv)
	gate := security.NewParentGate("test-secret", time.Hour)
	email, err := service.NewEmailService("", "", "")
	if err != nil {
		t.Fatalf("NewEmailService() error: %v", err)
	}
	reports := service.NewReportService(email)

	mw := NewMiddleware(gate)
	playHandler := NewPlayHandler(kv, profiles, bank, NewSessionRegistry())
	profileHandler := NewProfileHandler(profiles)
	leaderboardHandler := NewLeaderboardHandler(kv, profiles, board)
	parentHandler := NewParentHandler(profiles, parental, gate, reports)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/profile", mw.WithDevice(profileHandler.GetProfile))
	mux.HandleFunc("POST /api/profile/name", mw.WithDevice(profileHandler.Rename))
	mux.HandleFunc("POST /api/settings", mw.WithDevice(profileHandler.UpdateSettings))
	mux.HandleFunc("GET /api/worlds", mw.WithDevice(profileHandler.GetWorlds))
	mux.HandleFunc("POST /api/play/start/{world}", mw.WithDevice(playHandler.StartWorld))
	mux.HandleFunc("GET /api/play/current", mw.WithDevice(playHandler.CurrentQuestion))
	mux.HandleFunc("POST /api/play/answer", mw.WithDevice(playHandler.SubmitAnswer))
	mux.HandleFunc("POST /api/play/hint", mw.WithDevice(playHandler.RequestHint))
	mux.HandleFunc("POST /api/play/skip", mw.WithDevice(playHandler.SkipQuestion))
	mux.HandleFunc("POST /api/play/advance", mw.WithDevice(playHandler.Advance))
	mux.HandleFunc("POST /api/play/story", mw.WithDevice(playHandler.SubmitStory))
	mux.HandleFunc("POST /api/play/quit", mw.WithDevice(playHandler.QuitSession))
	mux.HandleFunc("GET /api/leaderboard", leaderboardHandler.List)
	mux.HandleFunc("POST /api/leaderboard", mw.WithDevice(leaderboardHandler.Submit))
	mux.HandleFunc("POST /api/parent/pin", mw.WithDevice(parentHandler.SetPIN))
	mux.HandleFunc("POST /api/parent/unlock", mw.WithDevice(parentHandler.Unlock))
	mux.HandleFunc("POST /api/parent/lock", mw.WithDevice(parentHandler.Lock))
	mux.HandleFunc("GET /api/parent/report", mw.WithDevice(mw.RequireParent(parentHandler.GetReport)))
	mux.HandleFunc("POST /api/parent/report/email", mw.WithDevice(mw.RequireParent(parentHandler.EmailReport)))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, bank
}

// client carries cookies between requests like a browser would
type client struct {
	t       *testing.T
	base    string
	cookies []*http.Cookie
}

func (c *client) do(method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		c.t.Fatalf("build request: %v", err)
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	for _, cookie := range resp.Cookies() {
		c.setCookie(cookie)
	}

	var payload map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return resp, payload
}

func (c *client) setCookie(cookie *http.Cookie) {
	for i, existing := range c.cookies {
		if existing.Name == cookie.Name {
			c.cookies[i] = cookie
			return
		}
	}
	c.cookies = append(c.cookies, cookie)
}

func TestFullWorldPlaythrough(t *testing.T) {
	server, bank := newTestServer(t)
	c := &client{t: t, base: server.URL}

	resp, _ := c.do("GET", "/api/profile", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /api/profile = %d", resp.StatusCode)
	}
	if len(c.cookies) == 0 {
		t.Fatal("no device cookie issued on first contact")
	}

	resp, _ = c.do("POST", "/api/play/start/hamzat", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("start world = %d", resp.StatusCode)
	}

	// Answer every question correctly, looking up the right index in the
	// question bank by ID
	questions := bank.GetQuestions(models.WorldHamzat)
	byID := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	var finalPayload map[string]interface{}
	for i := 0; i < len(questions); i++ {
		resp, payload := c.do("GET", "/api/play/current", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("current question %d = %d", i, resp.StatusCode)
		}
		question := payload["question"].(map[string]interface{})
		id := question["id"].(string)

		resp, payload = c.do("POST", "/api/play/answer",
			map[string]int{"selectedIndex": byID[id].CorrectIndex})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("answer %d = %d", i, resp.StatusCode)
		}
		if payload["correct"] != true {
			t.Fatalf("answer %d marked incorrect", i)
		}

		resp, payload = c.do("POST", "/api/play/advance", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("advance %d = %d", i, resp.StatusCode)
		}
		finalPayload = payload
	}

	if finalPayload["finished"] != true {
		t.Fatal("playthrough did not finish after the last question")
	}
	completion := finalPayload["completion"].(map[string]interface{})
	if completion["starsEarned"].(float64) != 3 {
		t.Errorf("stars = %v, want 3", completion["starsEarned"])
	}
	notifications := finalPayload["notifications"].([]interface{})
	if len(notifications) == 0 {
		t.Error("no notifications on a run that unlocks the next world")
	}

	// The second world must now be open
	resp, _ = c.do("GET", "/api/worlds", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /api/worlds = %d", resp.StatusCode)
	}
	resp, _ = c.do("POST", "/api/play/start/taa", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("start unlocked second world = %d", resp.StatusCode)
	}
}

func TestLockedWorldReturnsForbidden(t *testing.T) {
	server, _ := newTestServer(t)
	c := &client{t: t, base: server.URL}

	resp, _ := c.do("POST", "/api/play/start/creative", nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("start locked world = %d, want 403", resp.StatusCode)
	}

	resp, _ = c.do("POST", "/api/play/start/narnia", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("start unknown world = %d, want 404", resp.StatusCode)
	}
}

func TestAnswerWithoutSessionReturnsNotFound(t *testing.T) {
	server, _ := newTestServer(t)
	c := &client{t: t, base: server.URL}

	resp, _ := c.do("POST", "/api/play/answer", map[string]int{"selectedIndex": 0})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("answer without session = %d, want 404", resp.StatusCode)
	}
}

func TestRenameAndSettings(t *testing.T) {
	server, _ := newTestServer(t)
	c := &client{t: t, base: server.URL}

	resp, payload := c.do("POST", "/api/profile/name", map[string]string{"name": "ياسمين"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("rename = %d", resp.StatusCode)
	}
	if payload["name"] != "ياسمين" {
		t.Errorf("renamed profile name = %v", payload["name"])
	}

	resp, _ = c.do("POST", "/api/profile/name", map[string]string{"name": "   "})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("blank rename = %d, want 400", resp.StatusCode)
	}

	resp, _ = c.do("POST", "/api/settings", map[string]interface{}{
		"sound": false, "music": false, "adaptiveDifficulty": true,
		"parentalMode": false, "theme": "dark",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("settings = %d", resp.StatusCode)
	}

	resp, _ = c.do("POST", "/api/settings", map[string]interface{}{"theme": "neon"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid theme = %d, want 400", resp.StatusCode)
	}
}

func TestParentGateFlow(t *testing.T) {
	server, _ := newTestServer(t)
	c := &client{t: t, base: server.URL}

	// Report is locked before any PIN exists
	resp, _ := c.do("GET", "/api/parent/report", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("report before unlock = %d, want 401", resp.StatusCode)
	}

	resp, _ = c.do("POST", "/api/parent/pin", map[string]string{"pin": "2468"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("set PIN = %d", resp.StatusCode)
	}

	resp, _ = c.do("POST", "/api/parent/unlock", map[string]string{"pin": "1111"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong PIN = %d, want 401", resp.StatusCode)
	}

	resp, _ = c.do("POST", "/api/parent/unlock", map[string]string{"pin": "2468"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unlock = %d", resp.StatusCode)
	}

	resp, payload := c.do("GET", "/api/parent/report", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("report after unlock = %d", resp.StatusCode)
	}
	if _, ok := payload["worlds"]; !ok {
		t.Error("report missing worlds section")
	}

	// Email delivery succeeds even with SES disabled (logged skip)
	resp, _ = c.do("POST", "/api/parent/report/email", map[string]string{"email": "parent@example.com"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("email report = %d", resp.StatusCode)
	}

	// Locking closes the gate again
	resp, _ = c.do("POST", "/api/parent/lock", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("lock = %d", resp.StatusCode)
	}
}

func TestLeaderboardSubmitAndList(t *testing.T) {
	server, _ := newTestServer(t)
	c := &client{t: t, base: server.URL}

	resp, payload := c.do("POST", "/api/leaderboard", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("submit = %d", resp.StatusCode)
	}
	if _, ok := payload["entry"]; !ok {
		t.Error("submit response missing entry")
	}

	req, err := http.NewRequest("GET", c.base+"/api/leaderboard", nil)
	if err != nil {
		t.Fatal(err)
	}
	listResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer listResp.Body.Close()

	var entries []map[string]interface{}
	if err := json.NewDecoder(listResp.Body).Decode(&entries); err != nil {
		t.Fatalf("decode leaderboard: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("leaderboard entries = %d, want 1", len(entries))
	}
}

func TestStoryWorldEndsWithCreativeQuestion(t *testing.T) {
	server, bank := newTestServer(t)
	c := &client{t: t, base: server.URL}

	// Worlds unlock in order, so play all five back to back
	byID := make(map[string]models.Question)
	for _, world := range models.WorldOrder {
		for _, q := range bank.GetQuestions(world) {
			byID[q.ID] = q
		}
	}

	playWorld := func(world models.WorldKey) map[string]interface{} {
		resp, _ := c.do("POST", fmt.Sprintf("/api/play/start/%s", world), nil)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("start %s = %d", world, resp.StatusCode)
		}
		for {
			resp, payload := c.do("GET", "/api/play/current", nil)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("current in %s = %d", world, resp.StatusCode)
			}
			question := payload["question"].(map[string]interface{})
			if question["type"] == string(models.QuestionCreative) {
				_, payload = c.do("POST", "/api/play/story", map[string]string{
					"text": "في قديم الزمان عاش ملك يحب الخيال والمغامرة وذهب يبحث عن كنز السحر",
				})
				return payload
			}

			id := question["id"].(string)
			c.do("POST", "/api/play/answer", map[string]int{"selectedIndex": byID[id].CorrectIndex})
			_, payload = c.do("POST", "/api/play/advance", nil)
			if payload["finished"] == true {
				return payload
			}
		}
	}

	var last map[string]interface{}
	for _, world := range models.WorldOrder {
		last = playWorld(world)
	}

	if last["finished"] != true {
		t.Fatal("creative world did not finish")
	}
	if _, ok := last["storyScore"]; !ok {
		t.Error("creative completion missing story score")
	}
	completion := last["completion"].(map[string]interface{})
	if completion["imaginationPoints"].(float64) <= 0 {
		t.Error("creative run earned no imagination points")
	}
}
