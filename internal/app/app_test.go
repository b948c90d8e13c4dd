package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/hireflow/interviewer/internal/api/handler"
	"github.com/hireflow/interviewer/internal/core/domain"
	"github.com/hireflow/interviewer/internal/core/ports"
	"github.com/hireflow/interviewer/internal/infrastructure/db/memory"
)

// scriptedLLM lists questions at the question temperature and scores every
// answer 4 at the evaluation temperature.
type scriptedLLM struct{}

func (scriptedLLM) Generate(_ context.Context, _ []ports.Message, temperature float64) (string, error) {
	if temperature < 0.5 {
		return "SCORE: 4\nREASONING: Covers the essentials.", nil
	}
	return "1. How do you triage a flaky test?\n2. What belongs in a bug report?\n3. How do you test an API?\n4. Extra question?", nil
}

type echoTranscriber struct{}

func (echoTranscriber) Transcribe(_ context.Context, a ports.Audio) (string, error) {
	return "transcript of " + string(a.Data), nil
}

type fixedSpeech struct{}

func (fixedSpeech) Synthesize(context.Context, string) ([]byte, error) { return []byte("ID3-mp3"), nil }

func newTestApp(t *testing.T, loginBurst int) *App {
	t.Helper()
	store := memory.New()
	a, err := New(context.Background(), Stores{
		Candidates: store.Candidates(),
		Interviews: store.Interviews(),
		Questions:  store.Questions(),
		Answers:    store.Answers(),
		Admins:     store.Admins(),
		Settings:   store.Settings(),
		AudioCache: store.AudioCache(),
		Health:     map[string]handler.Pinger{"memory": store},
	}, Collaborators{
		LLM:         scriptedLLM{},
		Transcriber: echoTranscriber{},
		Speech:      fixedSpeech{},
	}, Options{
		JWTSecret:   "test-secret",
		Defaults:    domain.RuntimeConfig{MaxQuestions: 3, QuestionTimeoutSeconds: 60},
		CORSOrigins: []string{"http://localhost:3000"},
		LoginRate:   rate.Every(time.Hour),
		LoginBurst:  loginBurst,
		Registerer:  prometheus.NewRegistry(),
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return a
}

type client struct {
	t      *testing.T
	e      *echo.Echo
	bearer string
}

func (c *client) do(method, path string, body io.Reader, contentType string) (int, map[string]any) {
	c.t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if c.bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+c.bearer)
	}
	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			c.t.Fatalf("%s %s: invalid json: %v", method, path, err)
		}
	}
	return rec.Code, out
}

func (c *client) json(method, path, body string) (int, map[string]any) {
	return c.do(method, path, strings.NewReader(body), echo.MIMEApplicationJSON)
}

func (c *client) submit(interviewID, payload string) (int, map[string]any) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("audio", "answer.webm")
	_, _ = fw.Write([]byte(payload))
	_ = mw.Close()
	return c.do(http.MethodPost, "/ai/submit-answer/"+interviewID, &buf, mw.FormDataContentType())
}

func TestApp_InterviewLifecycle(t *testing.T) {
	a := newTestApp(t, 5)
	c := &client{t: t, e: a.Router}

	code, started := c.json(http.MethodPost, "/ai/start-interview", `{"email":"Ana@Example.com","first_name":"Ana","role":"QA Engineer"}`)
	if code != http.StatusOK {
		t.Fatalf("start: expected 200, got %d (%v)", code, started)
	}
	id, _ := started["interview_id"].(string)
	if id == "" || started["total_questions"] != float64(3) {
		t.Fatalf("unexpected start payload: %+v", started)
	}

	code, next := c.do(http.MethodGet, "/ai/next-question/"+id, nil, "")
	if code != http.StatusOK || next["question_number"] != float64(1) {
		t.Fatalf("next-question: %d %+v", code, next)
	}

	for i := 1; i <= 3; i++ {
		code, res := c.submit(id, fmt.Sprintf("answer %d", i))
		if code != http.StatusOK {
			t.Fatalf("submit %d: expected 200, got %d (%v)", i, code, res)
		}
		if res["score"] != float64(4) || res["questions_answered"] != float64(i) {
			t.Fatalf("submit %d: unexpected payload %+v", i, res)
		}
		if (i == 3) != (res["completed"] == true) {
			t.Fatalf("submit %d: unexpected completed flag %+v", i, res)
		}
	}

	code, rejected := c.submit(id, "late answer")
	if code != http.StatusBadRequest || rejected["error"] != "interview already completed" {
		t.Fatalf("submit after completion: %d %+v", code, rejected)
	}

	code, results := c.do(http.MethodGet, "/ai/interview-results/"+id, nil, "")
	if code != http.StatusOK {
		t.Fatalf("results: expected 200, got %d", code)
	}
	stats, _ := results["statistics"].(map[string]any)
	if results["status"] != "completed" || stats["total_score"] != float64(12) || stats["average_score"] != float64(4) {
		t.Fatalf("unexpected results: %+v", results)
	}
	if results["final_score"] != float64(12) || stats["answers_submitted"] != float64(3) {
		t.Fatalf("expected final score and answer count, got %+v", results)
	}
	answers, _ := results["answers"].([]any)
	if len(answers) != 3 {
		t.Fatalf("expected 3 answers, got %d", len(answers))
	}
}

func TestApp_UnknownInterview(t *testing.T) {
	c := &client{t: t, e: newTestApp(t, 5).Router}

	for _, path := range []string{"/ai/next-question/nope", "/ai/interview-results/nope", "/ai/question-audio/nope"} {
		code, body := c.do(http.MethodGet, path, nil, "")
		if code != http.StatusNotFound || body["error"] != "interview not found" {
			t.Fatalf("%s: expected 404, got %d %+v", path, code, body)
		}
	}
}

func TestApp_SubmitWithoutAudioToUnknownInterview(t *testing.T) {
	c := &client{t: t, e: newTestApp(t, 5).Router}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.Close()
	code, body := c.do(http.MethodPost, "/ai/submit-answer/nope", &buf, mw.FormDataContentType())
	if code != http.StatusNotFound || body["error"] != "interview not found" {
		t.Fatalf("expected 404, got %d %+v", code, body)
	}
}

func TestApp_QuestionAudio(t *testing.T) {
	a := newTestApp(t, 5)
	c := &client{t: t, e: a.Router}

	_, started := c.json(http.MethodPost, "/ai/start-interview", `{"email":"bo@example.com","role":"SRE"}`)
	id, _ := started["interview_id"].(string)

	req := httptest.NewRequest(http.MethodGet, "/ai/question-audio/"+id, nil)
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Header().Get(echo.HeaderContentType) != "audio/mpeg" || rec.Body.String() != "ID3-mp3" {
		t.Fatalf("unexpected audio response: %d %q %q", rec.Code, rec.Header().Get(echo.HeaderContentType), rec.Body.String())
	}
}

func TestApp_AdminFlow(t *testing.T) {
	a := newTestApp(t, 5)
	if _, err := a.Auth.CreateAdmin(context.Background(), "admin@example.com", "correct-horse"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	c := &client{t: t, e: a.Router}

	if code, _ := c.do(http.MethodGet, "/api/admin/interviews", nil, ""); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", code)
	}
	if code, _ := c.json(http.MethodPost, "/api/admin/login", `{"email":"admin@example.com","password":"wrong-pass"}`); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", code)
	}

	code, login := c.json(http.MethodPost, "/api/admin/login", `{"email":"admin@example.com","password":"correct-horse"}`)
	if code != http.StatusOK || login["token_type"] != "bearer" {
		t.Fatalf("login: %d %+v", code, login)
	}
	c.bearer, _ = login["access_token"].(string)

	_, _ = c.json(http.MethodPost, "/ai/start-interview", `{"email":"ana@example.com","role":"QA Engineer"}`)
	_, _ = c.json(http.MethodPost, "/ai/start-interview", `{"email":"bo@example.com","role":"SRE"}`)

	code, list := c.do(http.MethodGet, "/api/admin/interviews?role=SRE", nil, "")
	items, _ := list["interviews"].([]any)
	if code != http.StatusOK || len(items) != 1 {
		t.Fatalf("list by role: %d %+v", code, list)
	}
	summary := items[0].(map[string]any)
	candidate, _ := summary["candidate"].(map[string]any)
	if candidate["email"] != "bo@example.com" {
		t.Fatalf("expected candidate attached, got %+v", summary)
	}

	code, detail := c.do(http.MethodGet, "/api/admin/interviews/"+summary["id"].(string), nil, "")
	if code != http.StatusOK || detail["role"] != "SRE" {
		t.Fatalf("detail: %d %+v", code, detail)
	}

	if code, body := c.json(http.MethodPut, "/api/admin/config", `{"max_questions":0}`); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range config, got %d %+v", code, body)
	}
	code, cfg := c.json(http.MethodPut, "/api/admin/config", `{"max_questions":7}`)
	if code != http.StatusOK || cfg["max_questions"] != float64(7) || cfg["question_timeout_seconds"] != float64(60) {
		t.Fatalf("config update: %d %+v", code, cfg)
	}

	c.bearer = ""
	_, root := c.do(http.MethodGet, "/", nil, "")
	if root["max_questions"] != float64(7) {
		t.Fatalf("root should report updated config, got %+v", root)
	}
	_, started := c.json(http.MethodPost, "/ai/start-interview", `{"email":"cy@example.com","role":"SRE"}`)
	if started["total_questions"] != float64(7) {
		t.Fatalf("new interviews should use updated config, got %+v", started)
	}
}

func TestApp_LoginIsRateLimited(t *testing.T) {
	c := &client{t: t, e: newTestApp(t, 2).Router}

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		code, _ := c.json(http.MethodPost, "/api/admin/login", `{"email":"nobody@example.com","password":"guess-guess"}`)
		codes = append(codes, code)
	}
	if codes[0] != http.StatusUnauthorized || codes[1] != http.StatusUnauthorized || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected [401 401 429], got %v", codes)
	}
}

func TestApp_Probes(t *testing.T) {
	c := &client{t: t, e: newTestApp(t, 5).Router}

	if code, body := c.do(http.MethodGet, "/health/ready", nil, ""); code != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("readiness: %d %+v", code, body)
	}
	if code, _ := c.do(http.MethodGet, "/metrics", nil, ""); code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", code)
	}
}
