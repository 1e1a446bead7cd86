package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"nutrichat/internal/meal"
	"nutrichat/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	chatOut    meal.ChatOutput
	chatErr    error
	chatScope  model.Scope
	chatInput  meal.ChatInput
	dayOut     meal.DaySummaryOutput
	dayErr     error
	historyOut meal.HistoryOutput
	historyErr error
}

func (m *mockUseCase) Chat(ctx context.Context, sc model.Scope, input meal.ChatInput) (meal.ChatOutput, error) {
	m.chatScope = sc
	m.chatInput = input
	return m.chatOut, m.chatErr
}

func (m *mockUseCase) DaySummary(ctx context.Context, day string) (meal.DaySummaryOutput, error) {
	return m.dayOut, m.dayErr
}

func (m *mockUseCase) History(ctx context.Context) (meal.HistoryOutput, error) {
	return m.historyOut, m.historyErr
}

func newTestRouter(uc meal.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(&mockLogger{}, uc))
	return r
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func TestChatHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{chatOut: meal.ChatOutput{
			SessionID:         "sess-1",
			Reply:             "What size were the eggs?",
			NeedsConfirmation: false,
			Outcome:           meal.OutcomePlainReply,
		}}
		r := newTestRouter(uc)

		body := bytes.NewBufferString(`{"message":"I had some eggs","session_id":"sess-1"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/chat", body)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var env envelope
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("invalid envelope: %v", err)
		}
		var resp chatResp
		if err := json.Unmarshal(env.Data, &resp); err != nil {
			t.Fatalf("invalid data: %v", err)
		}
		if resp.Reply != "What size were the eggs?" || resp.SessionID != "sess-1" {
			t.Errorf("unexpected response: %+v", resp)
		}
		if uc.chatScope.SessionID != "sess-1" {
			t.Errorf("session ID not passed through scope: %+v", uc.chatScope)
		}
	})

	t.Run("MissingMessage", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("ModelUnavailable", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{chatErr: meal.ErrModelUnavailable})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(`{"message":"2 eggs"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
	})
}

func TestDaySummaryHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{dayOut: meal.DaySummaryOutput{
			Day: "2026-08-31",
			Summary: model.DaySummary{
				Calories: 400, Protein: 17, Carbs: 57, Fat: 11,
				Items: []model.FoodItem{{Food: "Eggs (2 large)", Protein: 12, Carbs: 1, Fat: 10, Calories: 140}},
			},
		}}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/history/2026-08-31", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var env envelope
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("invalid envelope: %v", err)
		}
		var resp daySummaryResp
		if err := json.Unmarshal(env.Data, &resp); err != nil {
			t.Fatalf("invalid data: %v", err)
		}
		if resp.Date != "2026-08-31" || resp.Calories != 400 {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("MalformedDate", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/history/31-08-2026", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("NoMealsThatDay", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{dayErr: meal.ErrNoMealsForDay})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/history/2026-01-01", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestHistoryHandler(t *testing.T) {
	uc := &mockUseCase{historyOut: meal.HistoryOutput{
		Days: map[string]model.DaySummary{
			"2026-08-31": {Calories: 140, Protein: 12, Carbs: 1, Fat: 10},
		},
	}}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/history", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	var resp historyResp
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if len(resp.Days) != 1 || resp.Days["2026-08-31"].Calories != 140 {
		t.Errorf("unexpected response: %+v", resp)
	}
}
