package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"guild-planning/internal/model"
	"guild-planning/internal/schedule"
	"guild-planning/internal/schedule/delivery/telegram"
	pkgTelegram "guild-planning/pkg/telegram"
	"guild-planning/pkg/weekcal"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockUseCase struct {
	mu sync.Mutex

	viewOutput   schedule.ViewOutput
	viewErr      error
	addOutput    schedule.AddOutput
	addErr       error
	clearOutput  schedule.ClearOutput
	clearErr     error
	statusOutput schedule.StatusOutput
	statusErr    error

	lastScope model.Scope
	lastAdd   schedule.AddInput
	lastClear *schedule.ClearInput
	addCalls  int
	adds      []string
}

func (m *mockUseCase) Load(ctx context.Context) (schedule.LoadOutput, error) {
	return schedule.LoadOutput{}, nil
}

func (m *mockUseCase) View(ctx context.Context, sc model.Scope) (schedule.ViewOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastScope = sc
	return m.viewOutput, m.viewErr
}

func (m *mockUseCase) Add(ctx context.Context, sc model.Scope, input schedule.AddInput) (schedule.AddOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastScope = sc
	m.lastAdd = input
	m.addCalls++
	m.adds = append(m.adds, input.Text)
	return m.addOutput, m.addErr
}

func (m *mockUseCase) Clear(ctx context.Context, sc model.Scope, input schedule.ClearInput) (schedule.ClearOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastScope = sc
	m.lastClear = &input
	return m.clearOutput, m.clearErr
}

func (m *mockUseCase) Status(ctx context.Context, sc model.Scope) (schedule.StatusOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastScope = sc
	return m.statusOutput, m.statusErr
}

func (m *mockUseCase) addedTexts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.adds...)
}

func (m *mockUseCase) snapshot() (model.Scope, schedule.AddInput, *schedule.ClearInput, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastScope, m.lastAdd, m.lastClear, m.addCalls
}

// capture records the texts the bot sends.
type capture struct {
	mu       sync.Mutex
	messages []string
	modes    []string
}

func (c *capture) add(text, mode string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, text)
	c.modes = append(c.modes, mode)
}

func (c *capture) all() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.messages...)
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type testEnv struct {
	engine   *gin.Engine
	handler  telegram.Handler
	uc       *mockUseCase
	captured *capture

	// memberDelay returns how long getChatMember takes; nil answers at once.
	memberDelay atomic.Pointer[func() time.Duration]
}

func newTestEnv(t *testing.T, memberStatus string, rateLimit int) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	captured := &capture{}
	env := &testEnv{captured: captured}

	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			var payload pkgTelegram.SendMessageRequest
			_ = json.NewDecoder(r.Body).Decode(&payload)
			captured.add(payload.Text, payload.ParseMode)
			w.Write([]byte(`{"ok": true}`))
		case strings.HasSuffix(r.URL.Path, "/getChatMember"):
			if delay := env.memberDelay.Load(); delay != nil {
				time.Sleep((*delay)())
			}
			if memberStatus == "" {
				w.Write([]byte(`{"ok": false, "description": "Bad Request: chat not found"}`))
				return
			}
			fmt.Fprintf(w, `{"ok": true, "result": {"status": %q}}`, memberStatus)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(tgServer.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	uc := &mockUseCase{}
	engine := gin.New()
	h := telegram.New(&mockLogger{}, uc, bot, telegram.Config{Title: "📅 Planning", RateLimitPerMin: rateLimit})
	engine.POST("/webhook/telegram", h.HandleWebhook)

	env.engine = engine
	env.handler = h
	env.uc = uc
	return env
}

func sendWebhook(engine *gin.Engine, chatType, text string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: -100123, Type: chatType},
			From:      &pkgTelegram.User{ID: 456, FirstName: "Alice", Username: "alice"},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func waitForMessages(c *capture, atLeast int, timeout time.Duration) []string {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) && len(c.all()) < atLeast {
		time.Sleep(10 * time.Millisecond)
	}
	return c.all()
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}

func wednesdayWeek() weekcal.WeekView {
	return weekcal.CurrentWeek(time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC))
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env := newTestEnv(t, pkgTelegram.MemberStatusAdministrator, 0)

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	env := newTestEnv(t, pkgTelegram.MemberStatusAdministrator, 0)

	body, _ := json.Marshal(pkgTelegram.Update{UpdateID: 1})
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestHandleWebhook_PlainTextIgnored(t *testing.T) {
	env := newTestEnv(t, pkgTelegram.MemberStatusAdministrator, 0)

	w := sendWebhook(env.engine, pkgTelegram.ChatTypeGroup, "hello everyone")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	time.Sleep(100 * time.Millisecond)
	if msgs := env.captured.all(); len(msgs) != 0 {
		t.Errorf("expected no reply, got %v", msgs)
	}
}

func TestHandleHelp(t *testing.T) {
	env := newTestEnv(t, pkgTelegram.MemberStatusMember, 0)

	sendWebhook(env.engine, pkgTelegram.ChatTypeGroup, "/start")
	msgs := waitForMessages(env.captured, 1, 500*time.Millisecond)
	assertContains(t, msgs, "/ajouter_planning")
}

func TestHandleView(t *testing.T) {
	env := newTestEnv(t, pkgTelegram.MemberStatusMember, 0)

	week := wednesdayWeek()
	out := schedule.ViewOutput{Week: week}
	for i, d := range week.Days {
		out.Days[i] = schedule.DaySchedule{Day: d}
	}
	out.Days[1].Events = []string{"Game night", "<b>Finale</b>"}
	env.uc.viewOutput = out

	sendWebhook(env.engine, pkgTelegram.ChatTypeGroup, "/p@PlanningBot")
	msgs := waitForMessages(env.captured, 1, 500*time.Millisecond)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}

	board := msgs[0]
	assertContains(t, msgs, "Du 29 avril au 5 mai")
	assertContains(t, msgs, "<b>Mardi 30 avril</b>")
	assertContains(t, msgs, "• Game night")
	assertContains(t, msgs, "&lt;b&gt;Finale&lt;/b&gt;")
	if n := strings.Count(board, "Aucune partie prévue."); n != 6 {
		t.Errorf("expected 6 empty days, got %d", n)
	}

	sc, _, _, _ := env.uc.snapshot()
	if sc.Community != -100123 || sc.UserID != 456 {
		t.Errorf("unexpected scope: %+v", sc)
	}
}

func TestHandleAdd(t *testing.T) {
	env := newTestEnv(t, pkgTelegram.MemberStatusAdministrator, 0)
	env.uc.addOutput = schedule.AddOutput{Day: wednesdayWeek().Days[1], EventCount: 1}

	sendWebhook(env.engine, pkgTelegram.ChatTypeGroup, "/ap mardi   Game night 21h")
	msgs := waitForMessages(env.captured, 1, 500*time.Millisecond)
	assertContains(t, msgs, "✅ Événement ajouté au planning du Mardi 30 avril !")

	_, in, _, _ := env.uc.snapshot()
	if in.Day != "mardi" || in.Text != "Game night 21h" {
		t.Errorf("unexpected add input: %+v", in)
	}
}

func TestHandleAdd_Usage(t *testing.T) {
	env := newTestEnv(t, pkgTelegram.MemberStatusCreator, 0)

	sendWebhook(env.engine, pkgTelegram.ChatTypeGroup, "/ajouter_planning mardi")
	msgs := waitForMessages(env.captured, 1, 500*time.Millisecond)
	assertContains(t, msgs, "Usage")

	if _, _, _, calls := env.uc.snapshot(); calls != 0 {
		t.Errorf("expected no Add call, got %d", calls)
	}
}

func TestHandleAdd_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid day", fmt.Errorf("wrap: %w", schedule.ErrInvalidDayName), "❌ Jour invalide ! Utilisez : lundi, mardi"},
		{"empty event", schedule.ErrEmptyEvent, "vide"},
		{"storage", fmt.Errorf("%w: %w", schedule.ErrStorage, context.DeadlineExceeded), "réessayez"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, pkgTelegram.MemberStatusAdministrator, 0)
			env.uc.addErr = tt.err

			sendWebhook(env.engine, pkgTelegram.ChatTypeGroup, "/ap funday text")
			msgs := waitForMessages(env.captured, 1, 500*time.Millisecond)
			assertContains(t, msgs, tt.want)
		})
	}
}

func TestHandleAdd_RequiresModerator(t *testing.T) {
	env := newTestEnv(t, pkgTelegram.MemberStatusMember, 0)

	sendWebhook(env.engine, pkgTelegram.ChatTypeSupergroup, "/ap mardi Game night")
	msgs := waitForMessages(env.captured, 1, 500*time.Millisecond)
	assertContains(t, msgs, "modérateur")

	if _, _, _, calls := env.uc.snapshot(); calls != 0 {
		t.Errorf("expected no Add call, got %d", calls)
	}
}

func TestHandleAdd_MemberLookupFails(t *testing.T) {
	env := newTestEnv(t, "", 0)

	sendWebhook(env.engine, pkgTelegram.ChatTypeGroup, "/ap mardi Game night")
	msgs := waitForMessages(env.captured, 1, 500*time.Millisecond)
	assertContains(t, msgs, "permissions")
}

func TestHandleAdd_PrivateChatAlwaysAllowed(t *testing.T) {
	env := newTestEnv(t, "", 0)
	env.uc.addOutput = schedule.AddOutput{Day: wednesdayWeek().Days[0], EventCount: 1}

	sendWebhook(env.engine, pkgTelegram.ChatTypePrivate, "/ap lundi Raid")
	msgs := waitForMessages(env.captured, 1, 500*time.Millisecond)
	assertContains(t, msgs, "✅ Événement ajouté")
}

func TestHandleClear(t *testing.T) {
	tuesday := wednesdayWeek().Days[1]
	tests := []struct {
		name    string
		text    string
		out     schedule.ClearOutput
		wantDay string
		want    string
	}{
		{"all", "/ep", schedule.ClearOutput{All: true, Removed: 3}, "", "✅ Tout le planning a été effacé !"},
		{"one day", "/effacer_planning mardi", schedule.ClearOutput{Day: tuesday, Removed: 2}, "mardi", "✅ Planning du Mardi effacé !"},
		{"empty day", "/eplanning Mardi", schedule.ClearOutput{Day: tuesday}, "Mardi", "ℹ️ Aucun événement pour Mardi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, pkgTelegram.MemberStatusCreator, 0)
			env.uc.clearOutput = tt.out

			sendWebhook(env.engine, pkgTelegram.ChatTypeGroup, tt.text)
			msgs := waitForMessages(env.captured, 1, 500*time.Millisecond)
			assertContains(t, msgs, tt.want)

			_, _, in, _ := env.uc.snapshot()
			if in == nil {
				t.Fatal("expected Clear to be called")
			}
			if in.Day != tt.wantDay {
				t.Errorf("expected day %q, got %q", tt.wantDay, in.Day)
			}
		})
	}
}

func TestHandleStatus(t *testing.T) {
	tests := []struct {
		name string
		out  schedule.StatusOutput
		want string
	}{
		{"nothing loaded", schedule.StatusOutput{}, "Aucun planning chargé en mémoire."},
		{"loaded", schedule.StatusOutput{Cached: 4, Stored: 4, StoredKnown: true}, "4 événements chargés pour ce serveur."},
		{"diverged", schedule.StatusOutput{Cached: 4, Stored: 5, StoredKnown: true}, "La base en contient 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, pkgTelegram.MemberStatusMember, 0)
			env.uc.statusOutput = tt.out

			sendWebhook(env.engine, pkgTelegram.ChatTypeGroup, "/debug_planning")
			msgs := waitForMessages(env.captured, 1, 500*time.Millisecond)
			assertContains(t, msgs, tt.want)
		})
	}
}

func TestHandleGreeting(t *testing.T) {
	env := newTestEnv(t, pkgTelegram.MemberStatusAdministrator, 0)

	sendWebhook(env.engine, pkgTelegram.ChatTypeGroup, "/bonjour")
	msgs := waitForMessages(env.captured, 1, 500*time.Millisecond)
	assertContains(t, msgs, "Bonjour Alice !")
}

func TestRateLimit(t *testing.T) {
	// 6 per minute gives a burst of 1.
	env := newTestEnv(t, pkgTelegram.MemberStatusMember, 6)

	sendWebhook(env.engine, pkgTelegram.ChatTypeGroup, "/debug_planning")
	waitForMessages(env.captured, 1, 500*time.Millisecond)
	sendWebhook(env.engine, pkgTelegram.ChatTypeGroup, "/debug_planning")
	msgs := waitForMessages(env.captured, 2, 500*time.Millisecond)
	assertContains(t, msgs, "Trop de commandes")
}

func TestHandleWebhook_AddsKeepArrivalOrder(t *testing.T) {
	env := newTestEnv(t, "administrator", 0)
	jitter := func() time.Duration { return time.Duration(rand.Intn(5)) * time.Millisecond }
	env.memberDelay.Store(&jitter)

	var want []string
	for i := 0; i < 20; i++ {
		text := fmt.Sprintf("e%02d", i)
		want = append(want, text)
		if w := sendWebhook(env.engine, pkgTelegram.ChatTypeSupergroup, "/ap mardi "+text); w.Code != http.StatusOK {
			t.Fatalf("webhook %d: expected 200, got %d", i, w.Code)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := env.handler.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	got := env.uc.addedTexts()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("adds reached the use case out of order:\n got %v\nwant %v", got, want)
	}
}

func TestShutdown_WaitsForAcceptedCommand(t *testing.T) {
	env := newTestEnv(t, "administrator", 0)
	slow := func() time.Duration { return 100 * time.Millisecond }
	env.memberDelay.Store(&slow)

	if w := sendWebhook(env.engine, pkgTelegram.ChatTypeSupergroup, "/ap mardi Raid"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := env.handler.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	if _, _, _, calls := env.uc.snapshot(); calls != 1 {
		t.Errorf("expected the add to finish before Shutdown returned, got %d calls", calls)
	}
	if msgs := env.captured.all(); len(msgs) != 1 {
		t.Errorf("expected the reply to be sent before Shutdown returned, got %v", msgs)
	}

	if w := sendWebhook(env.engine, pkgTelegram.ChatTypeSupergroup, "/planning"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 after Shutdown, got %d", w.Code)
	}
}
