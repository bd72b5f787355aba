package notifier

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jordanwhite/dailydo/internal/models"
)

func sampleTask() models.Task {
	return models.Task{
		ID:           "task-1",
		Title:        "Morning run",
		Category:     models.CategoryExercise,
		ReminderTime: "07:30",
		Repeat:       models.RepeatDaily,
		Created:      time.Date(2026, 8, 1, 7, 0, 0, 0, time.UTC),
		Active:       true,
	}
}

func TestMessage(t *testing.T) {
	task := sampleTask()
	got := Message(task)
	want := "Reminder: Morning run (exercise, 07:30)"
	if got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}

	task.Notes = "around the park"
	got = Message(task)
	if !strings.Contains(got, "around the park") {
		t.Errorf("Message() with notes = %q, want notes included", got)
	}
}

type fakeSink struct {
	calls int
	err   error
}

func (f *fakeSink) Notify(models.Task) error {
	f.calls++
	return f.err
}

func TestMulti_AllSinksAttempted(t *testing.T) {
	failing := &fakeSink{err: errors.New("boom")}
	ok := &fakeSink{}

	m := NewMulti(failing, ok)
	err := m.Notify(sampleTask())

	if err == nil {
		t.Error("Multi.Notify() = nil, want aggregated error")
	}
	if failing.calls != 1 || ok.calls != 1 {
		t.Errorf("sink calls = (%d, %d), want (1, 1)", failing.calls, ok.calls)
	}
}

func TestMulti_NoSinksIsNoop(t *testing.T) {
	m := NewMulti()
	if err := m.Notify(sampleTask()); err != nil {
		t.Errorf("Multi.Notify() with no sinks = %v, want nil", err)
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone   string
		wantErr bool
	}{
		{"+15551234567", false},
		{"+4915112345678", false},
		{"15551234567", true},
		{"+0123", true},
		{"", true},
		{"+1 555 1234", true},
	}
	for _, tt := range tests {
		err := ValidatePhone(tt.phone)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePhone(%q) error = %v, wantErr %v", tt.phone, err, tt.wantErr)
		}
	}
}

func TestWhatsApp_Send(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	wa, err := NewWhatsApp("+15551234567", "secret-key")
	if err != nil {
		t.Fatalf("NewWhatsApp() error = %v", err)
	}
	wa.endpoint = server.URL

	if err := wa.Notify(sampleTask()); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}

	if got := gotQuery["phone"]; len(got) != 1 || got[0] != "+15551234567" {
		t.Errorf("phone param = %v, want +15551234567", got)
	}
	if got := gotQuery["apikey"]; len(got) != 1 || got[0] != "secret-key" {
		t.Errorf("apikey param = %v, want secret-key", got)
	}
	if got := gotQuery["text"]; len(got) != 1 || !strings.Contains(got[0], "Morning run") {
		t.Errorf("text param = %v, want task title included", got)
	}
}

func TestWhatsApp_SendNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad api key", http.StatusForbidden)
	}))
	defer server.Close()

	wa, err := NewWhatsApp("+15551234567", "wrong-key")
	if err != nil {
		t.Fatalf("NewWhatsApp() error = %v", err)
	}
	wa.endpoint = server.URL

	if err := wa.Notify(sampleTask()); err == nil {
		t.Error("Notify() = nil, want error on non-OK status")
	}
}

func TestNewWhatsApp_Validation(t *testing.T) {
	if _, err := NewWhatsApp("not-a-phone", "key"); err == nil {
		t.Error("NewWhatsApp() with bad phone = nil error")
	}
	if _, err := NewWhatsApp("+15551234567", ""); err == nil {
		t.Error("NewWhatsApp() with empty key = nil error")
	}
}

func TestFindAndValidateTrayProcess_Lockfile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"missing lockfile", ""},
		{"malformed lockfile", "just-a-port"},
		{"empty port", "|123|secret"},
		{"non-numeric port", "abc|123|secret"},
		{"port out of range", "70000|123|secret"},
		{"non-numeric pid", "8080|abc|secret"},
		{"empty secret", "8080|123|"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".lock")
			if tt.content != "" {
				if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
					t.Fatal(err)
				}
			}
			if _, _, err := findAndValidateTrayProcess(path); err == nil {
				t.Error("findAndValidateTrayProcess() = nil, want error")
			}
		})
	}
}
