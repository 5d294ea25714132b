package verdicts_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/penguin/internal/mediation"
	"github.com/JaimeStill/penguin/internal/verdict"
	"github.com/JaimeStill/penguin/internal/verdicts"
	"github.com/JaimeStill/penguin/pkg/completion"
	"github.com/JaimeStill/penguin/pkg/openapi"
	"github.com/JaimeStill/penguin/pkg/routes"
)

const sample = `## 📝 Case summary
Partner A and Partner B argued about dinner.

## ⚖️ Responsibility split
- Overall split: Partner A 50% / Partner B 50%
- Both were tired.`

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMux(t *testing.T, client completion.Client) (*http.ServeMux, *int) {
	t.Helper()
	calls := 0
	counted := completion.Func(func(ctx context.Context, system, user string) (string, error) {
		calls++
		return client.Complete(ctx, system, user)
	})

	h := verdicts.NewHandler(mediation.New(counted, discard()), discard(), 64*1024)
	mux := http.NewServeMux()
	routes.Register(mux, h.Routes())
	return mux, &calls
}

func reply(text string, err error) completion.Client {
	return completion.Func(func(ctx context.Context, system, user string) (string, error) {
		return text, err
	})
}

func do(mux http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(rec, req)
	return rec
}

const validReport = `{
  "stage": "Serious relationship",
  "partner_a": {"name": "Kiki", "event": "Cooked dinner", "grievance": "Nobody came"},
  "partner_b": {"event": "Stuck at work", "grievance": "Felt guilty"}
}`

func TestCreate(t *testing.T) {
	mux, calls := newMux(t, reply(sample, nil))

	rec := do(mux, "POST", "/verdicts", validReport)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201: %s", rec.Code, rec.Body)
	}
	if *calls != 1 {
		t.Errorf("completion calls: got %d, want 1", *calls)
	}

	var v verdicts.Verdict
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if v.Document.Raw != sample {
		t.Error("raw text not returned")
	}
	if v.Display.Banner != "Overall split: Kiki 50% / Partner B 50%" {
		t.Errorf("banner: got %q", v.Display.Banner)
	}
	if v.Display.LabelA != "Kiki" || v.Display.LabelB != "Partner B" {
		t.Errorf("labels: got %q, %q", v.Display.LabelA, v.Display.LabelB)
	}
	if v.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("id should be set")
	}
}

func TestCreateErrors(t *testing.T) {
	tests := []struct {
		name       string
		client     completion.Client
		body       string
		wantStatus int
		wantCalls  int
	}{
		{
			name:       "blank grievance",
			client:     reply(sample, nil),
			body:       `{"partner_a": {"event": "x", "grievance": " "}, "partner_b": {"event": "y", "grievance": "z"}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown tone",
			client:     reply(sample, nil),
			body:       `{"tone": "Savage", "partner_a": {"event": "x", "grievance": "y"}, "partner_b": {"event": "y", "grievance": "z"}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			client:     reply(sample, nil),
			body:       `{"partner_a":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "service failure",
			client:     reply("", errors.New("quota exceeded")),
			body:       validReport,
			wantStatus: http.StatusBadGateway,
			wantCalls:  1,
		},
		{
			name:       "body too large",
			client:     reply(sample, nil),
			body:       `{"partner_a": {"event": "` + strings.Repeat("x", 70*1024) + `"}}`,
			wantStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, calls := newMux(t, tt.client)

			rec := do(mux, "POST", "/verdicts", tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			if *calls != tt.wantCalls {
				t.Errorf("completion calls: got %d, want %d", *calls, tt.wantCalls)
			}

			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body["error"] == "" {
				t.Error("error message missing")
			}
		})
	}
}

func TestParse(t *testing.T) {
	mux, calls := newMux(t, reply("unused", nil))

	payload, _ := json.Marshal(verdicts.ParseRequest{Text: sample, NameA: " Sam "})
	rec := do(mux, "POST", "/verdicts/parse", string(payload))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if *calls != 0 {
		t.Errorf("parse should not call completion, got %d calls", *calls)
	}

	var v verdicts.Verdict
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := []verdict.Node{{Kind: verdict.KindParagraph, Text: "Sam and Partner B argued about dinner."}}
	if len(v.Display.Summary) != 1 || v.Display.Summary[0].Text != want[0].Text {
		t.Errorf("summary: got %+v, want %+v", v.Display.Summary, want)
	}
	if !v.Display.Feelings.A.Empty {
		t.Error("feelings A should be a placeholder")
	}
}

func TestOptions(t *testing.T) {
	mux, _ := newMux(t, reply("", nil))

	rec := do(mux, "GET", "/verdicts/options", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var opts mediation.Options
	if err := json.NewDecoder(rec.Body).Decode(&opts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if opts.DefaultStage != mediation.StageDating {
		t.Errorf("default stage: got %q", opts.DefaultStage)
	}
	if len(opts.Tones) != 3 {
		t.Errorf("tones: got %d, want 3", len(opts.Tones))
	}
}

func TestRoutesDescribed(t *testing.T) {
	h := verdicts.NewHandler(mediation.New(reply("", nil), discard()), discard(), 1024)

	spec := openapi.NewSpec("Test", "1.0.0")
	routes.Describe(spec, h.Routes())

	for _, path := range []string{"/verdicts", "/verdicts/parse", "/verdicts/options"} {
		if _, ok := spec.Paths[path]; !ok {
			t.Errorf("path %s not described", path)
		}
	}
	for _, name := range []string{"Report", "Partner", "Verdict", "Options"} {
		if _, ok := spec.Components.Schemas[name]; !ok {
			t.Errorf("schema %s missing", name)
		}
	}
}
