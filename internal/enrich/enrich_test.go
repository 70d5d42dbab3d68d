package enrich

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jujurly/go-feedback-backend/internal/config"
)

func TestParseReply_PlainJSON(t *testing.T) {
	raw := `{"sentiment":"Positif Banget","summary":"bagus","constructiveCriticism":"lanjutkan"}`
	got, err := ParseReply(raw)
	if err != nil {
		t.Fatalf("ParseReply: %v", err)
	}
	want := Result{Sentiment: "Positif Banget", Summary: "bagus", ConstructiveCriticism: "lanjutkan"}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseReply_StripsFences(t *testing.T) {
	cases := []string{
		"```json\n{\"sentiment\":\"Netral Aja\",\"summary\":\"s\",\"constructiveCriticism\":\"c\"}\n```",
		"```\n{\"sentiment\":\"Netral Aja\",\"summary\":\"s\",\"constructiveCriticism\":\"c\"}\n```",
		"  ```json{\"sentiment\":\"Netral Aja\",\"summary\":\"s\",\"constructiveCriticism\":\"c\"}```  ",
	}
	for i, raw := range cases {
		got, err := ParseReply(raw)
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if got.Sentiment != "Netral Aja" || got.Summary != "s" || got.ConstructiveCriticism != "c" {
			t.Fatalf("case %d: got %+v", i, got)
		}
	}
}

func TestParseReply_InvalidJSON_FullFallback(t *testing.T) {
	got, err := ParseReply("I cannot answer that in JSON, sorry.")
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if got != Fallback() {
		t.Fatalf("expected full fallback triple, got %+v", got)
	}
}

func TestParseReply_MissingOrBlankKeys_PerFieldFallback(t *testing.T) {
	raw := `{"sentiment":"  ","summary":"oke banget"}`
	got, err := ParseReply(raw)
	if err != nil {
		t.Fatalf("ParseReply: %v", err)
	}
	if got.Sentiment != FallbackSentiment {
		t.Fatalf("blank sentiment should fall back, got %q", got.Sentiment)
	}
	if got.Summary != "oke banget" {
		t.Fatalf("valid summary must be preserved, got %q", got.Summary)
	}
	if got.ConstructiveCriticism != FallbackCriticism {
		t.Fatalf("missing criticism should fall back, got %q", got.ConstructiveCriticism)
	}
}

func TestUserMessage_DefaultsAbsentFields(t *testing.T) {
	msg := userMessage(Payload{FeedbackText: "kerjanya rapi"})
	if !strings.Contains(msg, "Pengenal Anonim: Tidak disebutkan") {
		t.Fatalf("missing identifier default: %q", msg)
	}
	if !strings.Contains(msg, "Konteks Feedback: Tidak disebutkan") {
		t.Fatalf("missing context default: %q", msg)
	}
	if !strings.Contains(msg, "Isi Feedback: kerjanya rapi") {
		t.Fatalf("missing body: %q", msg)
	}
}

func TestUserMessage_UsesProvidedFields(t *testing.T) {
	msg := userMessage(Payload{
		AnonIdentifier: "rekan tim",
		ContextText:    "meeting kemarin",
		FeedbackText:   "idenya oke",
	})
	for _, want := range []string{"Pengenal Anonim: rekan tim", "Konteks Feedback: meeting kemarin", "Isi Feedback: idenya oke"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}
}

func TestUnsupportedProvider_Deterministic(t *testing.T) {
	for _, provider := range []string{"openai", "anthropic"} {
		s := New(context.Background(), config.LLMConfig{Provider: provider, Timeout: time.Second})
		got, err := s.Summarize(context.Background(), Payload{FeedbackText: "x"})
		if !errors.Is(err, ErrProviderNotSupported) {
			t.Fatalf("%s: expected ErrProviderNotSupported, got %v", provider, err)
		}
		if got != Fallback() {
			t.Fatalf("%s: expected fallback triple, got %+v", provider, got)
		}
	}
}

func TestNew_Gemini_WithoutKey_Degrades(t *testing.T) {
	s := New(context.Background(), config.LLMConfig{Provider: "gemini", Timeout: time.Second})
	got, err := s.Summarize(context.Background(), Payload{FeedbackText: "x"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if got != Fallback() {
		t.Fatalf("expected fallback triple, got %+v", got)
	}
}

func TestDisabled_NilCauseDefaults(t *testing.T) {
	s := Disabled(nil)
	_, err := s.Summarize(context.Background(), Payload{})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
