// Package enrich adapts external text-generation services for feedback
// enrichment. Given one anonymous submission it derives a sentiment label,
// a supportive summary, and one piece of constructive criticism, all in
// colloquial Bahasa Indonesia.
//
// The package is deliberately defensive about the provider's output: replies
// may be wrapped in markdown code fences, may be malformed JSON, or may omit
// keys. Any such defect is repaired with fixed fallback strings so callers
// always receive a complete Result. The feedback submission flow must never
// fail because the provider is down, misconfigured, or rambling.
package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jujurly/go-feedback-backend/internal/sysutil"
)

// Fallback strings persisted when the provider cannot be reached or its
// reply cannot be used. They are part of the stored data contract, not
// display-only placeholders.
const (
	FallbackSentiment = "Netral Aja"
	FallbackSummary   = "Tidak dapat memproses ringkasan saat ini"
	FallbackCriticism = "Tidak ada saran spesifik saat ini"

	// notMentioned substitutes absent optional payload fields in the prompt.
	notMentioned = "Tidak disebutkan"
	emptyBody    = "Input feedback kosong."
)

// Sentinel errors surfaced by Summarizer implementations. Callers treat all
// of them the same way (log + fall back); they exist so logs can tell a
// configuration problem from a transport one.
var (
	// ErrProviderNotSupported is returned by providers that are selectable
	// in configuration but have no functional implementation.
	ErrProviderNotSupported = errors.New("llm provider not supported")

	// ErrNotConfigured is returned when the selected provider has no API
	// key or its client failed to initialize at startup.
	ErrNotConfigured = errors.New("llm provider not configured")
)

// Payload carries one feedback submission into the prompt. Only
// FeedbackText is mandatory; blank optional fields are rendered as
// "Tidak disebutkan".
type Payload struct {
	AnonIdentifier string
	ContextText    string
	FeedbackText   string
}

// Result is the enrichment triple. JSON tags match the keys the provider is
// instructed to emit.
type Result struct {
	Sentiment             string `json:"sentiment"`
	Summary               string `json:"summary"`
	ConstructiveCriticism string `json:"constructiveCriticism"`
}

// Summarizer is the contract consumed by the feedback service. Implementations
// must send exactly one request per call and honor ctx cancellation.
//
// Summarize always returns a fully populated Result: on any failure the
// fallback strings are substituted and the error describes what went wrong.
type Summarizer interface {
	Summarize(ctx context.Context, p Payload) (Result, error)
}

// Fallback returns the fixed triple stored when enrichment fails.
func Fallback() Result {
	return Result{
		Sentiment:             FallbackSentiment,
		Summary:               FallbackSummary,
		ConstructiveCriticism: FallbackCriticism,
	}
}

// systemPrompt is the fixed instruction sent with every request. The model
// is asked for a JSON object with exactly the three Result keys.
const systemPrompt = `You are an HR manager reading candid feedback gathered anonymously for an employee.
The feedback has three parts:
1. How the feedback giver knows the person or the context of their interaction.
2. The candid feedback itself (it can be direct, emotional, or informal).
3. Additional context for that feedback.

Summarize the feedback constructively. Keep the facts (including mistakes
mentioned) accurate, but deliver them in a way that does not cause undue
distress. Respond in relaxed, colloquial Bahasa Indonesia, as if talking to
a colleague.

Your output MUST be a valid JSON object with exactly these three keys:
- "sentiment": (string) the sentiment of the feedback (e.g., "Positif Banget", "Agak Negatif", "Netral Aja").
- "summary": (string) a summary of the feedback, factual but supportive, in colloquial Bahasa Indonesia.
- "constructiveCriticism": (string) constructive advice based on the feedback, also in colloquial Bahasa Indonesia.

Example input:
Pengenal Anonim: Teman satu tim proyek X
Konteks Feedback: Saat presentasi mingguan
Isi Feedback: Presentasinya bagus banget, tapi slide-nya kebanyakan tulisan, bikin ngantuk.

Example output:
{
  "sentiment": "Netral Aja",
  "summary": "Feedbacknya bilang presentasi kamu udah oke, tapi slide-nya terlalu banyak teks jadi bikin audience agak bosen.",
  "constructiveCriticism": "Coba deh slide presentasinya dibikin lebih visual, mungkin bisa pake gambar atau poin-poin aja biar lebih engaging."
}`

// userMessage renders the payload into the fixed prompt shape, defaulting
// absent optional fields.
func userMessage(p Payload) string {
	anon := sysutil.FirstNonEmpty(strings.TrimSpace(p.AnonIdentifier), notMentioned)
	contextText := sysutil.FirstNonEmpty(strings.TrimSpace(p.ContextText), notMentioned)
	body := sysutil.FirstNonEmpty(p.FeedbackText, emptyBody)
	return fmt.Sprintf("Pengenal Anonim: %s\nKonteks Feedback: %s\nIsi Feedback: %s", anon, contextText, body)
}

// ParseReply turns a raw provider reply into a Result.
//
// Policy:
//   - optional ``` / ```json fences around the reply are stripped;
//   - the remainder must parse as strict JSON, otherwise the full fallback
//     triple is returned together with the parse error;
//   - fields that are missing or blank after trimming are replaced with
//     their fallback string individually — a partial provider object is
//     never propagated silently.
func ParseReply(raw string) (Result, error) {
	cleaned := stripFences(raw)

	var r Result
	if err := json.Unmarshal([]byte(cleaned), &r); err != nil {
		return Fallback(), fmt.Errorf("parse llm reply: %w", err)
	}
	if strings.TrimSpace(r.Sentiment) == "" {
		r.Sentiment = FallbackSentiment
	}
	if strings.TrimSpace(r.Summary) == "" {
		r.Summary = FallbackSummary
	}
	if strings.TrimSpace(r.ConstructiveCriticism) == "" {
		r.ConstructiveCriticism = FallbackCriticism
	}
	return r, nil
}

// stripFences removes a single surrounding markdown code fence, with or
// without a language tag.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// unsupported is the stub for providers that are selectable but not
// implemented. It deterministically signals ErrProviderNotSupported.
type unsupported struct{ provider string }

func (u unsupported) Summarize(context.Context, Payload) (Result, error) {
	return Fallback(), fmt.Errorf("%w: %s", ErrProviderNotSupported, u.provider)
}

// disabled is used when the selected provider could not be initialized
// (missing credential, client construction failure). The original cause is
// repeated on every call so request logs stay actionable.
type disabled struct{ cause error }

func (d disabled) Summarize(context.Context, Payload) (Result, error) {
	return Fallback(), d.cause
}

// Disabled returns a Summarizer that always fails with cause, falling back
// deterministically. Used at startup when no functional provider exists.
func Disabled(cause error) Summarizer {
	if cause == nil {
		cause = ErrNotConfigured
	}
	return disabled{cause: cause}
}
