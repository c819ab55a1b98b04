package summary

import (
	"context"
	"errors"
	"io"
	"log"
	"reflect"
	"strings"
	"testing"

	"copygen/internal/core/ports"
)

type fakeCompleter struct {
	response string
	err      error
	calls    int
	lastReq  ports.CompletionRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req ports.CompletionRequest) (string, error) {
	f.calls++
	f.lastReq = req
	return f.response, f.err
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func assertContractHolds(t *testing.T, summaryText string, keyPoints []string) {
	t.Helper()
	if summaryText == "" {
		t.Error("summary must never be empty")
	}
	if len(keyPoints) < 1 || len(keyPoints) > maxKeyPoints {
		t.Errorf("key points = %d, want 1-%d", len(keyPoints), maxKeyPoints)
	}
	for i, p := range keyPoints {
		if strings.TrimSpace(p) == "" {
			t.Errorf("key point %d is blank", i)
		}
	}
}

func TestSummarize_ParsesModelResponse(t *testing.T) {
	llm := &fakeCompleter{response: "RESUMO:\nO vídeo ensina a montar campanhas locais com orçamento baixo.\n\n" +
		"PONTOS-CHAVE:\n- Defina o público primeiro\n- Use criativos curtos\n- Meça tudo\n- Refine semanalmente\n- Reaproveite o que funciona"}
	s := NewSummarizer(llm, discardLogger())

	got := s.Summarize(context.Background(), "transcrição longa do vídeo", "Campanhas locais")
	if !strings.Contains(got.Summary, "campanhas locais") {
		t.Errorf("Summary = %q", got.Summary)
	}
	if len(got.KeyPoints) != 5 || got.KeyPoints[0] != "Defina o público primeiro" {
		t.Errorf("KeyPoints = %#v", got.KeyPoints)
	}
	if llm.calls != 1 {
		t.Errorf("completer called %d times, want 1", llm.calls)
	}
	if !strings.Contains(llm.lastReq.User, "Campanhas locais") {
		t.Error("title missing from prompt")
	}
	assertContractHolds(t, got.Summary, got.KeyPoints)
}

func TestSummarize_NilCompleterFallsBack(t *testing.T) {
	s := NewSummarizer(nil, discardLogger())

	got := s.Summarize(context.Background(), "qualquer fonte", "Meu vídeo de teste")
	if !strings.Contains(got.Summary, "Meu vídeo de teste") {
		t.Errorf("fallback summary should mention the title: %q", got.Summary)
	}
	assertContractHolds(t, got.Summary, got.KeyPoints)
}

func TestSummarize_EmptySourceFallsBack(t *testing.T) {
	llm := &fakeCompleter{response: "RESUMO:\nnunca usado"}
	s := NewSummarizer(llm, discardLogger())

	got := s.Summarize(context.Background(), "", "Título")
	if llm.calls != 0 {
		t.Errorf("completer called %d times with an empty source", llm.calls)
	}
	assertContractHolds(t, got.Summary, got.KeyPoints)
}

func TestSummarize_CompleterErrorFallsBack(t *testing.T) {
	llm := &fakeCompleter{err: errors.New("quota exceeded")}
	s := NewSummarizer(llm, discardLogger())

	got := s.Summarize(context.Background(), "fonte", "Título")
	if !reflect.DeepEqual(got, Fallback("Título")) {
		t.Errorf("got %#v, want deterministic fallback", got)
	}
}

func TestSummarize_MissingResumoSectionFallsBack(t *testing.T) {
	llm := &fakeCompleter{response: "PONTOS-CHAVE:\n- solto, sem resumo"}
	s := NewSummarizer(llm, discardLogger())

	got := s.Summarize(context.Background(), "fonte", "Título")
	if !reflect.DeepEqual(got, Fallback("Título")) {
		t.Errorf("got %#v, want deterministic fallback", got)
	}
}

func TestFallback_IsDeterministic(t *testing.T) {
	a := Fallback("Vídeo X")
	b := Fallback("Vídeo X")
	if !reflect.DeepEqual(a, b) {
		t.Error("fallback must be deterministic for the same title")
	}
	assertContractHolds(t, a.Summary, a.KeyPoints)
}
