package summary

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantSum    string
		wantPoints []string
	}{
		{
			name:       "well formed",
			raw:        "RESUMO:\nUm parágrafo executivo.\n\nPONTOS-CHAVE:\n- Primeiro\n- Segundo\n- Terceiro",
			wantSum:    "Um parágrafo executivo.",
			wantPoints: []string{"Primeiro", "Segundo", "Terceiro"},
		},
		{
			name:       "lowercase markers",
			raw:        "resumo:\nTexto.\npontos-chave:\n- Item",
			wantSum:    "Texto.",
			wantPoints: []string{"Item"},
		},
		{
			name:       "numbered and asterisk bullets",
			raw:        "RESUMO:\nTexto.\nPONTOS-CHAVE:\n1. Um\n2) Dois\n* Três\n• Quatro",
			wantSum:    "Texto.",
			wantPoints: []string{"Um", "Dois", "Três", "Quatro"},
		},
		{
			name:       "no markers treats everything as summary",
			raw:        "O vídeo fala sobre vendas online.",
			wantSum:    "O vídeo fala sobre vendas online.",
			wantPoints: []string{placeholderKeyPoint},
		},
		{
			name:       "points without summary marker",
			raw:        "Introdução solta.\nPONTOS-CHAVE:\n- Único ponto",
			wantSum:    "Introdução solta.",
			wantPoints: []string{"Único ponto"},
		},
		{
			name:       "empty points section gets placeholder",
			raw:        "RESUMO:\nTexto.\nPONTOS-CHAVE:\n",
			wantSum:    "Texto.",
			wantPoints: []string{placeholderKeyPoint},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseResponse(tt.raw)
			if got.Summary != tt.wantSum {
				t.Errorf("Summary = %q, want %q", got.Summary, tt.wantSum)
			}
			if !reflect.DeepEqual(got.KeyPoints, tt.wantPoints) {
				t.Errorf("KeyPoints = %#v, want %#v", got.KeyPoints, tt.wantPoints)
			}
		})
	}
}

func TestParseResponse_CapsKeyPoints(t *testing.T) {
	var b strings.Builder
	b.WriteString("RESUMO:\nTexto.\nPONTOS-CHAVE:\n")
	for i := 0; i < 9; i++ {
		b.WriteString("- ponto\n")
	}
	got := ParseResponse(b.String())
	if len(got.KeyPoints) != maxKeyPoints {
		t.Errorf("len = %d, want %d", len(got.KeyPoints), maxKeyPoints)
	}
}
