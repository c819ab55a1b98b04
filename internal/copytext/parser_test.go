package copytext

import (
	"reflect"
	"testing"
)

func TestParseVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "clean numbered list",
			raw:  "1. Primeira variação\n2. Segunda variação\n3. Terceira variação",
			want: []string{"Primeira variação", "Segunda variação", "Terceira variação"},
		},
		{
			name: "alternate separators",
			raw:  "1) Uma\n2: Duas\n3- Três",
			want: []string{"Uma", "Duas", "Três"},
		},
		{
			name: "surrounding chatter ignored",
			raw:  "Claro! Aqui estão as variações:\n\n1. Compre agora\n\n2. Garanta já\n\nEspero que goste!",
			want: []string{"Compre agora", "Garanta já"},
		},
		{
			name: "markdown and quotes stripped",
			raw:  "1. **\"Aproveite hoje\"**\n2. \"Última chance\"",
			want: []string{"Aproveite hoje", "Última chance"},
		},
		{
			name: "no numbered lines",
			raw:  "Não consigo ajudar com isso.",
			want: []string{},
		},
		{
			name: "empty input",
			raw:  "",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseVariants(tt.raw, 5)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseVariants() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseVariants_CapsAtMax(t *testing.T) {
	raw := "1. a1\n2. a2\n3. a3\n4. a4\n5. a5\n6. a6\n7. a7"
	got := ParseVariants(raw, 5)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if got[4] != "a5" {
		t.Errorf("last = %q, want a5", got[4])
	}
}

func TestParseVariants_Ordered(t *testing.T) {
	got := ParseVariants("2. segunda\n1. primeira", 5)
	// Lines are taken in document order, not renumbered.
	want := []string{"segunda", "primeira"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}
