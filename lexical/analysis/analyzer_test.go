package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzer_Tokenize(t *testing.T) {
	a := New()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "stop words accents and short tokens",
			text: "O réu foi condenado à pena de reclusão",
			want: []string{"reu", "condenado", "pena", "reclusao"},
		},
		{
			name: "punctuation splits words",
			text: "Art. 121, §2º (homicídio qualificado).",
			want: []string{"art", "121", "homicidio", "qualificado"},
		},
		{
			name: "underscore is a word rune",
			text: "codigo_penal",
			want: []string{"codigo_penal"},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
		{
			name: "only stop words",
			text: "de que para com",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Tokenize(tt.text)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnalyzer_Deterministic(t *testing.T) {
	a := New()
	text := "A pena de multa foi aplicada ao réu reincidente"

	assert.Equal(t, a.Tokenize(text), a.Tokenize(text))
}

func TestAnalyzer_CaseAndAccentVariants(t *testing.T) {
	a := New()

	assert.Equal(t, a.Tokenize("Art. 5º"), a.Tokenize("art 5"))
	assert.Equal(t, a.Tokenize("AÇÃO PENAL"), a.Tokenize("acao penal"))
	assert.Equal(t, a.Tokenize("Réu"), a.Tokenize("REU"))
	assert.Equal(t, a.Tokenize("e\u0301poca"), a.Tokenize("ÉPOCA"), "decomposed input folds like precomposed")
}

func TestAnalyzer_Options(t *testing.T) {
	a := New(WithStopWords("pena"), WithExtraStopWords("Réu"), WithMinTokenLength(2))

	assert.Equal(t, []string{"de", "multa"}, a.Tokenize("pena de multa réu"))
	assert.True(t, a.IsStopWord("reu"))
	assert.False(t, a.IsStopWord("de"))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "reclusao", Fold("Reclusão"))
	assert.Equal(t, "acao", Fold("AÇÃO"))
	assert.Equal(t, "art. 5º", Fold("Art. 5º"))
	assert.Equal(t, "plain ascii", Fold("Plain ASCII"))
}

func TestFolder_FoldRuneMatchesFold(t *testing.T) {
	f := NewFolder()
	text := "Prescrição da PRETENSÃO punitiva: ñ, ü, ç"

	var joined string
	for _, r := range text {
		joined += f.FoldRune(r)
	}
	assert.Equal(t, Fold(text), joined)
}

func TestIsWordRune(t *testing.T) {
	assert.True(t, IsWordRune('a'))
	assert.True(t, IsWordRune('Ç'))
	assert.True(t, IsWordRune('7'))
	assert.True(t, IsWordRune('_'))
	assert.False(t, IsWordRune('º'))
	assert.False(t, IsWordRune('ª'))
	assert.False(t, IsWordRune('.'))
	assert.False(t, IsWordRune(' '))
	assert.False(t, IsWordRune('§'))
}
