package analysis

// PortugueseStopWords is the default stop-word list: Portuguese articles,
// prepositions, contractions, pronouns and auxiliary verb forms that carry
// no meaning for statute search. Entries are folded when an Analyzer is
// built, so accents here are optional.
var PortugueseStopWords = []string{
	"a", "o", "as", "os", "um", "uma", "uns", "umas",
	"de", "do", "da", "dos", "das", "em", "no", "na", "nos", "nas",
	"ao", "aos", "à", "às", "por", "pelo", "pela", "pelos", "pelas",
	"para", "pra", "com", "sem", "sob", "sobre", "entre", "até", "após",
	"ante", "contra", "desde", "perante", "num", "numa", "dum", "duma",
	"e", "ou", "mas", "nem", "que", "se", "como", "quando", "porque",
	"pois", "porém", "contudo", "todavia", "embora", "conforme",
	"este", "esta", "estes", "estas", "esse", "essa", "esses", "essas",
	"aquele", "aquela", "aqueles", "aquelas", "isto", "isso", "aquilo",
	"ele", "ela", "eles", "elas", "lhe", "lhes", "seu", "sua", "seus",
	"suas", "nosso", "nossa", "qual", "quais", "cujo", "cuja", "cujos",
	"cujas", "onde", "quem", "mesmo", "mesma", "outro", "outra", "outros",
	"outras", "todo", "toda", "todos", "todas", "cada", "qualquer",
	"ser", "é", "são", "era", "eram", "foi", "foram", "será", "serão",
	"seja", "sejam", "fosse", "fossem", "sido", "sendo", "está", "estão",
	"estar", "ter", "tem", "têm", "tinha", "tido", "haver", "há", "houver",
	"não", "sim", "já", "mais", "menos", "muito", "muita", "também",
	"só", "apenas", "ainda", "assim", "então",
}
