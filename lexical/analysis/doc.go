// Package analysis turns text into index tokens.
//
// The same Analyzer must be used for indexing and querying, otherwise
// relevance scores are meaningless. Tokenization:
//
//  1. lowercase
//  2. canonical decomposition (NFD) and removal of combining marks
//  3. every rune that is not a letter, digit or underscore separates words
//  4. tokens shorter than the minimum length (3 runes) are dropped
//  5. stop words are dropped
//
// Fold exposes steps 1 and 2 so that other packages, such as highlight,
// compare text exactly the way the index does.
package analysis
