// Package normalize implements the unigram normalization pipeline: lemmatization
// with sum-on-conflict aggregation, numeral removal that spares year-like
// tokens, stopword removal against built-in and custom lists, and count
// thresholds.
//
// Stages run in a fixed order because each one changes what the next sees:
// lemmatizing first lets "societies" and "society" merge before counts are
// thresholded, and stopword lists are matched against lemmas.
package normalize
