// Package xmltext provides a pull-based XML tokenizer with lazy attribute
// decoding and escape/unescape primitives.
package xmltext
