// Package token defines the preprocessing-token model.
// Invariants:
//   - Token carries only Kind and Span; its text is recovered from the
//     source bytes through the span, never stored.
//   - Token spans tile the input: each token starts where the previous one
//     ended, and the stream ends with exactly one zero-width EOF.
//   - Keywords do not exist at this stage; "int" or "return" are Ident.
//     Preprocessing has no keyword notion.
package token
