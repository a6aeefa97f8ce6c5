// Package summarizer generates meeting summaries from recording media using
// a Gemini model on Vertex AI.
//
// The full recording payload is sent inline alongside a fixed instruction
// prompt; the model is configured once at construction with a bounded output
// length and a fixed sampling temperature. Callers substitute FallbackMessage
// when summarization fails, which is the pipeline's only fallback behavior.
package summarizer
