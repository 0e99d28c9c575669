// Package eval measures recommendation quality offline. It loads a
// labeled dataset of queries with known relevant catalog URLs, runs the
// engine over them, and reports Recall@K for both the final ranking and
// the retrieval-only baseline.
package eval
