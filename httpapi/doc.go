// Package httpapi serves recommendations over HTTP. It exposes two
// endpoints: GET /health reports readiness, and POST /recommend maps a
// query to ranked assessments. The serving layer holds no retrieval
// logic; it validates transport concerns and delegates to the engine.
package httpapi
