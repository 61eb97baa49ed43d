package network

// Package network implements the remote photo source: a single HTTP GET
// against the Mars photos service, JSON decoding of the response, and the
// transport/decode error taxonomy callers use to decide what is recoverable.
