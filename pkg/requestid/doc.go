// Package requestid assigns correlation identifiers to HTTP requests and
// propagates them through context and structured logs.
package requestid
