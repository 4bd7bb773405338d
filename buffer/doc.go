// Package buffer provides Buffer, a generic owned block of elements that
// tracks its logical length separately from its allocated capacity, and
// Pool, a sync.Pool-backed cache of released buffers.
//
// Buffer knows nothing about growth policy: it grows exactly as far as it
// is asked to. Containers built on top of it (see package vector) decide
// when and by how much to grow.
//
// A Buffer has a single owner and is not safe for concurrent use. Distinct
// buffers are independent.
package buffer
