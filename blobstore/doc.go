// Package blobstore abstracts the storage of immutable snapshot blobs.
//
// Snapshots are written once and read whole, so the interface is deliberately
// small: atomic Put, streaming Open, Delete, and prefix List. Local disk,
// in-memory, and S3-compatible object storage implementations are provided;
// anything else only has to satisfy Store.
package blobstore
