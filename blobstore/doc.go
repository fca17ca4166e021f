// Package blobstore provides storage backends for interaction snapshots.
//
// A BlobStore holds named, immutable blobs. Writers replace a blob as a
// whole with Put; readers Open a handle and issue ranged ReadAt calls.
// The CURRENT blob names the latest published snapshot.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests and ephemeral runs
//   - LocalStore: local file system with atomic rename on Put
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - s3.DDBCommitStore: S3 plus a DynamoDB table for atomic CURRENT updates
//   - minio.Store: MinIO and other S3-compatible services
//
// All implementations are safe for concurrent use.
package blobstore
