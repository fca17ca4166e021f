// Package s3 provides S3 implementations of blobstore.BlobStore.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("runs/2024-06"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
// Wrap the store in a DDBCommitStore when several predictors publish
// snapshots into the same prefix:
//
//	commits := s3.NewDDBCommitStore(store, dynamodb.NewFromConfig(cfg),
//	    "hybridize-commits", "s3://my-bucket/runs/2024-06")
package s3
