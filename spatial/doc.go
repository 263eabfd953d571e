// Package spatial provides the 2-D partition tree used for viewport
// queries over vessel positions.
//
// The index is a snapshot: Build constructs a balanced tree from the
// point set it is handed and the tree never observes later mutations.
// Any change to the underlying record set requires a fresh Build.
// Construction is O(n log n); a range query on a balanced tree is near
// O(sqrt(n) + k) for k results.
package spatial
