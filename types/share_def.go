package types

import "math/big"

// Share is one entry of a record: the radix-encoded y value of the point
// whose x coordinate is Key.
type Share struct {
	Key    int
	Base   int
	Digits string
}

// Point is a share after base conversion.
type Point struct {
	X int
	Y *big.Int
}

// ShareSet is a full record: the declared share count, the threshold and the
// shares indexed by key.
type ShareSet struct {
	N      int
	K      int
	Shares map[int]Share
}

// Secret is the reconstructed constant term f(0).
type Secret struct {
	Value *big.Int
}

// Request asks for the reconstruction of one record. Source names where the
// record came from (usually a file path) and is only used for reporting.
type Request struct {
	ID     string
	Source string
	Set    ShareSet

	// Err is set when the record could not even be decoded. Such a request
	// is answered with the same error without running the pipeline.
	Err error
}

// Response is the outcome of one Request. Exactly one of Secret and Err is
// meaningful.
type Response struct {
	ID     string
	Source string
	Secret Secret
	Err    error

	// Digest identifies the record content, Cached tells whether the result
	// was served from an earlier identical record.
	Digest string
	Cached bool
}
