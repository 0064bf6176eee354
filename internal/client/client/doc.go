// Package client talks to the BeerKeeper server over gRPC.
//
// GRPCClient implements Client. Every call carries an x-request-id header
// and failed calls are mapped back to the error kinds used on the server:
//
//   - codes.InvalidArgument -> *common.ValidationError (message only)
//   - codes.Unavailable     -> *common.StorageError when the server reports a
//     storage failure, ErrUnavailable when the server cannot be reached
//   - codes.DeadlineExceeded -> ErrUnavailable
//
// Anything else is returned wrapped as "rpc error: ...".
package client
