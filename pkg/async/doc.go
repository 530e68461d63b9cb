// Package async provides simple, generic helpers for running computations
// asynchronously and waiting for their completion.
//
// Async starts the supplied function in its own goroutine and immediately
// returns a *Future. The caller can wait with Await, bound the wait with
// AwaitWithTimeout, poll with IsComplete, or coordinate several futures
// with WaitAll. A context canceled before the computation starts completes
// the future with the context error.
//
// # Usage
//
//	future := async.Async(ctx, job, func(ctx context.Context, j Job) (string, error) {
//		return process(ctx, j)
//	})
//	res, err := future.Await()
package async
