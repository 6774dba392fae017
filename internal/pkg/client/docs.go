// Package client implements the caller side of the progressive ads protocol.
//
// The client performs the following steps:
//  1. Connect to the server and open a bidirectional stream.
//  2. Immediately send the initial Context with an empty understanding.
//  3. Wait 50ms, then send the refined Context with the caller-supplied
//     understanding.
//  4. Half-close the send side; no further requests go out on this stream.
//  5. Draw a randomized deadline (uniform base in [30,120]ms plus jitter in
//     [-5,5]ms, clamped back into [30,120]ms).
//  6. Race a receive loop against the deadline, buffering each AdsList by
//     version; a later arrival for an already-seen version replaces it.
//  7. When the deadline fires the receive loop is cancelled, not drained:
//     fully-buffered batches are kept, a message in flight is dropped.
//  8. Return the buffered batch with the highest version, or no result at
//     all if the buffer is empty.
//
// Only a transport failure while connecting or sending fails the call.
// Receive errors and deadline expiry merely bound the quality of the
// result; an empty buffer yields an absent result, never an error.
package client
