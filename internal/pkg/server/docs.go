// Package server implements the server side of the progressive ads protocol.
//
// The server performs the following steps:
//  1. Sets up a gRPC server to handle incoming bidirectional streams from clients.
//  2. On stream open, it allocates a session ID from the process-wide monotonic
//     allocator and starts a dedicated handler worker for the session.
//  3. For every Context received on the stream, in arrival order, it generates
//     an AdsList stamped with the request's ordinal as its version and sends it
//     immediately.
//  4. Exactly on the second Context, it additionally arms a deferred AdsList:
//     after a 50ms delay the second Context is re-scored at version 3 and sent.
//  5. The outbound stream is closed once the client has half-closed, every
//     immediate batch has been sent, and the deferred batch (if armed) has run.
//
// A Context received after the second one still produces an immediate batch at
// its ordinal version, so a session with three or more requests emits two
// version-3 batches that race on the wire. This re-emission is part of the
// protocol; the client's version buffer keeps whichever arrives last.
//
// Receive errors are forwarded to the peer once as the stream's terminal
// status. An armed deferred batch is not cancelled by an inbound error; it
// attempts its send and gives up only when the receiver is gone.
package server
