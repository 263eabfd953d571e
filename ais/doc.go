// Package ais is the websocket client for the upstream vessel report
// feed. It handles the connection-level concerns only: dialing, the
// mandatory credential/coverage handshake, and decoding one JSON frame
// into a typed envelope. Reconnect policy belongs to the caller.
package ais
