package ais

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
)

// HandshakeError is an explicit rejection of the authentication exchange.
// It is fatal for the connection attempt, not for the process.
type HandshakeError struct {
	Reason string
}

func (e *HandshakeError) Error() string {
	return "feed handshake rejected: " + e.Reason
}

// Client is one authenticated feed connection.
type Client struct {
	conn *websocket.Conn
	// The handshake reply may already be the first event frame; it is
	// held here so Next does not lose it.
	pending []byte
}

// Dial connects to the feed and performs the required first exchange:
// send the credential and coverage filter, then read the first reply.
// An {"error": ...} reply is a HandshakeError; any other frame means the
// subscription is live and the frame is delivered by the first Next.
func Dial(ctx context.Context, url, apiKey string, coverage [][][2]float64, messageTypes []string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	sub := Subscription{
		APIKey:             apiKey,
		BoundingBoxes:      coverage,
		FilterMessageTypes: messageTypes,
	}
	if err := conn.WriteJSON(sub); err != nil {
		conn.Close()
		return nil, err
	}
	_, first, err := conn.ReadMessage()
	if err != nil {
		conn.Close()
		return nil, err
	}
	var reply authReply
	if err := json.Unmarshal(first, &reply); err == nil && reply.Error != "" {
		conn.Close()
		return nil, &HandshakeError{Reason: reply.Error}
	}
	return &Client{conn: conn, pending: first}, nil
}

// Next returns the next decoded envelope. A frame that fails to decode
// returns an error wrapping ErrMalformedFrame and leaves the connection
// open; any other error is connection-level and the client is done.
func (c *Client) Next() (*Envelope, error) {
	data := c.pending
	c.pending = nil
	if data == nil {
		_, d, err := c.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		data = d
	}
	return ParseEnvelope(data)
}

// Close tears the connection down.
func (c *Client) Close() error {
	return c.conn.Close()
}
