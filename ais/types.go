package ais

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Message types carried by the feed. The subscription filter limits the
// stream to these two.
const (
	MessageTypePositionReport = "PositionReport"
	MessageTypeShipStaticData = "ShipStaticData"
)

// GlobalCoverage subscribes to the whole planet.
var GlobalCoverage = [][][2]float64{{{-180, -90}, {180, 90}}}

// Envelope is one feed frame. MetaData is always present; exactly one of
// the Message payloads is set, matching MessageType.
type Envelope struct {
	MessageType string   `json:"MessageType"`
	MetaData    MetaData `json:"MetaData"`
	Message     Message  `json:"Message"`
}

// MetaData is the per-frame envelope shared by all message types.
type MetaData struct {
	MMSI      uint32  `json:"MMSI"`
	ShipName  string  `json:"ShipName"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	TimeUTC   string  `json:"time_utc"`
}

// Message holds the kind-specific payload.
type Message struct {
	PositionReport *PositionReport `json:"PositionReport,omitempty"`
	ShipStaticData *ShipStaticData `json:"ShipStaticData,omitempty"`
}

// PositionReport carries course, heading, speed and navigational status.
type PositionReport struct {
	Cog                float64 `json:"Cog"`
	NavigationalStatus uint32  `json:"NavigationalStatus"`
	Sog                float64 `json:"Sog"`
	TrueHeading        uint32  `json:"TrueHeading"`
}

// ShipStaticData carries vessel type, destination and registry number.
type ShipStaticData struct {
	Type        uint32 `json:"Type"`
	Destination string `json:"Destination"`
	ImoNumber   uint32 `json:"ImoNumber"`
}

// Subscription is the first frame sent on every connection. The server
// answers with either an error object or the first event frame.
type Subscription struct {
	APIKey             string         `json:"APIKey"`
	BoundingBoxes      [][][2]float64 `json:"BoundingBoxes"`
	FilterMessageTypes []string       `json:"FilterMessageTypes"`
}

// authReply is the shape of a handshake rejection.
type authReply struct {
	Error string `json:"error"`
}

// ErrMalformedFrame marks a frame that could not be decoded into an
// envelope. The connection remains usable; callers drop the frame and
// read on.
var ErrMalformedFrame = errors.New("malformed feed frame")

// ParseEnvelope decodes one frame. A frame that is not valid JSON, names
// no message type, or carries no vessel id is malformed.
func ParseEnvelope(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	if env.MessageType == "" {
		return nil, fmt.Errorf("%w: missing MessageType", ErrMalformedFrame)
	}
	if env.MetaData.MMSI == 0 {
		return nil, fmt.Errorf("%w: missing MMSI", ErrMalformedFrame)
	}
	return &env, nil
}
