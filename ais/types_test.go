package ais

import (
	"errors"
	"testing"
)

const positionFrame = `{
  "MessageType": "PositionReport",
  "MetaData": {"MMSI": 244660920, "ShipName": "NORDIC  ", "latitude": 52.3, "longitude": 4.9, "time_utc": "2024-05-01 12:00:00"},
  "Message": {"PositionReport": {"Cog": 211.9, "NavigationalStatus": 0, "Sog": 11.2, "TrueHeading": 210}}
}`

const staticFrame = `{
  "MessageType": "ShipStaticData",
  "MetaData": {"MMSI": 244660920, "ShipName": "NORDIC  ", "latitude": 52.3, "longitude": 4.9, "time_utc": "2024-05-01 12:00:02"},
  "Message": {"ShipStaticData": {"Type": 70, "Destination": "HAMBURG", "ImoNumber": 9234567}}
}`

func TestParseEnvelopePositionReport(t *testing.T) {
	env, err := ParseEnvelope([]byte(positionFrame))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.MessageType != MessageTypePositionReport {
		t.Errorf("expected PositionReport, got %q", env.MessageType)
	}
	if env.MetaData.MMSI != 244660920 || env.MetaData.Latitude != 52.3 {
		t.Errorf("unexpected metadata: %+v", env.MetaData)
	}
	pr := env.Message.PositionReport
	if pr == nil {
		t.Fatal("missing PositionReport payload")
	}
	if pr.TrueHeading != 210 || pr.Sog != 11.2 || pr.NavigationalStatus != 0 {
		t.Errorf("unexpected payload: %+v", pr)
	}
	if env.Message.ShipStaticData != nil {
		t.Error("static payload should be absent on a position frame")
	}
}

func TestParseEnvelopeShipStaticData(t *testing.T) {
	env, err := ParseEnvelope([]byte(staticFrame))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sd := env.Message.ShipStaticData
	if sd == nil {
		t.Fatal("missing ShipStaticData payload")
	}
	if sd.Type != 70 || sd.Destination != "HAMBURG" || sd.ImoNumber != 9234567 {
		t.Errorf("unexpected payload: %+v", sd)
	}
}

func TestParseEnvelopeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{{{`},
		{name: "missing message type", data: `{"MetaData": {"MMSI": 1}}`},
		{name: "missing mmsi", data: `{"MessageType": "PositionReport", "MetaData": {"ShipName": "X"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseEnvelope([]byte(tt.data)); !errors.Is(err, ErrMalformedFrame) {
				t.Errorf("expected ErrMalformedFrame, got %v", err)
			}
		})
	}
}
