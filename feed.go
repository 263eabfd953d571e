package seamon

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/qmertyy/seamon/ais"
	"github.com/qmertyy/seamon/vessel"
)

// RunFeed supervises the stream connection for the lifetime of ctx:
// connect, pump events into the store, and on any transport or handshake
// failure wait the configured delay and reconnect. Feed failures never
// escape this loop; a disconnected feed just means the store ages until
// the next successful connect.
func RunFeed(ctx context.Context, store *vessel.Store) {
	if Config.Feed.APIKey == "" {
		log.Printf("feed disabled: %s is not set; serving last known state only", Config.Feed.APIKeyEnv)
		return
	}
	delay := time.Duration(Config.Feed.ReconnectDelayMS) * time.Millisecond
	for {
		if err := streamOnce(ctx, store); err != nil {
			log.Printf("feed connection ended: %v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

func streamOnce(ctx context.Context, store *vessel.Store) error {
	client, err := ais.Dial(ctx, Config.Feed.URL, Config.Feed.APIKey, ais.GlobalCoverage,
		[]string{ais.MessageTypePositionReport, ais.MessageTypeShipStaticData})
	if err != nil {
		return err
	}
	defer client.Close()
	log.Printf("connected to vessel report feed at %s", Config.Feed.URL)

	for {
		env, err := client.Next()
		if err != nil {
			if errors.Is(err, ais.ErrMalformedFrame) {
				log.Printf("dropping frame: %v", err)
				continue
			}
			return err
		}
		if u, ok := UpdateFromEnvelope(env, time.Now().Unix()); ok {
			store.Upsert(u)
		}
	}
}

// UpdateFromEnvelope converts one feed envelope into a typed store
// update. Envelopes of other message types are reported as not
// convertible; the subscription filter should keep them out anyway.
func UpdateFromEnvelope(env *ais.Envelope, now int64) (vessel.Update, bool) {
	u := vessel.Update{
		MMSI:      env.MetaData.MMSI,
		Name:      strings.TrimSpace(env.MetaData.ShipName),
		Lat:       env.MetaData.Latitude,
		Lng:       env.MetaData.Longitude,
		Timestamp: now,
	}
	switch env.MessageType {
	case ais.MessageTypePositionReport:
		u.Kind = vessel.KindPosition
		if pr := env.Message.PositionReport; pr != nil {
			u.Position = &vessel.PositionGroup{
				Heading:   pr.TrueHeading,
				Speed:     pr.Sog,
				NavStatus: pr.NavigationalStatus,
			}
		}
	case ais.MessageTypeShipStaticData:
		u.Kind = vessel.KindStatic
		if sd := env.Message.ShipStaticData; sd != nil {
			u.Static = &vessel.StaticGroup{
				ShipType:    sd.Type,
				Destination: sd.Destination,
				IMONumber:   sd.ImoNumber,
			}
		}
	default:
		return vessel.Update{}, false
	}
	return u, true
}
