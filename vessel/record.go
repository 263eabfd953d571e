package vessel

// HeadingNotAvailable is the AIS sentinel for an unreported true heading.
const HeadingNotAvailable = 511

// Record is the full per-vessel view, keyed by MMSI. The position group
// (lat/lng/heading/speed/nav status) and the static group (type,
// destination, IMO number) are updated independently; name, position and
// last_update are refreshed from every event's envelope. A (0,0)
// coordinate pair means the position is not yet known and keeps the
// record out of spatial queries.
type Record struct {
	MMSI        uint32  `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Heading     uint32  `json:"heading"`
	Speed       float64 `json:"speed"`
	NavStatus   uint32  `json:"nav_status"`
	ShipType    uint32  `json:"ship_type"`
	Destination string  `json:"destination"`
	IMONumber   uint32  `json:"imo_number"`
	LastUpdate  int64   `json:"last_update"`
}

// State is the compact projection served in bounding-box listings.
type State struct {
	MMSI       uint32  `json:"id"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Heading    uint32  `json:"heading"`
	Speed      float64 `json:"speed"`
	ShipType   uint32  `json:"ship_type"`
	LastUpdate int64   `json:"last_update"`
}

// Kind discriminates the two update field groups.
type Kind int

const (
	KindPosition Kind = iota
	KindStatic
)

// PositionGroup carries the fields of a position-kind update.
type PositionGroup struct {
	Heading   uint32
	Speed     float64
	NavStatus uint32
}

// StaticGroup carries the fields of a static-kind update.
type StaticGroup struct {
	ShipType    uint32
	Destination string
	IMONumber   uint32
}

// Update is one typed ingestion event. Name, Lat, Lng and Timestamp come
// from the event envelope and apply regardless of Kind; exactly one of
// Position or Static is set according to Kind.
type Update struct {
	MMSI      uint32
	Kind      Kind
	Name      string
	Lat       float64
	Lng       float64
	Timestamp int64
	Position  *PositionGroup
	Static    *StaticGroup
}

// NewRecord returns a default-initialised record: sentinel position,
// zeroed groups, nothing but identity and name.
func NewRecord(mmsi uint32, name string) *Record {
	return &Record{MMSI: mmsi, Name: name}
}

func (r *Record) applyEnvelope(u Update) {
	r.Name = u.Name
	r.Lat = u.Lat
	r.Lng = u.Lng
	r.LastUpdate = u.Timestamp
}

// ApplyPosition refreshes the envelope fields and the position group.
// Static fields are untouched.
func (r *Record) ApplyPosition(u Update) {
	r.applyEnvelope(u)
	if p := u.Position; p != nil {
		r.Heading = p.Heading
		r.Speed = p.Speed
		r.NavStatus = p.NavStatus
	}
}

// ApplyStatic refreshes the envelope fields and the static group.
// Position-report fields are untouched.
func (r *Record) ApplyStatic(u Update) {
	r.applyEnvelope(u)
	if s := u.Static; s != nil {
		r.ShipType = s.ShipType
		r.Destination = s.Destination
		r.IMONumber = s.IMONumber
	}
}

// HasPosition reports whether the record carries a real coordinate.
// (0,0) is reserved as "position unknown".
func (r *Record) HasPosition() bool {
	return r.Lat != 0 || r.Lng != 0
}

// State projects the record to its listing view.
func (r *Record) State() State {
	return State{
		MMSI:       r.MMSI,
		Name:       r.Name,
		Lat:        r.Lat,
		Lng:        r.Lng,
		Heading:    r.Heading,
		Speed:      r.Speed,
		ShipType:   r.ShipType,
		LastUpdate: r.LastUpdate,
	}
}
