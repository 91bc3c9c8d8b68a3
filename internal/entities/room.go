package entities

import "time"

// Room is a flood-fill derived enclosed floor region. Rooms are rebuilt on
// every scan; only Occupied survives a rescan, matched by ID.
type Room struct {
	ID         string `json:"id"`
	FloorCells []Cell `json:"floor_cells"`
	Walls      int    `json:"walls"`
	Doors      int    `json:"doors"`
	Beds       int    `json:"beds"`
	// Furniture holds instance indices of furniture and decoration inside the bounds
	Furniture  []int  `json:"furniture,omitempty"`
	CellMin    Cell   `json:"cell_min"`
	CellMax    Cell   `json:"cell_max"`
	Bounds     AABB   `json:"bounds"`
	Center     Vec3   `json:"center"`
	Occupied   bool   `json:"occupied"`
	OccupantID string `json:"occupant_id,omitempty"`
	TotalPrice int    `json:"total_price"`
}

// UsageRecord is one completed stay, kept for the usage log
type UsageRecord struct {
	AgentID string    `json:"agent_id"`
	RoomID  string    `json:"room_id"`
	Price   int       `json:"price"`
	At      time.Time `json:"at"`
}

// PaymentRecord is an outstanding or settled charge for one agent
type PaymentRecord struct {
	AgentID   string    `json:"agent_id"`
	Amount    int64     `json:"amount"`
	RoomID    string    `json:"room_id"`
	Paid      bool      `json:"paid"`
	CreatedAt time.Time `json:"created_at"`
}
