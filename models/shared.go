package models

// Coordinate is a WGS84 latitude/longitude pair in degrees.
// A nil *Coordinate on a record means the location is unknown; ranking
// logic keeps such records and computes no distance for them.
type Coordinate struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}
