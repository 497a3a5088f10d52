package schema

// Location is a coordinate pair in the order humans write it.
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// GeoJSON is the mongodb-native mirror of a Location. Coordinates are
// [longitude, latitude] per the GeoJSON spec.
type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoJSONPoint builds a Point for the 2dsphere index.
func NewGeoJSONPoint(loc Location) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{loc.Longitude, loc.Latitude},
	}
}
