package entity

// Report is an illegal dumping report submitted from the geotag camera.
// Coordinates are nil when the client sent nothing parseable.
type Report struct {
	ID        string   `json:"id"`
	PhotoPath string   `json:"photoPath"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	Accuracy  *float64 `json:"accuracy"`
	Timestamp string   `json:"timestamp"`
}
