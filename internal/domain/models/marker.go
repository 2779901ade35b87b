package models

// Marker is a user-placed annotation on the chart: a concept tag pinned to a
// (time, price) point. Markers live only for the duration of a chart session.
type Marker struct {
	ID      string  `json:"id"`
	Concept Concept `json:"concept"`
	Time    int64   `json:"time"`
	Price   float64 `json:"price"`
}
