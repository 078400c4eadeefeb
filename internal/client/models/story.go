package models

import "time"

// Story is a geotagged story as returned by the remote API. Stories are
// immutable once fetched; the local cache is replaced wholesale on refresh.
type Story struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PhotoURL    string    `json:"photoUrl"`
	CreatedAt   time.Time `json:"createdAt"`

	// Lat and Lon are either both present or both absent.
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// HasLocation reports whether the story carries a complete coordinate pair.
// Stories missing either coordinate stay in the feed but get no map marker.
func (s *Story) HasLocation() bool {
	return s.Lat != nil && s.Lon != nil
}
