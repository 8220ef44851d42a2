package domain

// Recipe is the engine's view of a catalog record. The catalog itself is
// owned by the main application; the engine only reads the fields that
// contribute recommendation features.
type Recipe struct {
	ID              string   `json:"id"`
	Ingredients     []string `json:"ingredients"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	PrepTimeMinutes *int     `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes *int     `json:"cook_time_minutes,omitempty"`
	Difficulty      string   `json:"difficulty,omitempty"`
}

// TotalMinutes returns the combined prep and cook time when both are known,
// whichever is present otherwise. The second return value is false when the
// record carries no time information at all.
func (r Recipe) TotalMinutes() (int, bool) {
	switch {
	case r.PrepTimeMinutes != nil && r.CookTimeMinutes != nil:
		return *r.PrepTimeMinutes + *r.CookTimeMinutes, true
	case r.PrepTimeMinutes != nil:
		return *r.PrepTimeMinutes, true
	case r.CookTimeMinutes != nil:
		return *r.CookTimeMinutes, true
	default:
		return 0, false
	}
}
