package model

// Profile holds the user's personal details and display preferences.
type Profile struct {
	Name     string  `json:"name"`
	Age      int     `json:"age"`
	Email    string  `json:"email"`
	Height   float64 `json:"height"` // cm
	Weight   float64 `json:"weight"` // kg
	Theme    string  `json:"theme"`
	FontSize string  `json:"fontSize"`
}
