package model

import "time"

// FoodItem is one parsed food entry. Food carries the name plus a
// parenthesized quantity/size descriptor, e.g. "Eggs (4 medium)".
// Values are immutable once parsed.
type FoodItem struct {
	Food     string `json:"food"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
	Calories int    `json:"calories"`
}

// Meal is a committed set of food items. Created atomically when the
// user confirms; never mutated afterwards.
type Meal struct {
	CommittedAt time.Time  `json:"committed_at"`
	Items       []FoodItem `json:"items"`
}

// DaySummary aggregates every meal of one calendar day. Items are
// flattened in meal-then-item order.
type DaySummary struct {
	Calories int        `json:"calories"`
	Protein  int        `json:"protein"`
	Carbs    int        `json:"carbs"`
	Fat      int        `json:"fat"`
	Items    []FoodItem `json:"items"`
}

// DayKeyFormat is the calendar-date layout used to bucket meals.
const DayKeyFormat = "2006-01-02"
