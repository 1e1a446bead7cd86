package profile

// UpdateInput carries a partial profile update. Nil fields are left
// unchanged.
type UpdateInput struct {
	Name     *string
	Age      *int
	Email    *string
	Height   *float64
	Weight   *float64
	Theme    *string
	FontSize *string
}
