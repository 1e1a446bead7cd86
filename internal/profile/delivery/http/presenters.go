package http

import (
	"nutrichat/internal/model"
	"nutrichat/internal/profile"
)

type updateReq struct {
	Name     *string  `json:"name"     binding:"omitempty,max=100"`
	Age      *int     `json:"age"      binding:"omitempty"`
	Email    *string  `json:"email"    binding:"omitempty,email"`
	Height   *float64 `json:"height"   binding:"omitempty,gte=0"`
	Weight   *float64 `json:"weight"   binding:"omitempty,gte=0"`
	Theme    *string  `json:"theme"    binding:"omitempty"`
	FontSize *string  `json:"fontSize" binding:"omitempty"`
}

func (r updateReq) toInput() profile.UpdateInput {
	return profile.UpdateInput{
		Name:     r.Name,
		Age:      r.Age,
		Email:    r.Email,
		Height:   r.Height,
		Weight:   r.Weight,
		Theme:    r.Theme,
		FontSize: r.FontSize,
	}
}

type profileResp struct {
	Name     string  `json:"name"`
	Age      int     `json:"age"`
	Email    string  `json:"email"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Theme    string  `json:"theme"`
	FontSize string  `json:"fontSize"`
}

func newProfileResp(p model.Profile) profileResp {
	return profileResp{
		Name:     p.Name,
		Age:      p.Age,
		Email:    p.Email,
		Height:   p.Height,
		Weight:   p.Weight,
		Theme:    p.Theme,
		FontSize: p.FontSize,
	}
}
