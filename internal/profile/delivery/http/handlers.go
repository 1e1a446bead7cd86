package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"nutrichat/internal/profile"
	"nutrichat/pkg/response"
)

// Get godoc
// @Summary     Get the user profile
// @Tags        Profile
// @Produce     json
// @Success     200 {object} profileResp
// @Router      /api/v1/profile [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.uc.Get(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newProfileResp(p))
}

// Update godoc
// @Summary     Update the user profile
// @Description Applies a partial update; omitted fields are left unchanged.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/profile [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	p, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		if isValidationError(err) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newProfileResp(p))
}

func isValidationError(err error) bool {
	return errors.Is(err, profile.ErrInvalidTheme) ||
		errors.Is(err, profile.ErrInvalidFontSize) ||
		errors.Is(err, profile.ErrInvalidAge)
}
