package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	profileHTTP "nutrichat/internal/profile/delivery/http"
)

// setupProfileDomain registers the profile domain routes.
func (srv HTTPServer) setupProfileDomain(ctx context.Context, api *gin.RouterGroup) error {
	if srv.profileUC == nil {
		srv.l.Infof(ctx, "Profile use case not configured, skipping profile routes")
		return nil
	}

	h := profileHTTP.New(srv.l, srv.profileUC)
	profileHTTP.RegisterRoutes(api.Group("/profile"), h)

	srv.l.Infof(ctx, "Profile domain registered")
	return nil
}
