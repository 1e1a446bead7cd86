package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	mealHTTP "nutrichat/internal/meal/delivery/http"
)

// setupMealDomain registers the meal domain routes: chat plus history.
func (srv HTTPServer) setupMealDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := mealHTTP.New(srv.l, srv.mealUC)
	mealHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Meal domain registered")
	return nil
}
