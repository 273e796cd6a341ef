package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/madr/internal/demo"
)

// DemoStatusResponse tells clients whether mutations will be refused.
type DemoStatusResponse struct {
	Enabled        bool     `json:"enabled"`
	Message        string   `json:"message"`
	WritableRoutes []string `json:"writable_routes,omitempty"`
}

type DemoController struct {
	middleware *demo.Middleware
}

// NewDemoController creates the demo status endpoint. middleware may be nil
// when demo mode is not configured.
func NewDemoController(middleware *demo.Middleware) *DemoController {
	return &DemoController{middleware: middleware}
}

// GetStatus handles GET /demo/status.
func (dc *DemoController) GetStatus(c *gin.Context) {
	resp := DemoStatusResponse{Message: "Demo mode is not active"}

	if dc.middleware != nil && dc.middleware.IsEnabled() {
		resp = DemoStatusResponse{
			Enabled:        true,
			Message:        "Demo mode is active - write operations are blocked",
			WritableRoutes: demo.WritableRoutes(),
		}
	}

	c.JSON(http.StatusOK, resp)
}
