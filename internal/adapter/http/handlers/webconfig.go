package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NanduBolleddu/Todofy-project/internal/config"
)

// WebConfigHandler exposes the settings the embedded frontend needs before
// it can log in: the Keycloak realm and the public client id. Serving them
// from the backend keeps the frontend free of hardcoded addresses.
type WebConfigHandler struct {
	cfg *config.Config
}

func NewWebConfigHandler(cfg *config.Config) *WebConfigHandler {
	return &WebConfigHandler{cfg: cfg}
}

func (h *WebConfigHandler) ConfigJS(c *gin.Context) {
	payload, err := json.Marshal(gin.H{
		"keycloakUrl": h.cfg.KeycloakURL,
		"realm":       h.cfg.KeycloakRealm,
		"clientId":    h.cfg.FrontendClientID,
		// Empty means same origin as the page.
		"apiBase": "",
	})
	if err != nil {
		zap.L().Error("failed to render web config", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/javascript", append(append([]byte("window.TODOFY_CONFIG = "), payload...), ';'))
}
