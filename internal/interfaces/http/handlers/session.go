// internal/interfaces/http/handlers/session.go
package handlers

import (
	"net/http"

	"github.com/coupledelight/shop-api/internal/config"
	"github.com/coupledelight/shop-api/internal/domain/cart"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CartSessions hands out the cart of the current browser session
type CartSessions struct {
	storage cart.Storage
	cfg     config.CartConfig
	secure  bool
	logger  logrus.FieldLogger
}

func NewCartSessions(storage cart.Storage, cfg config.CartConfig, secure bool, logger logrus.FieldLogger) *CartSessions {
	return &CartSessions{storage: storage, cfg: cfg, secure: secure, logger: logger}
}

// open hydrates the session cart, issuing a session cookie if there is none
func (s *CartSessions) open(c *gin.Context) *cart.Store {
	sessionID := s.getOrCreateSessionID(c)
	logger := s.logger.WithField("session_id", sessionID)
	return cart.NewStore(c.Request.Context(), s.storage, cart.SessionKey(sessionID), logger)
}

func (s *CartSessions) getOrCreateSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie(s.cfg.SessionCookie)
	if err == nil {
		if _, parseErr := uuid.Parse(sessionID); parseErr == nil {
			return sessionID
		}
	}

	sessionID = uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cfg.SessionCookie, sessionID, s.cfg.CookieMaxAge, "/", "", s.secure, true)
	return sessionID
}
