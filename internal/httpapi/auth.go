package httpapi

import (
	"net/http"

	"floreria-be/internal/auth"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	token, u, err := h.UserSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       u.ID,
			"username": u.Username,
			"email":    u.Email,
			"groups":   u.Groups,
			"role":     u.Role(),
		},
	})
}

func (h *Handler) Me(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized,
			gin.H{"detail": "Authentication credentials were not provided."})
		return
	}

	groups := identity.Groups
	if groups == nil {
		groups = []string{}
	}

	role := "user"
	if len(groups) > 0 {
		role = groups[0]
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       identity.UserID,
		"username": identity.Username,
		"email":    identity.Email,
		"groups":   groups,
		"role":     role,
	})
}
