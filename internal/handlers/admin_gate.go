package handlers

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminGate checks the single operator account configured at startup. It
// keeps casual visitors out of the admin routes and is not an
// authentication system.
type AdminGate struct {
	username     string
	passwordHash []byte
}

func NewAdminGate(username, password string) (*AdminGate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &AdminGate{username: username, passwordHash: hash}, nil
}

func (g *AdminGate) Check(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)) == nil
	return userOK && passOK
}

// Middleware requires HTTP basic credentials on every request.
func (g *AdminGate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok || !g.Check(username, password) {
			c.Header("WWW-Authenticate", `Basic realm="storefront admin"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "نام کاربری یا رمز عبور اشتباه است"})
			return
		}
		c.Next()
	}
}

// Login lets a client verify credentials before storing them.
func (g *AdminGate) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if !g.Check(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "نام کاربری یا رمز عبور اشتباه است"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "authenticated"})
}
