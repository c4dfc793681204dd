package session

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	cookieName = "session_id"

	// Context keys set by the middlewares.
	KeySessionID     = "session_id"
	KeyCustomerName  = "customer_name"
	KeyCustomerEmail = "customer_email"
	KeyRole          = "role"
)

// Middleware ensures every request carries a session identifier. The cookie
// plays the role the browser origin played for localStorage: it scopes the
// cart, wishlist and order slots.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookieName)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(cookieName, sid, 60*60*24*30, "/", "", false, true)
		}
		c.Set(KeySessionID, sid)
		c.Next()
	}
}

// OptionalAuth parses an access token when one is present and attaches the
// customer identity claims. No token, or a bad one, means a guest — never a
// rejection.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("access_token")
		if err != nil || tokenString == "" {
			c.Next()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			// Token present but invalid or expired: proceed as guest
			c.Next()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if name, ok := claims["name"].(string); ok {
				c.Set(KeyCustomerName, name)
			}
			if email, ok := claims["email"].(string); ok {
				c.Set(KeyCustomerEmail, email)
			}
			if role, ok := claims["role"].(string); ok {
				c.Set(KeyRole, role)
			}
		}

		c.Next()
	}
}
