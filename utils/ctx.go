package utils

import (
	"github.com/smithbhavsar/ChatpataAI/entity"

	"github.com/gin-gonic/gin"
)

func CurrentCustomerID(c *gin.Context) uint {
	v, _ := c.Get("customerId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentRole(c *gin.Context) entity.Role {
	if v, ok := c.Get("role"); ok {
		if r, ok := v.(entity.Role); ok {
			return r
		}
	}
	return ""
}

// CurrentIdentity returns the customer the auth middleware restored, or nil
// on public routes.
func CurrentIdentity(c *gin.Context) *entity.Customer {
	if v, ok := c.Get("identity"); ok {
		if cust, ok := v.(*entity.Customer); ok {
			return cust
		}
	}
	return nil
}

// CurrentToken returns the raw bearer token the request carried.
func CurrentToken(c *gin.Context) string {
	if v, ok := c.Get("token"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
