package controllers

import (
	"strconv"
	"strings"

	"github.com/smithbhavsar/ChatpataAI/entity"
	"github.com/smithbhavsar/ChatpataAI/gateway"
	"github.com/smithbhavsar/ChatpataAI/pkg/resp"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Gateway *gateway.Client
}

func NewMenuController(gw *gateway.Client) *MenuController {
	return &MenuController{Gateway: gw}
}

// GET /restaurants/:id/menu?q=&veg=&table=
func (mc *MenuController) List(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	items, err := mc.Gateway.ListMenuItems(c.Request.Context(), id)
	if err != nil {
		resp.BadGateway(c, err)
		return
	}

	q := strings.ToLower(c.Query("q"))
	vegOnly := c.Query("veg") == "true"

	filtered := make([]entity.MenuItem, 0, len(items))
	for _, it := range items {
		if vegOnly && !it.IsVegetarian {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(it.Name), q) &&
			!strings.Contains(strings.ToLower(it.Description), q) {
			continue
		}
		filtered = append(filtered, it)
	}

	// The header shows the restaurant name; the list is already cached so
	// the extra lookup is cheap. A failed lookup doesn't block the menu.
	name := ""
	if restaurants, err := mc.Gateway.ListRestaurants(c.Request.Context()); err == nil {
		for _, r := range restaurants {
			if r.ID == id {
				name = r.Name
				break
			}
		}
	}

	resp.OK(c, gin.H{
		"restaurantId":   id,
		"restaurantName": name,
		"tableNumber":    c.Query("table"),
		"items":          filtered,
	})
}
