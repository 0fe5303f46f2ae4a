package controllers

import (
	"strconv"
	"strings"

	"github.com/smithbhavsar/ChatpataAI/entity"
	"github.com/smithbhavsar/ChatpataAI/gateway"
	"github.com/smithbhavsar/ChatpataAI/pkg/resp"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Gateway *gateway.Client
}

func NewRestaurantController(gw *gateway.Client) *RestaurantController {
	return &RestaurantController{Gateway: gw}
}

// GET /restaurants?q=&veg=&refresh=
func (rc *RestaurantController) List(c *gin.Context) {
	if c.Query("refresh") == "true" {
		rc.Gateway.InvalidateRestaurants()
	}

	list, err := rc.Gateway.ListRestaurants(c.Request.Context())
	if err != nil {
		resp.BadGateway(c, err)
		return
	}

	q := strings.ToLower(c.Query("q"))
	vegOnly := c.Query("veg") == "true"

	filtered := make([]entity.Restaurant, 0, len(list))
	for _, r := range list {
		if vegOnly && !r.IsVegetarian {
			continue
		}
		if q != "" && !matchesRestaurant(r, q) {
			continue
		}
		filtered = append(filtered, r)
	}
	resp.OK(c, filtered)
}

// Search matches name, description or cuisine, case-insensitive.
func matchesRestaurant(r entity.Restaurant, q string) bool {
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Description), q) ||
		strings.Contains(strings.ToLower(r.Cuisine), q)
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	list, err := rc.Gateway.ListRestaurants(c.Request.Context())
	if err != nil {
		resp.BadGateway(c, err)
		return
	}
	for _, r := range list {
		if r.ID == id {
			resp.OK(c, r)
			return
		}
	}
	resp.NotFound(c, "restaurant not found")
}
