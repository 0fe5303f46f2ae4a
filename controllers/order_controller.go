package controllers

import (
	"strconv"

	"github.com/smithbhavsar/ChatpataAI/gateway"
	"github.com/smithbhavsar/ChatpataAI/pkg/resp"
	"github.com/smithbhavsar/ChatpataAI/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Gateway *gateway.Client
}

func NewOrderController(gw *gateway.Client) *OrderController {
	return &OrderController{Gateway: gw}
}

// GET /profile/orders?restaurantId= — the caller's open (unbilled) orders
// at one restaurant
func (oc *OrderController) ListForMe(c *gin.Context) {
	restaurantID, err := strconv.ParseInt(c.Query("restaurantId"), 10, 64)
	if err != nil || restaurantID <= 0 {
		resp.BadRequest(c, "restaurantId is required")
		return
	}

	customerID := strconv.FormatUint(uint64(utils.CurrentCustomerID(c)), 10)
	orders, err := oc.Gateway.ListUnbilledOrders(c.Request.Context(), customerID, restaurantID)
	if err != nil {
		resp.BadGateway(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /profile/bills — the caller's billing history
func (oc *OrderController) BillsForMe(c *gin.Context) {
	customerID := strconv.FormatUint(uint64(utils.CurrentCustomerID(c)), 10)
	bills, err := oc.Gateway.ListBills(c.Request.Context(), customerID)
	if err != nil {
		resp.BadGateway(c, err)
		return
	}
	resp.OK(c, bills)
}
