package controllers

import (
	"errors"
	"strconv"

	"github.com/smithbhavsar/ChatpataAI/entity"
	"github.com/smithbhavsar/ChatpataAI/gateway"
	"github.com/smithbhavsar/ChatpataAI/pkg/resp"
	"github.com/smithbhavsar/ChatpataAI/store"
	"github.com/smithbhavsar/ChatpataAI/utils"
	"github.com/smithbhavsar/ChatpataAI/ws"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Carts   *store.CartStore
	Gateway *gateway.Client
	Hub     *ws.OrderHub
}

func NewCartController(carts *store.CartStore, gw *gateway.Client, hub *ws.OrderHub) *CartController {
	return &CartController{Carts: carts, Gateway: gw, Hub: hub}
}

type AddItemRequest struct {
	RestaurantID int64   `json:"restaurantId" binding:"required"`
	ItemID       int64   `json:"id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
}

func (cc *CartController) snapshot(customerID uint) gin.H {
	cart := cc.Carts.Get(customerID)
	return gin.H{"cart": cart, "total": cart.Total()}
}

// GET /cart
func (cc *CartController) View(c *gin.Context) {
	resp.OK(c, cc.snapshot(utils.CurrentCustomerID(c)))
}

// POST /cart/items
func (cc *CartController) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	customerID := utils.CurrentCustomerID(c)
	line := store.Line{ItemID: req.ItemID, Name: req.Name, UnitPrice: req.Price, Image: req.Image}

	err := cc.Carts.AddItem(customerID, req.RestaurantID, line)
	if errors.Is(err, store.ErrRestaurantMismatch) {
		resp.Conflict(c, "cart holds items from another restaurant; confirm the switch first", gin.H{
			"switchEndpoint": "/cart/switch",
		})
		return
	}
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	body := cc.snapshot(customerID)
	body["message"] = req.Name + " added to cart"
	resp.OK(c, body)
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// PATCH /cart/items/:itemId — quantity <= 0 removes the line
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil || itemID <= 0 {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	customerID := utils.CurrentCustomerID(c)
	cc.Carts.UpdateQuantity(customerID, itemID, req.Quantity)
	resp.OK(c, cc.snapshot(customerID))
}

// DELETE /cart/items/:itemId
func (cc *CartController) RemoveItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil || itemID <= 0 {
		resp.BadRequest(c, "invalid item id")
		return
	}

	customerID := utils.CurrentCustomerID(c)
	cc.Carts.RemoveItem(customerID, itemID)
	resp.OK(c, cc.snapshot(customerID))
}

// DELETE /cart
func (cc *CartController) Clear(c *gin.Context) {
	customerID := utils.CurrentCustomerID(c)
	cc.Carts.Clear(customerID)
	resp.OK(c, cc.snapshot(customerID))
}

type SwitchRequest struct {
	RestaurantID int64 `json:"restaurantId" binding:"required"`
}

// POST /cart/switch — step one of the destructive restaurant switch
func (cc *CartController) RequestSwitch(c *gin.Context) {
	var req SwitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	customerID := utils.CurrentCustomerID(c)
	pending, err := cc.Carts.RequestSwitch(customerID, req.RestaurantID)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	body := cc.snapshot(customerID)
	body["confirmationRequired"] = pending
	if pending {
		body["message"] = "switching restaurants clears your cart; confirm to continue"
	}
	resp.OK(c, body)
}

// POST /cart/switch/confirm
func (cc *CartController) ConfirmSwitch(c *gin.Context) {
	customerID := utils.CurrentCustomerID(c)
	if err := cc.Carts.ConfirmSwitch(customerID); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, cc.snapshot(customerID))
}

// POST /cart/switch/cancel
func (cc *CartController) CancelSwitch(c *gin.Context) {
	customerID := utils.CurrentCustomerID(c)
	cc.Carts.CancelSwitch(customerID)
	resp.OK(c, cc.snapshot(customerID))
}

type CheckoutRequest struct {
	TableNumber     string `json:"tableNumber"`
	SpecialRequests string `json:"specialRequests"`
}

// POST /cart/checkout — submits the cart upstream, clears it, and pushes
// the confirmation to the restaurant's waiter feed.
func (cc *CartController) Checkout(c *gin.Context) {
	// Table number and special requests are both optional; an empty body is
	// a valid checkout.
	var req CheckoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
	}

	customerID := utils.CurrentCustomerID(c)
	cart := cc.Carts.Get(customerID)
	if len(cart.Lines) == 0 {
		resp.BadRequest(c, "cart is empty")
		return
	}

	items := make([]entity.OrderLine, 0, len(cart.Lines))
	for _, ln := range cart.Lines {
		items = append(items, entity.OrderLine{
			MenuItemID: ln.ItemID,
			Name:       ln.Name,
			UnitPrice:  ln.UnitPrice,
			Quantity:   ln.Quantity,
		})
	}

	conf, err := cc.Gateway.PlaceOrder(
		c.Request.Context(),
		strconv.FormatUint(uint64(customerID), 10),
		cart.RestaurantID,
		req.TableNumber,
		req.SpecialRequests,
		items,
	)
	if err != nil {
		resp.BadGateway(c, err)
		return
	}

	cc.Carts.Clear(customerID)
	cc.Hub.Broadcast(ws.OrderEvent{
		RestaurantID: cart.RestaurantID,
		OrderID:      conf.OrderID,
		TableNumber:  req.TableNumber,
		Status:       conf.Status,
		TotalAmount:  conf.TotalAmount,
	})
	resp.Created(c, conf)
}
