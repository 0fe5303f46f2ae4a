package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smithbhavsar/ChatpataAI/pkg/resp"

	"github.com/gin-gonic/gin"
)

// QRController resolves scanned table codes. The camera integration lives
// on the client; the server only decodes the payload, printed on table
// cards as "table:<restaurantId>:<tableNumber>".
type QRController struct{}

func NewQRController() *QRController { return &QRController{} }

type ScanRequest struct {
	Code string `json:"code" binding:"required"`
}

// POST /scan
func (q *QRController) Resolve(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	parts := strings.Split(req.Code, ":")
	if len(parts) != 3 || parts[0] != "table" {
		resp.BadRequest(c, "unrecognized table code")
		return
	}
	restaurantID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || restaurantID <= 0 || parts[2] == "" {
		resp.BadRequest(c, "unrecognized table code")
		return
	}

	resp.OK(c, gin.H{
		"restaurantId": restaurantID,
		"tableNumber":  parts[2],
		"redirect":     fmt.Sprintf("/restaurants/%d/menu?table=%s", restaurantID, parts[2]),
	})
}
