package cart

import (
	"github.com/gin-gonic/gin"
	"github.com/tryanzu/cartstore/modules/cart"
)

func (this API) CalculatePrice(c *gin.Context) {
	container := this.getCart(c)
	if container == nil {
		return
	}

	err := container.CalculatePrice()
	this.respond(c, container, err)
}

// Discount sets the discount amount. Totals change on the next price calculation.
func (this API) Discount(c *gin.Context) {
	var form DiscountForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, gin.H{"status": "error", "message": "Malformed request."})
		return
	}

	container := this.getCart(c)
	if container == nil {
		return
	}

	err := container.ApplyDiscount(*form.Amount)
	this.respond(c, container, err)
}

func (this API) Shipping(c *gin.Context) {
	var info cart.ShippingInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(400, gin.H{"status": "error", "message": "Malformed request."})
		return
	}

	container := this.getCart(c)
	if container == nil {
		return
	}

	err := container.SaveShippingInfo(info)
	this.respond(c, container, err)
}
