package cart

import (
	"github.com/gin-gonic/gin"
	"github.com/tryanzu/cartstore/modules/cart"
)

// Add an item to the cart or replace the existing line of that product.
func (this API) Add(c *gin.Context) {
	var form CartAddForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, gin.H{"status": "error", "message": "Malformed request."})
		return
	}

	container := this.getCart(c)
	if container == nil {
		return
	}

	err := container.Add(cart.CartItem{
		ProductID: form.ProductID,
		Name:      form.Name,
		Image:     form.Image,
		Price:     form.Price,
		Stock:     form.Stock,
		Quantity:  form.Quantity,
	})

	this.respond(c, container, err)
}
