package cart

import (
	"github.com/gin-gonic/gin"
)

// Delete every line of the product in the url. Unknown products are not an
// error.
func (this API) Delete(c *gin.Context) {
	container := this.getCart(c)
	if container == nil {
		return
	}

	err := container.Remove(c.Param("id"))
	this.respond(c, container, err)
}

// Reset empties the cart, totals and shipping info included.
func (this API) Reset(c *gin.Context) {
	container := this.getCart(c)
	if container == nil {
		return
	}

	err := container.Reset()
	this.respond(c, container, err)
}
