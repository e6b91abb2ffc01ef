package cart

import (
	"github.com/gin-gonic/gin"
)

func (this API) Get(c *gin.Context) {
	container := this.getCart(c)
	if container == nil {
		return
	}

	c.JSON(200, container.State())
}
