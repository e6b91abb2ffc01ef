package cart

import (
	"github.com/gin-gonic/contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"github.com/tryanzu/cartstore/modules/cart"
)

type API struct {
	Logger *logging.Logger `inject:""`
}

// getCart boots the cart stored in the visitor session. A failure is written
// to the response and nil is returned.
func (this API) getCart(c *gin.Context) *cart.Cart {
	obj, err := cart.Boot(cart.GinGonicSession{Session: sessions.Default(c)})
	if err != nil {
		this.Logger.Errorf("Could not restore cart for %v: %v", c.MustGet("session_id"), err)
		c.JSON(500, gin.H{"status": "error", "message": err.Error()})
		return nil
	}

	return obj
}

// respond writes the cart state or the error. Non finite amounts are the
// client's doing and leave the cart untouched.
func (this API) respond(c *gin.Context, obj *cart.Cart, err error) {
	if errors.Cause(err) == cart.ErrNonFinite {
		c.JSON(400, gin.H{"status": "error", "message": err.Error(), "cart": obj.State()})
		return
	}

	if err != nil {
		this.Logger.Errorf("Could not save cart for %v: %v", c.MustGet("session_id"), err)
		c.JSON(500, gin.H{"status": "error", "message": err.Error(), "cart": obj.State()})
		return
	}

	c.JSON(200, obj.State())
}

type CartAddForm struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	Quantity  int     `json:"quantity"`
}

type DiscountForm struct {
	Amount *float64 `json:"amount" binding:"required"`
}
