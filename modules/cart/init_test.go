package cart

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

var errQuota = errors.New("quota exceeded")

// brokenBucket fails reads and/or writes on demand.
type brokenBucket struct {
	MemoryBucket
	failGet bool
	failSet bool
}

func (b brokenBucket) Get(key string) (string, bool, error) {
	if b.failGet {
		return "", false, errQuota
	}
	return b.MemoryBucket.Get(key)
}

func (b brokenBucket) Set(key, value string) error {
	if b.failSet {
		return errQuota
	}
	return b.MemoryBucket.Set(key, value)
}

func stored(t *testing.T, bucket CartBucket) State {
	s, err := Load(bucket)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestBoot(t *testing.T) {
	Convey("Booting a cart", t, func() {
		bucket := NewMemoryBucket()

		Convey("without a snapshot starts from the initial state", func() {
			c, err := Boot(bucket)
			So(err, ShouldBeNil)
			So(c.State(), ShouldResemble, Initial())
		})

		Convey("with a snapshot restores it as is", func() {
			bucket[Key] = `{"loading":false,"cartItems":[{"productId":"a","name":"Mouse","image":"m.png","price":250,"stock":4,"quantity":2}],"subtotal":500,"tax":90,"shippingCharges":100,"discount":0,"total":690,"shippingInfo":{"address":"","city":"","state":"","country":"","pinCode":""}}`

			c, err := Boot(bucket)
			So(err, ShouldBeNil)

			s := c.State()
			So(s.CartItems, ShouldResemble, []CartItem{{ProductID: "a", Name: "Mouse", Image: "m.png", Price: 250, Stock: 4, Quantity: 2}})
			So(s.Total, ShouldEqual, 690)
		})

		Convey("with a malformed snapshot fails", func() {
			bucket[Key] = `{"cartItems": [`

			c, err := Boot(bucket)
			So(c, ShouldBeNil)
			So(errors.Cause(err), ShouldEqual, ErrMalformedSnapshot)
		})

		Convey("with unreadable storage fails", func() {
			c, err := Boot(brokenBucket{MemoryBucket: bucket, failGet: true})
			So(c, ShouldBeNil)
			So(errors.Cause(err), ShouldEqual, errQuota)
		})
	})
}

func TestCartPersistence(t *testing.T) {
	Convey("Given a booted cart", t, func() {
		bucket := NewMemoryBucket()
		c, err := Boot(bucket)
		So(err, ShouldBeNil)

		Convey("every operation writes the full snapshot", func() {
			So(c.Add(CartItem{ProductID: "a", Price: 500, Quantity: 2}), ShouldBeNil)
			So(stored(t, bucket), ShouldResemble, c.State())

			So(c.CalculatePrice(), ShouldBeNil)
			So(stored(t, bucket).Total, ShouldEqual, 1180)

			So(c.ApplyDiscount(30), ShouldBeNil)
			So(stored(t, bucket).Discount, ShouldEqual, 30)

			info := ShippingInfo{"Street 1", "Town", "State", "Country", "12345"}
			So(c.SaveShippingInfo(info), ShouldBeNil)
			So(stored(t, bucket).ShippingInfo, ShouldResemble, info)

			So(c.Remove("a"), ShouldBeNil)
			So(stored(t, bucket).CartItems, ShouldBeEmpty)

			So(c.Reset(), ShouldBeNil)
			So(bucket[Key], ShouldEqual, `{"loading":false,"cartItems":[],"subtotal":0,"tax":0,"shippingCharges":0,"discount":0,"total":0,"shippingInfo":{"address":"","city":"","state":"","country":"","pinCode":""}}`)
		})

		Convey("removing an unknown product still persists", func() {
			delete(bucket, Key)
			So(c.Remove("missing"), ShouldBeNil)
			_, found, _ := bucket.Get(Key)
			So(found, ShouldBeTrue)
		})

		Convey("a failed write is returned but memory has moved on", func() {
			broken, err := Boot(brokenBucket{MemoryBucket: bucket, failSet: true})
			So(err, ShouldBeNil)

			err = broken.Add(CartItem{ProductID: "a", Price: 10, Quantity: 1})
			So(errors.Cause(err), ShouldEqual, errQuota)
			So(broken.State().CartItems, ShouldHaveLength, 1)

			_, found, _ := bucket.Get(Key)
			So(found, ShouldBeFalse)
		})

		Convey("state handed out is a copy", func() {
			So(c.Add(CartItem{ProductID: "a", Price: 10, Quantity: 1}), ShouldBeNil)
			s := c.State()
			s.CartItems[0].Price = 1

			So(c.State().CartItems[0].Price, ShouldEqual, 10)
		})
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	Convey("Hydrating a persisted state yields the same state", t, func() {
		bucket := NewMemoryBucket()
		c, err := Boot(bucket)
		So(err, ShouldBeNil)

		steps := []Action{
			AddToCartOf(CartItem{ProductID: "a", Name: "Keyboard", Price: 49.99, Quantity: 1, Stock: 3}),
			AddToCartOf(CartItem{ProductID: "b", Name: "Monitor", Image: "/img/b.png", Price: 1299.5, Quantity: 2}),
			CalculatePriceOf(),
			DiscountAppliedOf(-12.25),
			SaveShippingInfoOf(ShippingInfo{"Av. Siempre Viva 742", "Springfield", "OR", "US", "97475"}),
			RemoveCartItemOf("a"),
			CalculatePriceOf(),
			ResetCartOf(),
		}

		for _, step := range steps {
			_, err := c.Dispatch(step)
			So(err, ShouldBeNil)

			restored, err := Boot(bucket)
			So(err, ShouldBeNil)
			So(restored.State(), ShouldResemble, c.State())
		}
	})
}

func TestDispatch(t *testing.T) {
	Convey("Dispatching actions", t, func() {
		c, err := Boot(NewMemoryBucket())
		So(err, ShouldBeNil)

		Convey("returns the updated state", func() {
			s, err := c.Dispatch(AddToCartOf(CartItem{ProductID: "a", Price: 500, Quantity: 2}))
			So(err, ShouldBeNil)
			So(s.CartItems, ShouldHaveLength, 1)

			s, err = c.Dispatch(CalculatePriceOf())
			So(err, ShouldBeNil)
			So(s.Total, ShouldEqual, 1180)
		})

		Convey("rejects unknown action types", func() {
			_, err := c.Dispatch(Action{Type: "cart/checkout"})
			So(errors.Cause(err), ShouldEqual, ErrUnknownAction)
		})

		Convey("rejects payloads of the wrong type", func() {
			s, err := c.Dispatch(Action{Type: DiscountAppliedAction, Payload: "10"})
			So(err, ShouldNotBeNil)
			So(s, ShouldResemble, Initial())
		})
	})
}

func TestNonFiniteAmounts(t *testing.T) {
	Convey("Given a cart whose subtotal overflows", t, func() {
		bucket := NewMemoryBucket()
		c, err := Boot(bucket)
		So(err, ShouldBeNil)
		So(c.Add(CartItem{ProductID: "a", Price: 1e308, Quantity: 2}), ShouldBeNil)

		Convey("price calculation is refused and nothing changes", func() {
			before := c.State()
			So(c.CalculatePrice(), ShouldEqual, ErrNonFinite)
			So(c.State(), ShouldResemble, before)
			So(stored(t, bucket), ShouldResemble, before)
		})

		Convey("later operations keep persisting", func() {
			So(c.CalculatePrice(), ShouldEqual, ErrNonFinite)

			info := ShippingInfo{Address: "Street 1"}
			So(c.SaveShippingInfo(info), ShouldBeNil)
			So(c.Remove("a"), ShouldBeNil)

			So(stored(t, bucket), ShouldResemble, c.State())
			So(stored(t, bucket).ShippingInfo, ShouldResemble, info)
		})
	})

	Convey("Non finite payloads never enter the state", t, func() {
		c, err := Boot(NewMemoryBucket())
		So(err, ShouldBeNil)

		for _, action := range []Action{
			DiscountAppliedOf(math.NaN()),
			DiscountAppliedOf(math.Inf(-1)),
			AddToCartOf(CartItem{ProductID: "a", Price: math.Inf(1), Quantity: 1}),
		} {
			s, err := c.Dispatch(action)
			So(errors.Cause(err), ShouldEqual, ErrNonFinite)
			So(s, ShouldResemble, Initial())
		}

		_, err = c.Dispatch(RemoveCartItemOf("x"))
		So(err, ShouldBeNil)
	})

	Convey("Encoding a non finite state fails with a typed error", t, func() {
		s := DiscountApplied(Initial(), math.NaN())
		_, err := Encode(s)
		So(err, ShouldEqual, ErrNonFinite)
	})
}
