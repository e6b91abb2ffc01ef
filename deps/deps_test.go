package deps

import (
	"testing"

	"github.com/olebedev/config"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tryanzu/cartstore/modules/cart"
)

func withConfig(raw string) Ignitor {
	return func(container Deps) (Deps, error) {
		conf, err := config.ParseJson(raw)
		container.ConfigProvider = conf
		return container, err
	}
}

func TestIgniteBucket(t *testing.T) {
	Convey("Igniting the cart bucket", t, func() {

		Convey("memory is the default driver", func() {
			container, err := Ignite(withConfig(`{}`), IgniteLogger, IgniteBucket)
			So(err, ShouldBeNil)
			So(container.Bucket(), ShouldHaveSameTypeAs, cart.MemoryBucket{})
			So(container.Log(), ShouldNotBeNil)
		})

		Convey("bunt opens a buntdb database", func() {
			container, err := Ignite(withConfig(`{"cart": {"storage": "bunt", "bunt": {"path": ":memory:"}}}`), IgniteBucket)
			So(err, ShouldBeNil)
			defer container.Close()

			So(container.Bucket(), ShouldHaveSameTypeAs, cart.BuntBucket{})

			c, err := cart.Boot(container.Bucket())
			So(err, ShouldBeNil)
			So(c.Add(cart.CartItem{ProductID: "a", Price: 1, Quantity: 1}), ShouldBeNil)
		})

		Convey("ledis opens an embedded database", func() {
			raw := `{"cart": {"storage": "ledis", "ledis": {"path": "` + t.TempDir() + `"}}}`
			container, err := Ignite(withConfig(raw), IgniteBucket)
			So(err, ShouldBeNil)
			defer container.Close()

			So(container.Bucket(), ShouldHaveSameTypeAs, cart.LedisBucket{})
		})

		Convey("unknown drivers are rejected", func() {
			_, err := Ignite(withConfig(`{"cart": {"storage": "floppy"}}`), IgniteBucket)
			So(err, ShouldNotBeNil)
		})

		Convey("an invalid log level is rejected", func() {
			_, err := Ignite(withConfig(`{"log": {"level": "LOUD"}}`), IgniteLogger)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestIgniteConfig(t *testing.T) {
	Convey("Without an env file the defaults apply", t, func() {
		t.Setenv("ENV_FILE", t.TempDir()+"/missing.json")

		container, err := Ignite(IgniteConfig)
		So(err, ShouldBeNil)
		So(container.Config().UString("cart.storage"), ShouldEqual, "memory")
		So(container.Config().UString("api.sessions"), ShouldEqual, "cookie")
	})
}
