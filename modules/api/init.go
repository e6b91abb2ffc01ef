package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/facebookgo/inject"
	"github.com/getsentry/raven-go"
	"github.com/gin-gonic/contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/olebedev/config"
	"github.com/op/go-logging"
	"github.com/tryanzu/cartstore/modules/api/controller/cart"
)

var log = logging.MustGetLogger("api")

type Module struct {
	Dependencies ModuleDI
	Cart         cart.API
	Middlewares  MiddlewareAPI
}

type ModuleDI struct {
	Config *config.Config `inject:""`
}

// Router builds the gin engine with sessions, middlewares and cart routes.
func (module *Module) Router() (*gin.Engine, error) {
	conf := module.Dependencies.Config
	debug := true

	// If development turn debug on
	if conf.UString("environment", "development") != "development" {
		debug = false
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := module.sessionStore()
	if err != nil {
		return nil, err
	}

	var tracker *raven.Client
	if dsn := conf.UString("sentry.dsn", ""); dsn != "" {
		tracker, err = raven.NewClient(dsn, nil)
		if err != nil {
			return nil, err
		}
	}

	router := gin.Default()
	router.Use(sessions.Sessions("session", store))
	router.Use(module.Middlewares.ErrorTracking(debug, tracker))
	router.Use(module.Middlewares.CORS())

	v1 := router.Group("/v1")
	v1.Use(module.Middlewares.Session())

	// Cart routes
	v1.GET("/cart", module.Cart.Get)
	v1.DELETE("/cart", module.Cart.Reset)
	v1.POST("/cart/items", module.Cart.Add)
	v1.DELETE("/cart/items/:id", module.Cart.Delete)
	v1.POST("/cart/price", module.Cart.CalculatePrice)
	v1.PUT("/cart/discount", module.Cart.Discount)
	v1.PUT("/cart/shipping", module.Cart.Shipping)

	return router, nil
}

func (module *Module) sessionStore() (sessions.Store, error) {
	conf := module.Dependencies.Config
	secret, err := conf.String("application.secret")
	if err != nil {
		return nil, err
	}

	switch driver := conf.UString("api.sessions", "cookie"); driver {
	case "cookie":
		return sessions.NewCookieStore([]byte(secret)), nil
	case "redis":
		return sessions.NewRedisStore(
			conf.UInt("api.redis.size", 10),
			"tcp",
			conf.UString("api.redis.address", "localhost:6379"),
			conf.UString("api.redis.password", ""),
			[]byte(secret),
		)
	default:
		return nil, fmt.Errorf("unknown session store %q", driver)
	}
}

func (module *Module) Run(bindTo string) {
	router, err := module.Router()
	if err != nil {
		log.Fatal(err)
	}

	// Start the http server as an isolated goroutine.
	srv := &http.Server{
		Addr:    bindTo,
		Handler: router,
	}
	go func() {
		log.Infof("Listening on %s", bindTo)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with
	// a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}
	log.Info("Server exiting")
}

func (module *Module) Populate(g inject.Graph) {
	err := g.Provide(
		&inject.Object{Value: &module.Dependencies},
		&inject.Object{Value: &module.Cart},
		&inject.Object{Value: &module.Middlewares},
	)

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Populate the DI with the instances
	if err := g.Populate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
