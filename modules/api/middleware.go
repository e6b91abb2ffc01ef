package api

import (
	"errors"
	"fmt"

	"github.com/getsentry/raven-go"
	"github.com/gin-gonic/contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	uuid "github.com/satori/go.uuid"
	"github.com/tryanzu/cartstore/deps"
)

type MiddlewareAPI struct {
	Logger *logging.Logger `inject:""`
}

func (di *MiddlewareAPI) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS,PUT,DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Requested-With, Content-Length, Accept-Encoding")
		c.Writer.Header().Set("Access-Control-Max-Age", "3600")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	}
}

// Session makes sure every visitor carries a session id.
func (di *MiddlewareAPI) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		var sid string

		bucket := sessions.Default(c)
		session := bucket.Get("session_id")

		if session == nil {
			sid = uuid.NewV4().String()
			bucket.Set("session_id", sid)
			if err := bucket.Save(); err != nil {
				di.Logger.Errorf("Could not save session: %v", err)
			}
		} else {
			sid = session.(string)
		}

		// Use same session id anywhere
		c.Set("session_id", sid)
		c.Next()
	}
}

// ErrorTracking reports panics to sentry outside of development.
func (di *MiddlewareAPI) ErrorTracking(debug bool, tracker *raven.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if debug || tracker == nil {
			c.Next()
			return
		}

		tags := map[string]string{
			"config_file": deps.EnvFile(),
		}

		defer func() {
			var err error

			switch rval := recover().(type) {
			case nil:
				return
			case error:
				err = rval
			default:
				err = errors.New(fmt.Sprint(rval))
			}

			di.Logger.Errorf("[error] %v", err)
			packet := raven.NewPacket(err.Error(), raven.NewException(err, raven.NewStacktrace(2, 3, nil)))
			tracker.Capture(packet, tags)

			// Also abort the request with 500
			c.AbortWithStatus(500)
		}()

		c.Next()
	}
}
