package cart

import (
	"github.com/gin-gonic/contrib/sessions"
	"github.com/pkg/errors"
)

// GinGonicSession keeps the cart inside the visitor's gin session.
type GinGonicSession struct {
	Session sessions.Session
}

func (gcs GinGonicSession) Get(key string) (string, bool, error) {
	data := gcs.Session.Get(key)
	if data == nil {
		return "", false, nil
	}

	encoded, ok := data.(string)
	if !ok {
		return "", false, errors.Errorf("session value %q holds %T", key, data)
	}

	return encoded, true, nil
}

func (gcs GinGonicSession) Set(key, value string) error {
	gcs.Session.Set(key, value)
	return gcs.Session.Save()
}
