package api

import (
	"github.com/sirupsen/logrus"
)

// Serve starts the HTTP API on addr and blocks until the listener fails.
func Serve(addr string) error {
	app := New()
	logrus.Infof("schedsim API listening on %s", addr)
	return app.Listen(addr)
}
