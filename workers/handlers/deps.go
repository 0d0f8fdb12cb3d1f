package handlers

import (
	"gobridgeflow/session"
	"gobridgeflow/types"
)

type Pinger interface {
	Ping() error
}

type Deps struct {
	Catalog types.Catalog
	Flows   *session.Registry
	Auth    *session.Authenticator
	// may be nil when running without redis
	Store Pinger
}

var deps Deps

// Init wires the handlers; it must be called before serving
func Init(d Deps) {
	deps = d
}
