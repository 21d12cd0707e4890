package api

import "Implicate/internal/api/handler"

// HandlersGroup bundles every initialized handler for router setup.
type HandlersGroup struct {
	AuthHandler  *handler.AuthHandler
	UserHandler  *handler.UserHandler
	PostHandler  *handler.PostHandler
	ReplyHandler *handler.ReplyHandler
	AdminHandler *handler.AdminHandler
}
