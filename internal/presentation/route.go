package presentation

import "github.com/labstack/echo/v4"

// Route is one entry of the routing table.
type Route struct {
	Method     string
	Path       string
	Handler    echo.HandlerFunc
	Middleware []echo.MiddlewareFunc
}

// Router is satisfied by *echo.Echo and *echo.Group.
type Router interface {
	Add(method, path string, handler echo.HandlerFunc, middleware ...echo.MiddlewareFunc) *echo.Route
}

func Register(r Router, routes []Route) {
	for _, route := range routes {
		r.Add(route.Method, route.Path, route.Handler, route.Middleware...)
	}
}
