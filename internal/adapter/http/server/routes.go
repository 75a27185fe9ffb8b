package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/NssGourav/shuttle-tracker/docs"
	"github.com/NssGourav/shuttle-tracker/internal/adapter/http/handler"
	"github.com/NssGourav/shuttle-tracker/internal/adapter/http/middleware"
	"github.com/NssGourav/shuttle-tracker/internal/adapter/http/ws"
	"github.com/NssGourav/shuttle-tracker/internal/domain/types"
)

func (a *API) routes(h *handler.Handler, mw *middleware.Middleware, feed *ws.ShuttleFeed) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /swagger/", httpSwagger.Handler())

	mux.HandleFunc("POST /api/auth/signup", h.Signup)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	// The web client calls this one "signin".
	mux.HandleFunc("POST /api/auth/signin", h.Login)

	driverOnly := mw.RequireRoles(types.RoleDriver)
	studentOnly := mw.RequireRoles(types.RoleStudent)
	anyUser := mw.RequireRoles(types.RoleDriver, types.RoleStudent)

	mux.Handle("POST /api/driver/update-location", driverOnly(http.HandlerFunc(h.UpdateLocation)))
	mux.Handle("GET /api/student/driver-location/{driver_id}", anyUser(http.HandlerFunc(h.GetDriverLocation)))
	mux.Handle("POST /api/student/assign-driver", studentOnly(http.HandlerFunc(h.AssignDriver)))

	mux.HandleFunc("GET /api/drivers", h.ListDrivers)
	mux.HandleFunc("GET /api/routes", h.ListRoutes)
	mux.HandleFunc("GET /api/shuttles", h.ListShuttles)

	mux.HandleFunc("GET /ws/shuttles", feed.Subscribe)

	var chain http.Handler = mux
	chain = mw.Authenticate(chain)
	chain = mw.Logging(chain)
	chain = mw.Metrics(chain)
	chain = mw.RequestID(chain)
	chain = mw.RecoverPanic(chain)

	return chain
}
