package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/gateway"
)

func NewRouter(handler *Handler, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	r.Use(originGuard(allowedOrigins))
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(r)
}

// originGuard refuses browser requests from pages outside allowedOrigins;
// every route here acts with the stored session.
func originGuard(allowedOrigins []string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if !gateway.OriginAllowed(allowedOrigins, origin) {
				log.Printf("[app-svc] rejected %s %s from origin %s", r.Method, r.URL.Path, origin)
				writeJSON(w, http.StatusForbidden, domain.Result{Success: false, Message: "origin not allowed", ErrorKind: "forbidden"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("App Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
