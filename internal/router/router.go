package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"github.com/sirupsen/logrus"

	"acadrec/internal/auth"
	"acadrec/internal/middleware"
)

// New assembles the HTTP surface: a single GraphQL endpoint plus a
// static health check. Auth lives in the context middleware; the
// resolvers decide per field whether a principal is required.
func New(schema graphql.Schema, jwtService *auth.JWTService, logger *logrus.Logger, graphiql bool) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.AuthContext(jwtService))

	gql := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: graphiql,
	})
	r.Handle("/graphql", gql)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	return r
}
