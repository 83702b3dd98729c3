package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// openAPIDoc is the API description served to the Swagger UI. Maintained by
// hand: the surface is small and every response envelope is shaped in the
// handlers rather than generated from structs.
const openAPIDoc = `{
  "swagger": "2.0",
  "info": {
    "title": "Cricket Data API",
    "description": "Read-only aggregation proxy unifying cricket stats providers, ICC rankings, RSS news, and X search behind one stable JSON contract.",
    "version": "1.0"
  },
  "basePath": "/",
  "schemes": ["http", "https"],
  "paths": {
    "/": {
      "get": {"tags": ["meta"], "summary": "API root info", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
    },
    "/test": {
      "get": {"tags": ["meta"], "summary": "Status probe", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
    },
    "/api/hello": {
      "get": {"tags": ["meta"], "summary": "Static greeting", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
    },
    "/api/matches": {
      "get": {
        "tags": ["matches"], "summary": "List matches", "produces": ["application/json"],
        "parameters": [{"name": "type", "in": "query", "type": "string", "enum": ["live", "upcoming", "completed"], "default": "live"}],
        "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid type"}, "501": {"description": "Provider not configured"}}
      }
    },
    "/api/match/{match_id}": {
      "get": {
        "tags": ["matches"], "summary": "Match detail (provider-native payload)", "produces": ["application/json"],
        "parameters": [{"name": "match_id", "in": "path", "required": true, "type": "string"}],
        "responses": {"200": {"description": "OK"}, "501": {"description": "Provider not configured"}}
      }
    },
    "/api/rankings": {
      "get": {
        "tags": ["rankings"], "summary": "ICC rankings", "produces": ["application/json"],
        "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["test", "odi", "t20"], "default": "odi"}],
        "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid format"}}
      }
    },
    "/api/news": {
      "get": {"tags": ["news"], "summary": "Latest news", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
    },
    "/api/trending-players": {
      "get": {"tags": ["players"], "summary": "Trending players", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
    },
    "/api/tweets": {
      "get": {
        "tags": ["tweets"], "summary": "Tweet search", "produces": ["application/json"],
        "parameters": [{"name": "query", "in": "query", "required": true, "type": "string"}],
        "responses": {"200": {"description": "OK"}, "400": {"description": "Missing query"}}
      }
    }
  }
}`

// mountDocs serves the Swagger UI and its backing document.
func mountDocs(r chi.Router) {
	r.Get("/docs/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(openAPIDoc))
	})
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))
}
