package handler

import (
	"net/http"

	"github.com/Vedlovable/Samadhaan-Setu/internal/utils"
)

// RootHandler décrit sommairement l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]interface{}{
		"name": "Samadhaan-Setu API",
		"endpoints": []string{
			"POST /auth/login",
			"POST /auth/logout",
			"GET /auth/me",
			"POST /issues",
			"GET /issues?status=&category=&q=",
			"GET /issues/markers",
			"GET /issues/stats",
			"PATCH /issues/{kind}/{id}/status",
			"POST /issues/{kind}/{id}/assign",
			"GET /issues/{kind}/{id}/updates",
			"GET /health",
			"GET /metrics",
		},
	})
}

// HealthCheck répond ok tant que le process tourne
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]string{"status": "ok"})
}
