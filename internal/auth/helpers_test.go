package auth

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

func performRequest(router *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
