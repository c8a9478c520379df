package main

import (
	"crypto/subtle"
	"net/http"
)

func basicAuth(user, password string) func(http.Handler) http.Handler {
	userBytes := []byte(user)
	passwordBytes := []byte(password)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			gotUser, gotPassword, _ := req.BasicAuth()

			if subtle.ConstantTimeCompare(userBytes, []byte(gotUser))+
				subtle.ConstantTimeCompare(passwordBytes, []byte(gotPassword)) == 2 {
				next.ServeHTTP(w, req)

				return
			}

			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Authentication is required", http.StatusUnauthorized)
		})
	}
}
