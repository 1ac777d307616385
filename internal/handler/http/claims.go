package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// claimString pulls a string claim from the verified token, "" when absent.
func claimString(r *http.Request, key string) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	value, _ := claims[key].(string)
	return value
}

func employeeIDFromToken(r *http.Request) string {
	return claimString(r, "employee_id")
}

func userIDFromToken(r *http.Request) string {
	return claimString(r, "user_id")
}

func roleFromToken(r *http.Request) string {
	return claimString(r, "role")
}
