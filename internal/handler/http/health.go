package http

import (
	"net/http"

	"github.com/fasihgds-afk/activity-detector-backend/internal/handler/http/response"
)

const banner = "Employee Monitoring API is running..."

func Banner(w http.ResponseWriter, r *http.Request) {
	response.Text(w, banner)
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	response.Text(w, "ok")
}

// UpdateCheck answers the desktop agent's update probe.
func UpdateCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w)
}
