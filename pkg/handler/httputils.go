package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"skydash/pkg/consts"

	"github.com/sirupsen/logrus"
)

// Response is the envelope of every JSON answer.
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// getTimeParam returns the zero time when the param is absent and an error when it is malformed.
func getTimeParam(r *http.Request, name string) (time.Time, error) {

	v := getStringParam(r, name)
	if v == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(consts.TimeFormat, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q, expected YYYY-MM-DD", name, v)
	}

	return t, nil
}

// getRangeParams reads start_date and end_date, which come in pairs or not at all.
func getRangeParams(r *http.Request) (time.Time, time.Time, error) {

	start, err := getTimeParam(r, consts.ParamStartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := getTimeParam(r, consts.ParamEndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if start.IsZero() != end.IsZero() {
		return time.Time{}, time.Time{}, errors.New("start_date and end_date must be given together")
	}

	return start, end, nil
}

func getStringParam(r *http.Request, name string) string {

	if r == nil {
		return ""
	}

	return r.URL.Query().Get(name)
}

// getIntParam returns 0 when the param is absent.
func getIntParam(r *http.Request, name string) (int, error) {

	v := getStringParam(r, name)
	if v == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, v)
	}

	return n, nil
}

func sendResponse(w http.ResponseWriter, status int, msg string, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(Response{Message: msg, Data: data}); err != nil {
		logrus.Errorf("error while sending response %q", err)
	}
}

func sendHTML(w http.ResponseWriter, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		logrus.Errorf("error while sending page %q", err)
	}
}
