package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetTimeParam(t *testing.T) {

	loc, err := time.LoadLocation("UTC")
	require.NoError(t, err)
	require.NotNil(t, loc)

	tests := []struct {
		name     string
		payload  string
		param    string
		nilReq   bool
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "Get valid date",
			payload:  "https://hehe.org/hehe?date=2013-09-30",
			param:    "date",
			expected: time.Date(2013, 9, 30, 0, 0, 0, 0, loc),
		}, {
			name:     "Get not valid date",
			payload:  "https://hehe.org/hehe?date=2013-09-300",
			param:    "date",
			expected: time.Time{},
			wantErr:  true,
		}, {
			name:     "Get empty date",
			payload:  "https://hehe.org/hehe?date=",
			param:    "date",
			expected: time.Time{},
		}, {
			name:     "Get date in another month/day format",
			payload:  "https://hehe.org/hehe?date=2010-9-3",
			param:    "date",
			expected: time.Time{},
			wantErr:  true,
		}, {
			name:     "Nil req",
			payload:  "https://hehe.org/hehe?date=2010-9-3",
			param:    "date",
			nilReq:   true,
			expected: time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			req, err := http.NewRequest(http.MethodGet, tt.payload, nil)
			require.NoError(t, err)

			if tt.nilReq {
				req = nil
			}

			actual, err := getTimeParam(req, tt.param)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.expected, actual)
		})
	}
}

func TestGetRangeParams(t *testing.T) {

	tests := []struct {
		name    string
		payload string
		start   string
		end     string
		wantErr string
	}{
		{
			name:    "both",
			payload: "/x?start_date=2024-01-01&end_date=2024-01-03",
			start:   "2024-01-01",
			end:     "2024-01-03",
		}, {
			name:    "none",
			payload: "/x",
		}, {
			name:    "only start",
			payload: "/x?start_date=2024-01-01",
			wantErr: "start_date and end_date must be given together",
		}, {
			name:    "bad end",
			payload: "/x?start_date=2024-01-01&end_date=tomorrow",
			wantErr: `invalid end_date "tomorrow", expected YYYY-MM-DD`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			req := httptest.NewRequest(http.MethodGet, tt.payload, nil)

			start, end, err := getRangeParams(req)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			if tt.start == "" {
				require.True(t, start.IsZero())
				require.True(t, end.IsZero())
				return
			}
			require.Equal(t, tt.start, start.Format(time.DateOnly))
			require.Equal(t, tt.end, end.Format(time.DateOnly))
		})
	}
}

func TestGetStringParam(t *testing.T) {

	tests := []struct {
		name     string
		payload  string
		param    string
		nilReq   bool
		expected string
	}{
		{
			name:     "Get valid value",
			payload:  "https://hehe.org/hehe?date=2013-09-30",
			param:    "date",
			expected: "2013-09-30",
		}, {
			name:     "Get empty string",
			payload:  "https://hehe.org/hehe?date=",
			param:    "date",
			expected: "",
		}, {
			name:     "Nil req",
			payload:  "https://hehe.org/hehe?date=2013-09-30",
			param:    "date",
			nilReq:   true,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			req, err := http.NewRequest(http.MethodGet, tt.payload, nil)
			require.NoError(t, err)

			if tt.nilReq {
				req = nil
			}

			actual := getStringParam(req, tt.param)
			require.Equal(t, tt.expected, actual)
		})
	}
}

func TestGetIntParam(t *testing.T) {

	tests := []struct {
		name     string
		payload  string
		expected int
		wantErr  bool
	}{
		{name: "absent", payload: "/x", expected: 0},
		{name: "number", payload: "/x?limit=7", expected: 7},
		{name: "negative", payload: "/x?limit=-1", expected: -1},
		{name: "garbage", payload: "/x?limit=ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			actual, err := getIntParam(httptest.NewRequest(http.MethodGet, tt.payload, nil), "limit")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, actual)
		})
	}
}

func TestSendResponse(t *testing.T) {

	rec := httptest.NewRecorder()
	sendResponse(rec, http.StatusTeapot, "short and stout", []string{"a"})

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body struct {
		Message string   `json:"message"`
		Data    []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "short and stout", body.Message)
	require.Equal(t, []string{"a"}, body.Data)

	rec = httptest.NewRecorder()
	sendResponse(rec, http.StatusOK, "ok", nil)
	require.JSONEq(t, `{"message":"ok"}`, rec.Body.String())
}

func TestSendHTML(t *testing.T) {

	rec := httptest.NewRecorder()
	sendHTML(rec, bytes.NewBufferString("<p>hi</p>"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, "<p>hi</p>", rec.Body.String())
}
