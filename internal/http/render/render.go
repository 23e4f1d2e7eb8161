// Package render writes JSON responses and maps ledger errors to HTTP
// statuses.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func Status(kind catasto.Kind) int {
	switch kind {
	case catasto.KindNotFound:
		return http.StatusNotFound
	case catasto.KindUniqueConstraint:
		return http.StatusConflict
	case catasto.KindDataError:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err with the status of its kind. Store failures are logged
// and their detail is not sent to the client.
func Error(w http.ResponseWriter, err error) {
	kind := catasto.KindOf(err)
	status := Status(kind)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "kind", kind.String(), "error", err)
		msg = http.StatusText(status)
	}

	JSON(w, status, errorResponse{Error: kind.String(), Message: msg})
}

// BadRequest reports input that could not be parsed at all.
func BadRequest(w http.ResponseWriter, format string, args ...any) {
	JSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: fmt.Sprintf(format, args...)})
}

// Decode reads a JSON body into v.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding body: %w", err)
	}

	return nil
}

// PathID parses the named chi URL parameter as a positive id.
func PathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}

	return id, nil
}

// QueryID parses an optional positive id from the query string.
func QueryID(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}

	return &id, nil
}

// Date is a calendar day encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.Format(time.DateOnly))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		d.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.New("date must be a YYYY-MM-DD string")
	}

	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("date %q is not YYYY-MM-DD", s)
	}

	d.Time = t

	return nil
}

// DatePtr renders an optional date.
func DatePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}

	d := NewDate(*t)

	return &d
}
