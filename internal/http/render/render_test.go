package render_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/http/render"
)

func TestError(t *testing.T) {
	type testCase struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}

	tests := []testCase{
		{
			name:       "NotFound",
			err:        catasto.NotFound("partita %d not found", 7),
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
			wantMsg:    "partita 7 not found",
		},
		{
			name:       "UniqueConstraint",
			err:        catasto.Unique("partita_numero_key", "partita 12 exists"),
			wantStatus: http.StatusConflict,
			wantCode:   "unique_constraint",
			wantMsg:    "partita 12 exists",
		},
		{
			name:       "DataError",
			err:        catasto.DataError("titolo is required"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "data_error",
			wantMsg:    "titolo is required",
		},
		{
			name:       "StoreErrorHidesDetail",
			err:        catasto.StoreError(errors.New("connection refused"), "inserting partita"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "store_error",
			wantMsg:    "Internal Server Error",
		},
		{
			name:       "Unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "unknown",
			wantMsg:    "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			render.Error(rr, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body["error"])
			assert.Contains(t, body["message"], tt.wantMsg)
		})
	}
}

func TestBadRequest(t *testing.T) {
	rr := httptest.NewRecorder()
	render.BadRequest(rr, "invalid id %q", "abc")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"bad_request","message":"invalid id \"abc\""}`, rr.Body.String())
}

func TestDate(t *testing.T) {
	type payload struct {
		Day  render.Date  `json:"day"`
		Opt  *render.Date `json:"opt,omitempty"`
		Zero render.Date  `json:"zero"`
	}

	in := payload{Day: render.NewDate(time.Date(1938, time.April, 1, 0, 0, 0, 0, time.UTC))}

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"1938-04-01","zero":null}`, string(b))

	var out payload
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2024-06-01","opt":"2024-06-02","zero":null}`), &out))
	assert.Equal(t, "2024-06-01", out.Day.Format(time.DateOnly))
	require.NotNil(t, out.Opt)
	assert.Equal(t, "2024-06-02", out.Opt.Format(time.DateOnly))
	assert.True(t, out.Zero.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"day":"01/06/2024"}`), &out))
	assert.Error(t, json.Unmarshal([]byte(`{"day":20240601}`), &out))
}
