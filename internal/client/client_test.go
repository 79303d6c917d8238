package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func newServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", WithHTTPClient(srv.Client()))
}

func TestLogin_StoresToken(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body credentialsBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "marko", body.Username)

		writeJSON(w, http.StatusOK, map[string]any{
			"token":   "tok-1",
			"session": map[string]any{"id": "s1", "user_id": "u1"},
			"user":    map[string]any{"id": "u1", "name": "Marko", "role": "worker"},
		})
	})

	res, err := c.Login(context.Background(), "marko", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", res.Token)
	assert.Equal(t, "s1", res.Session.ID)
	assert.Equal(t, domain.RoleWorker, res.User.Role)
	assert.Equal(t, "tok-1", c.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid login credentials", "code": "invalid_credentials"})
	})

	_, err := c.Login(context.Background(), "marko", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Empty(t, c.Token())
}

func TestRequestShift_SendsBearerAndDecodes(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "/v1/me/shifts", r.URL.Path)

		var body shiftBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2024-05-01", body.Date)
		assert.Equal(t, "2", body.ShiftType)
		assert.Empty(t, body.UserID)

		shift := map[string]any{"id": "sh1", "user_id": "u1", "date": "2024-05-01", "shift_type": "2", "status": "pending"}
		writeJSON(w, http.StatusCreated, map[string]any{"shift": shift, "shifts": []any{shift}})
	})
	c.SetToken("tok-1")

	res, err := c.RequestShift(context.Background(), "2024-05-01", "2")
	require.NoError(t, err)
	assert.Equal(t, domain.ShiftSecond, res.Shift.Type)
	assert.Equal(t, domain.StatusPending, res.Shift.Status)
	assert.Len(t, res.Shifts, 1)
}

func TestErrorEnvelopeMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		code   string
		msg    string
		check  func(t *testing.T, err error)
	}{
		{"conflict", http.StatusConflict, "conflict", "worker already has a shift on that date", func(t *testing.T, err error) {
			assert.ErrorIs(t, err, domain.ErrConflict)
			assert.Equal(t, "worker already has a shift on that date", err.Error())
		}},
		{"validation", http.StatusUnprocessableEntity, "validation", "date is required", func(t *testing.T, err error) {
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "date", ve.Field)
		}},
		{"remote", http.StatusBadGateway, "remote", "connection refused", func(t *testing.T, err error) {
			assert.ErrorIs(t, err, domain.ErrRemote)
			assert.Equal(t, "connection refused", err.Error())
		}},
		{"unauthorized", http.StatusUnauthorized, "unauthorized", "authentication required", func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrUnauthorized)
		}},
		{"loading", http.StatusServiceUnavailable, "loading", "profile is loading", func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrLoading)
		}},
		{"forbidden", http.StatusForbidden, "forbidden", "access forbidden", func(t *testing.T, err error) {
			assert.ErrorIs(t, err, domain.ErrForbidden)
		}},
		{"shift not found", http.StatusNotFound, "not_found", "shift not found", func(t *testing.T, err error) {
			assert.ErrorIs(t, err, domain.ErrShiftNotFound)
		}},
		{"invalid transition", http.StatusUnprocessableEntity, "invalid_transition", "approved -> rejected: invalid status transition", func(t *testing.T, err error) {
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		}},
		{"unknown", http.StatusTeapot, "teapot", "short and stout", func(t *testing.T, err error) {
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusTeapot, apiErr.Status)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tc.status, map[string]string{"error": tc.msg, "code": tc.code, "field": "date"})
			})
			_, err := c.Approve(context.Background(), "sh1")
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestApprove_EscapesID(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/admin/shifts/a%2Fb/approve", r.URL.RawPath)
		writeJSON(w, http.StatusOK, map[string]any{"shift": map[string]any{"id": "a/b", "status": "approved"}})
	})

	shift, err := c.Approve(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, shift.Status)
}

func TestLogout_ClearsTokenEvenWhenSessionIsGone(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required", "code": "unauthorized"})
	})
	c.SetToken("stale")

	require.NoError(t, c.Logout(context.Background()))
	assert.Empty(t, c.Token())
}

func TestCurrentSession(t *testing.T) {
	state := domain.StateSessionOnly
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"state":   state,
			"session": map[string]any{"id": "s1", "user_id": "u1"},
		})
	})

	t.Run("no token skips the round trip", func(t *testing.T) {
		sess, err := c.CurrentSession(context.Background())
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	c.SetToken("tok")

	t.Run("session present", func(t *testing.T) {
		sess, err := c.CurrentSession(context.Background())
		require.NoError(t, err)
		require.NotNil(t, sess)
		assert.Equal(t, "u1", sess.UserID)
	})

	t.Run("profile missing", func(t *testing.T) {
		_, err := c.Profile(context.Background(), "u1")
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})

	t.Run("store unavailable", func(t *testing.T) {
		state = domain.StateUnresolved
		_, err := c.CurrentSession(context.Background())
		assert.ErrorIs(t, err, domain.ErrRemote)
	})
}

func TestTransportFailureIsRemote(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).MyShifts(context.Background())
	assert.True(t, errors.Is(err, domain.ErrRemote))
}
