package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

func TestOutcome(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{&domain.ValidationError{Field: "date", Message: "date is required"}, "invalid"},
		{fmt.Errorf("decide: %w", domain.ErrInvalidTransition), "invalid"},
		{domain.ErrConflict, "conflict"},
		{domain.ErrAlreadyRegistered, "conflict"},
		{domain.ErrInvalidCredentials, "unauthorized"},
		{domain.ErrShiftNotFound, "not_found"},
		{domain.Remote("insert", errors.New("boom")), "remote"},
		{errors.New("boom"), "error"},
	}
	for _, c := range cases {
		if got := Outcome(c.err); got != c.want {
			t.Errorf("Outcome(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}
