package mongo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

func TestDuplicateAs(t *testing.T) {
	t.Run("write exception", func(t *testing.T) {
		err := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}}}
		if got := duplicateAs(err, domain.ErrConflict); !errors.Is(got, domain.ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", got)
		}
	})

	t.Run("command error", func(t *testing.T) {
		err := mongo.CommandError{Code: 11000, Message: "E11000 duplicate key error"}
		if got := duplicateAs(err, domain.ErrConflict); !errors.Is(got, domain.ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", got)
		}
	})

	t.Run("other write error", func(t *testing.T) {
		err := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 121, Message: "Document failed validation"}}}
		if got := duplicateAs(err, domain.ErrConflict); errors.Is(got, domain.ErrConflict) {
			t.Errorf("expected original error, got %v", got)
		}
	})

	t.Run("plain error", func(t *testing.T) {
		err := errors.New("server selection timeout")
		if got := duplicateAs(err, domain.ErrConflict); got != err {
			t.Errorf("expected original error, got %v", got)
		}
	})
}
