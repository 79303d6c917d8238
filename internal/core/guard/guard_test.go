package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

var (
	worker = &domain.User{ID: "w1", Name: "Marko", Role: domain.RoleWorker}
	admin  = &domain.User{ID: "a1", Name: "Ana", Role: domain.RoleAdmin}
)

func TestProtect(t *testing.T) {
	tests := []struct {
		name    string
		state   domain.ResolutionState
		profile *domain.User
		allowed []domain.Role
		want    Decision
	}{
		{"unresolved waits", domain.StateUnresolved, nil, []domain.Role{domain.RoleAdmin}, Decision{Action: Wait, Reason: "loading"}},
		{"signed out goes to login", domain.StateSignedOut, nil, []domain.Role{domain.RoleAdmin}, Decision{Action: Redirect, Target: LoginPath, Reason: "not signed in"}},
		{"session without profile waits", domain.StateSessionOnly, nil, []domain.Role{domain.RoleWorker}, Decision{Action: Wait, Reason: "loading profile"}},
		{"worker on admin view goes home", domain.StateResolved, worker, []domain.Role{domain.RoleAdmin}, Decision{Action: Redirect, Target: WorkerHome, Reason: "role not allowed"}},
		{"admin on worker view goes home", domain.StateResolved, admin, []domain.Role{domain.RoleWorker}, Decision{Action: Redirect, Target: AdminHome, Reason: "role not allowed"}},
		{"admin on admin view renders", domain.StateResolved, admin, []domain.Role{domain.RoleAdmin}, Decision{Action: Render}},
		{"no roles means any profile", domain.StateResolved, worker, nil, Decision{Action: Render}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Protect(tt.state, tt.profile, tt.allowed...))
		})
	}
}

func TestIndex(t *testing.T) {
	assert.Equal(t, Wait, Index(domain.StateUnresolved, nil).Action)
	assert.Equal(t, Decision{Action: Redirect, Target: LoginPath, Reason: "not signed in"}, Index(domain.StateSignedOut, nil))
	assert.Equal(t, Wait, Index(domain.StateSessionOnly, nil).Action)
	assert.Equal(t, AdminHome, Index(domain.StateResolved, admin).Target)
	assert.Equal(t, WorkerHome, Index(domain.StateResolved, worker).Target)
}

func TestLogin(t *testing.T) {
	assert.Equal(t, Wait, Login(domain.StateUnresolved, nil).Action)
	assert.Equal(t, Render, Login(domain.StateSignedOut, nil).Action)
	assert.Equal(t, Render, Login(domain.StateSessionOnly, nil).Action)
	assert.Equal(t, Decision{Action: Redirect, Target: AdminHome}, Login(domain.StateResolved, admin))
}
