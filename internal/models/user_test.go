package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{"valid user", User{Username: "alice", PasswordHash: "x"}, false},
		{"valid with allowed specials", User{Username: "a.b+c@d-e_f"}, false},
		{"valid with optional email", User{Username: "alice", Email: "alice@example.com"}, false},
		{"missing username", User{}, true},
		{"username with spaces", User{Username: "alice smith"}, true},
		{"username with slash", User{Username: "alice/smith"}, true},
		{"malformed email", User{Username: "alice", Email: "not-an-email"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
