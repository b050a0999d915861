package postgres

import (
	"testing"
	"time"

	"partnerauth/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserMappers(t *testing.T) {
	token := "refresh"
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "a@x.com",
		PasswordHash: "hash.salt",
		FirstName:    "A",
		LastName:     "B",
		RefreshToken: &token,
		CreatedAt:    now,
		UpdatedAt:    now.Add(time.Minute),
	}

	userM := fromUserDomain(user)
	assert.Equal(t, user.ID, userM.ID)
	assert.Equal(t, "hash.salt", userM.PasswordHash)
	assert.Equal(t, user, toUserDomain(userM))

	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}

func TestUserMappers_NoSession(t *testing.T) {
	user := toUserDomain(fromUserDomain(&entity.User{ID: uuid.New(), Email: "a@x.com"}))

	assert.Nil(t, user.RefreshToken)
	assert.False(t, user.HasSession())
}
