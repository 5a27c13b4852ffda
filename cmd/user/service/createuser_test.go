package service

import (
	"context"
	"testing"
	"time"

	"Nestling.com/cmd/model"
	"Nestling.com/pkg/constants"
	"github.com/stretchr/testify/assert"
)

func TestInactiveAccountExpiry(t *testing.T) {
	svc := NewCreateUserService(context.Background())

	t.Run("ActiveNeverExpires", func(t *testing.T) {
		user := &model.User{
			Active:    true,
			CreatedAt: time.Now().Add(-48 * time.Hour).Format(constants.DataFormate),
		}
		assert.False(t, svc.expired(user))
	})

	t.Run("FreshInactiveStillBlocks", func(t *testing.T) {
		user := &model.User{
			Active:    false,
			CreatedAt: time.Now().Add(-30 * time.Minute).Format(constants.DataFormate),
		}
		assert.False(t, svc.expired(user))
	})

	t.Run("StaleInactiveGetsPruned", func(t *testing.T) {
		user := &model.User{
			Active:    false,
			CreatedAt: time.Now().Add(-61 * time.Minute).Format(constants.DataFormate),
		}
		assert.True(t, svc.expired(user))
	})
}
