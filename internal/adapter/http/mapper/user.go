package mapper

import (
	"time"

	"github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/dto"
	"github.com/WinchoCode/Qpurpuse-API/internal/core/domain"
)

// ToUserItem never carries the password hash.
func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		TaskCount: user.TaskCount,
	}
}
