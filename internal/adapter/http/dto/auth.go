package dto

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserItem struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
	TaskCount int    `json:"task_count"`
}

type AuthResponse struct {
	Message     string   `json:"message"`
	User        UserItem `json:"user"`
	AccessToken string   `json:"access_token"`
}

type UserResponse struct {
	User UserItem `json:"user"`
}
