package model

type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

type SignupResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type AuthMeResponse struct {
	UserID int64 `json:"userId"`
	// 토큰에 기록된 발급/만료 시각 (unix seconds)
	IssuedAt  int64 `json:"issuedAt"`
	ExpiresAt int64 `json:"expiresAt"`
}
