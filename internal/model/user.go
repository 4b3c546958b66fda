package model

// User는 저장소가 채번한 id와 생성 시각(unix seconds)을 갖는 계정 엔티티.
// PasswordHash는 argon2id PHC 문자열로, 알고리즘/파라미터/salt를 자체 포함한다.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    int64
}
