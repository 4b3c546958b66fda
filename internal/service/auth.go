package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/memoapp/backend/internal/auth"
	"github.com/memoapp/backend/internal/db"
	"github.com/memoapp/backend/internal/model"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidPassword = errors.New("invalid password")

	// 이메일 중복. 검증 오류와 구분되는 정상 결과이며 409로 매핑된다.
	ErrConflict = errors.New("email already registered")

	// 계정 없음과 비밀번호 불일치를 하나로 수렴시킨 값.
	// 오류만으로는 계정 존재 여부를 구분할 수 없어야 한다.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// 해싱 자체의 실패 (난수 소스 고장 등). 내부 오류로 처리한다.
	ErrHash = errors.New("password hashing failed")
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) bool
}

// 계정이 없을 때도 검증 연산을 수행해 응답 시간을 일정하게 유지하기 위한 가짜 해시.
// 실제 어떤 비밀번호와도 일치하지 않는다.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// AuthService는 가입/로그인 유스케이스를 담당한다.
// 저장소는 UserStore 계약으로만 접근하므로 백엔드 교체에 영향을 받지 않는다.
type AuthService struct {
	store  db.UserStore
	hasher PasswordHasher
}

func NewAuthService(store db.UserStore, hasher PasswordHasher) *AuthService {
	return &AuthService{store: store, hasher: hasher}
}

// Signup은 이메일/비밀번호 검증 → 해싱 → 저장 순서로 진행한다.
// 싼 검사를 먼저 해서 잘못된 입력에 해싱 비용을 쓰지 않는다.
// 존재 여부 사전 조회는 하지 않는다. check-then-insert는 동시 가입에서
// 경쟁이 생기므로 유일성 판정은 저장소의 unique 제약에만 맡긴다.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*model.User, error) {
	if !auth.ValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !auth.ValidPassword(password) {
		return nil, ErrInvalidPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHash, err)
	}

	user, err := s.store.CreateUser(ctx, email, hash)
	if err != nil {
		if errors.Is(err, db.ErrEmailTaken) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return user, nil
}

// Login은 읽기 전용이다. 계정 없음과 비밀번호 불일치는 동일한
// ErrInvalidCredentials로 반환한다 (계정 열거 방지).
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			// 가짜 해시로 검증을 수행해 존재하는 계정과 시간 차이를 줄인다
			s.hasher.Verify(password, dummyPasswordHash)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
