package auth

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultExpirationSecs = 3600

var (
	ErrMisconfigured = errors.New("auth config invalid")

	// 기동 시점 설정 오류. 프로세스는 이 오류로 기동을 중단해야 한다.
	ErrMissingSecret     = fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	ErrInvalidExpiration = fmt.Errorf("%w: invalid JWT_EXP_SECS", ErrMisconfigured)

	// 요청 단위 오류
	ErrTokenEncode  = errors.New("token signing failed")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims는 검증을 통과한 토큰에서 복원한 신원 정보.
// 서버 측 폐기 목록이 없으므로 ExpiresAt까지는 토큰 소지자 누구에게나 유효하다.
type Claims struct {
	UserID    int64
	IssuedAt  int64
	ExpiresAt int64
}

// TokenService는 공유 secret으로 HS256 토큰을 서명/검증한다.
// 생성 이후 필드가 불변이므로 잠금 없이 동시 사용이 가능하다.
// secret은 어떤 공개 경로로도 노출하지 않는다.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// TokenServiceFromEnv는 JWT_SECRET(필수)과 JWT_EXP_SECS(선택, 기본 3600초)를 읽는다.
// secret 부재나 파싱 불가능한 만료값은 기동 실패로 처리한다.
func TokenServiceFromEnv() (*TokenService, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingSecret
	}

	expSecs := int64(defaultExpirationSecs)
	if v := os.Getenv("JWT_EXP_SECS"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed <= 0 {
			return nil, ErrInvalidExpiration
		}
		expSecs = parsed
	}

	return NewTokenService([]byte(secret), time.Duration(expSecs)*time.Second), nil
}

// TTLSeconds는 발급 토큰의 유효 기간(초)을 반환한다.
func (s *TokenService) TTLSeconds() int64 {
	return int64(s.ttl / time.Second)
}

// Generate는 현재 시각을 iat으로, iat+TTL을 exp로 하는 서명 토큰을 만든다.
func (s *TokenService) Generate(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenEncode, err)
	}
	return signed, nil
}

// Verify는 서명과 만료를 검증하고 Claims를 복원한다.
// 라이브러리의 만료 검증과 별개로 exp를 현재 시각과 직접 비교한다.
// 라이브러리 버전에 따라 검증 기본값이 달라져도 만료 토큰이 통과하지 않게 하기 위함이다.
// 모든 실패는 ErrInvalidToken 하나로 수렴한다.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	parsed := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if parsed.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}
	exp := parsed.ExpiresAt.Unix()
	if exp < time.Now().Unix() {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(parsed.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims := &Claims{
		UserID:    userID,
		ExpiresAt: exp,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Unix()
	}
	return claims, nil
}
