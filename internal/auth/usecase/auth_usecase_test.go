package usecase

import (
	"testing"
	"time"

	authdomain "mocni-backend/internal/auth/domain"
	authdto "mocni-backend/internal/auth/dto"
	"mocni-backend/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	usersByID     map[string]*authdomain.User
	usersByEmail  map[string]*authdomain.User
	refreshTokens map[string]*authdomain.RefreshToken
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		usersByID:     make(map[string]*authdomain.User),
		usersByEmail:  make(map[string]*authdomain.User),
		refreshTokens: make(map[string]*authdomain.RefreshToken),
	}
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	r.usersByID[user.ID] = user
	r.usersByEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	return r.usersByEmail[email], nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	return r.usersByID[id], nil
}

func (r *fakeUserRepo) Update(user *authdomain.User) error {
	r.usersByID[user.ID] = user
	r.usersByEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) SaveRefreshToken(token *authdomain.RefreshToken) error {
	r.refreshTokens[token.Token] = token
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	return r.refreshTokens[token], nil
}

func (r *fakeUserRepo) DeleteRefreshToken(token string) error {
	delete(r.refreshTokens, token)
	return nil
}

func (r *fakeUserRepo) DeleteRefreshTokensByUser(userID string) error {
	for k, v := range r.refreshTokens {
		if v.UserID == userID {
			delete(r.refreshTokens, k)
		}
	}
	return nil
}

type fakeFCMTokenRepo struct {
	saved map[string]string // token -> userID
}

func newFakeFCMTokenRepo() *fakeFCMTokenRepo {
	return &fakeFCMTokenRepo{saved: make(map[string]string)}
}

func (r *fakeFCMTokenRepo) SaveToken(userID, token, deviceInfo string) error {
	r.saved[token] = userID
	return nil
}

func (r *fakeFCMTokenRepo) GetTokensByUserID(userID string) ([]authdomain.FCMToken, error) {
	var tokens []authdomain.FCMToken
	for token, uid := range r.saved {
		if uid == userID {
			tokens = append(tokens, authdomain.FCMToken{UserID: uid, Token: token})
		}
	}
	return tokens, nil
}

func (r *fakeFCMTokenRepo) DeleteToken(token string) error {
	delete(r.saved, token)
	return nil
}

func (r *fakeFCMTokenRepo) DeleteTokensByUserID(userID string) error {
	for token, uid := range r.saved {
		if uid == userID {
			delete(r.saved, token)
		}
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), newFakeFCMTokenRepo(), testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{
		Email:    "jan@example.com",
		Password: "sekret123",
		Name:     "Jan Kowalski",
		District: "Poznań - Jeżyce",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, authdomain.RoleSenior, resp.User.Role)

	// Duplicate registration is rejected
	_, err = uc.Register(&authdto.RegisterRequest{
		Email:    "jan@example.com",
		Password: "sekret123",
		Name:     "Jan Kowalski",
	})
	assert.EqualError(t, err, "email already registered")

	// Correct password logs in, wrong password does not
	_, err = uc.Login(&authdto.LoginRequest{Email: "jan@example.com", Password: "sekret123"})
	assert.NoError(t, err)

	_, err = uc.Login(&authdto.LoginRequest{Email: "jan@example.com", Password: "zlehaslo"})
	assert.EqualError(t, err, "invalid email or password")
}

func TestValidateTokenRoundtrip(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), newFakeFCMTokenRepo(), testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{
		Email:    "jan@example.com",
		Password: "sekret123",
		Name:     "Jan Kowalski",
	})
	require.NoError(t, err)

	user, err := uc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)

	_, err = uc.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestRefreshTokenFlow(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), newFakeFCMTokenRepo(), testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{
		Email:    "jan@example.com",
		Password: "sekret123",
		Name:     "Jan Kowalski",
	})
	require.NoError(t, err)

	refreshed, err := uc.RefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// After logout the refresh token is no longer accepted
	require.NoError(t, uc.Logout(resp.RefreshToken))
	_, err = uc.RefreshToken(resp.RefreshToken)
	assert.Error(t, err)
}

func TestRegisterFCMToken(t *testing.T) {
	fcmRepo := newFakeFCMTokenRepo()
	uc := NewAuthUsecase(newFakeUserRepo(), fcmRepo, testConfig())

	require.NoError(t, uc.RegisterFCMToken("user-1", "token-a", "Chrome on Android"))
	tokens, err := fcmRepo.GetTokensByUserID("user-1")
	require.NoError(t, err)
	assert.Len(t, tokens, 1)

	require.NoError(t, uc.UnregisterFCMToken("token-a"))
	tokens, err = fcmRepo.GetTokensByUserID("user-1")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}
