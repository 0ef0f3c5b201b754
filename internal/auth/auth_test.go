package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/logger"

	config "task-collab.com/task-collab/internal/configs"
	"task-collab.com/task-collab/internal/domain/events"
	"task-collab.com/task-collab/internal/domain/identity"
	"task-collab.com/task-collab/internal/domain/member"
	"task-collab.com/task-collab/internal/domain/result"
	apperr "task-collab.com/task-collab/internal/errors"
	repository "task-collab.com/task-collab/internal/repositories"
	"task-collab.com/task-collab/internal/services"
)

func testJWT() *JWTManager {
	return NewJWTManager(JWTConfig{
		SecretKey:           "test-secret",
		Issuer:              "task-collab-test",
		AccessTokenDuration: 15 * time.Minute,
	})
}

func setupService(t *testing.T) (*Service, *repository.MemberRepository) {
	t.Helper()

	db, err := config.OpenDatabase(":memory:", logger.Silent)
	require.NoError(t, err)

	members := repository.NewMemberRepository(db)
	svc := NewService(
		repository.NewUserRepository(db),
		services.NewRegisterMember(members, events.Discard),
		NewPasswordHasher(bcrypt.MinCost),
		testJWT(),
	)
	return svc, members
}

func TestSignUpRegistersMember(t *testing.T) {
	svc, members := setupService(t)
	ctx := context.Background()

	account, err := svc.SignUp(ctx, "Ada@Example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", account.Email)

	userID := identity.ParseUserID(account.UserID)
	require.True(t, userID.IsOk())
	m, found, err := members.GetMemberByUserID(ctx, userID.Value())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, account.MemberID, m.ID().String())
}

func TestSignUpRejects(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	_, err := svc.SignUp(ctx, "taken@example.com", "password123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		kind     apperr.Kind
	}{
		{name: "bad email", email: "not-an-email", password: "password123", kind: apperr.KindValidation},
		{name: "short password", email: "a@example.com", password: "short", kind: apperr.KindValidation},
		{name: "long password", email: "a@example.com", password: string(make([]byte, 73)), kind: apperr.KindValidation},
		{name: "duplicate email", email: "TAKEN@example.com", password: "password123", kind: apperr.KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(ctx, tt.email, tt.password)
			require.Error(t, err)
			assert.Equal(t, tt.kind, apperr.KindOf(err))
		})
	}
}

func TestLogInAndAuthenticate(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	account, err := svc.SignUp(ctx, "ada@example.com", "password123")
	require.NoError(t, err)

	pair, err := svc.LogIn(ctx, "ada@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	userID, err := svc.Authenticate(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, account.UserID, userID)
}

func TestLogInWithWrongCredentials(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	_, err := svc.SignUp(ctx, "ada@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.LogIn(ctx, "ada@example.com", "wrong-password")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = svc.LogIn(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	svc, _ := setupService(t)

	other := NewJWTManager(JWTConfig{SecretKey: "other-secret", Issuer: "task-collab-test", AccessTokenDuration: time.Minute})
	forged, err := other.GenerateAccessToken(identity.NewUserID().String())
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", forged} {
		_, err := svc.Authenticate(token)
		assert.ErrorIs(t, err, apperr.ErrInvalidToken)
		assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
	}
}

func TestJWTManagerRejectsExpiredToken(t *testing.T) {
	m := testJWT()
	issued := time.Now().Add(-time.Hour)
	m.now = func() time.Time { return issued }
	token, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManagerRejectsForeignIssuer(t *testing.T) {
	foreign := NewJWTManager(JWTConfig{SecretKey: "test-secret", Issuer: "someone-else", AccessTokenDuration: time.Minute})
	token, err := foreign.GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = testJWT().ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)
	assert.True(t, h.Verify("password123", hash))
	assert.False(t, h.Verify("password124", hash))
}

func TestNewPasswordHasherDefaultsCost(t *testing.T) {
	assert.Equal(t, DefaultBcryptCost, NewPasswordHasher(0).cost)
}

// flakyRegistrar fails the first registration and delegates afterwards.
type flakyRegistrar struct {
	next  MemberRegistrar
	calls int
}

func (r *flakyRegistrar) Execute(ctx context.Context, req services.RegisterMemberRequest) services.Response[*member.Member] {
	r.calls++
	if r.calls == 1 {
		return result.Left[*apperr.Exception, *member.Member](apperr.Unexpected(errors.New("database is locked")))
	}
	return r.next.Execute(ctx, req)
}

func TestSignUpRollsBackUserWhenMemberRegistrationFails(t *testing.T) {
	db, err := config.OpenDatabase(":memory:", logger.Silent)
	require.NoError(t, err)
	ctx := context.Background()

	users := repository.NewUserRepository(db)
	members := repository.NewMemberRepository(db)
	registrar := &flakyRegistrar{next: services.NewRegisterMember(members, events.Discard)}
	svc := NewService(users, registrar, NewPasswordHasher(bcrypt.MinCost), testJWT())

	_, err = svc.SignUp(ctx, "ada@example.com", "password123")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnexpected, apperr.KindOf(err))

	exists, err := users.EmailExists(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.LogIn(ctx, "ada@example.com", "password123")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	account, err := svc.SignUp(ctx, "ada@example.com", "password123")
	require.NoError(t, err)

	userID := identity.ParseUserID(account.UserID)
	require.True(t, userID.IsOk())
	_, found, err := members.GetMemberByUserID(ctx, userID.Value())
	require.NoError(t, err)
	assert.True(t, found)
}
