package auth

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"sonata/internal/domain"
	"sonata/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	email := strings.ToLower(strings.TrimSpace(u.Email))
	if _, ok := f.users[email]; ok {
		return repository.ErrDuplicateEmail
	}
	u.ID = fmt.Sprintf("user-%d", len(f.users)+1)
	u.Email = email
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	stored := *u
	f.users[email] = &stored
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) MarkVerified(_ context.Context, email string) error {
	u, ok := f.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.IsVerified = true
	return nil
}

type fakeArtistRepo struct {
	artists map[string]*domain.Artist
}

func newFakeArtistRepo() *fakeArtistRepo {
	return &fakeArtistRepo{artists: map[string]*domain.Artist{}}
}

func (f *fakeArtistRepo) GetByEmail(_ context.Context, email string) (*domain.Artist, error) {
	a, ok := f.artists[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeArtistRepo) GetByID(_ context.Context, id string) (*domain.Artist, error) {
	for _, a := range f.artists {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeCodeRepo struct {
	codes []*domain.VerificationCode
}

func (f *fakeCodeRepo) Create(_ context.Context, c *domain.VerificationCode) error {
	c.ID = fmt.Sprintf("code-%d", len(f.codes)+1)
	c.CreatedAt = time.Now()
	stored := *c
	f.codes = append(f.codes, &stored)
	return nil
}

func (f *fakeCodeRepo) InvalidatePending(_ context.Context, email string, purpose domain.CodePurpose) error {
	for _, c := range f.codes {
		if c.Email == email && c.Purpose == purpose && !c.Used {
			c.Used = true
		}
	}
	return nil
}

func (f *fakeCodeRepo) FindConsumable(_ context.Context, email, code string, purpose domain.CodePurpose, now time.Time) (*domain.VerificationCode, error) {
	for _, c := range f.codes {
		if c.Email == email && c.Code == code && c.Purpose == purpose && !c.Used && c.ExpiresAt.After(now) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCodeRepo) MarkUsed(_ context.Context, id string) (bool, error) {
	for _, c := range f.codes {
		if c.ID == id {
			if c.Used {
				return false, nil
			}
			c.Used = true
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCodeRepo) latest() *domain.VerificationCode {
	if len(f.codes) == 0 {
		return nil
	}
	return f.codes[len(f.codes)-1]
}

type fakeJWT struct{}

func (fakeJWT) GenerateSessionToken(userID, email, accountType string) (string, error) {
	return "token-" + userID, nil
}

type fakeMailer struct {
	fail      bool
	sentCodes []string
}

func (f *fakeMailer) SendVerificationCode(_ context.Context, to, code string) error {
	if f.fail {
		return fmt.Errorf("smtp unavailable")
	}
	f.sentCodes = append(f.sentCodes, code)
	return nil
}

func (f *fakeMailer) SendArtistApplication(_ context.Context, to string, a *domain.Artist, approveURL, rejectURL string) error {
	return nil
}

func (f *fakeMailer) SendArtistApproved(_ context.Context, to, tempPassword string) error {
	return nil
}

func (f *fakeMailer) SendArtistRejected(_ context.Context, to, reason string) error {
	return nil
}

func newTestService() (*Service, *fakeUserRepo, *fakeArtistRepo, *fakeCodeRepo, *fakeMailer) {
	users := newFakeUserRepo()
	artists := newFakeArtistRepo()
	codes := &fakeCodeRepo{}
	m := &fakeMailer{}
	svc := NewService(users, artists, codes, fakeJWT{}, m, 10*time.Minute)
	return svc, users, artists, codes, m
}

func registerReq(email string) RegisterRequest {
	return RegisterRequest{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     email,
		Password:  "secret123",
		Phone:     "+100000000",
	}
}

func TestRegister_CreatesUnverifiedUserAndSendsCode(t *testing.T) {
	svc, users, _, codes, m := newTestService()

	user, sent, err := svc.Register(context.Background(), registerReq("alice@example.com"))
	require.NoError(t, err)
	assert.True(t, sent)
	assert.False(t, user.IsVerified)
	assert.Empty(t, user.PasswordHash)

	stored := users.users["alice@example.com"]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))

	require.Len(t, m.sentCodes, 1)
	assert.Len(t, m.sentCodes[0], 5)
	assert.Equal(t, m.sentCodes[0], codes.latest().Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, users, _, _, _ := newTestService()
	ctx := context.Background()

	first, _, err := svc.Register(ctx, registerReq("alice@example.com"))
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, registerReq("alice@example.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)

	// the first record is untouched
	assert.Equal(t, first.ID, users.users["alice@example.com"].ID)
	assert.Len(t, users.users, 1)
}

func TestRegister_DispatchFailureIsDegradedSuccess(t *testing.T) {
	svc, users, _, codes, m := newTestService()
	m.fail = true

	user, sent, err := svc.Register(context.Background(), registerReq("alice@example.com"))
	require.NoError(t, err)
	assert.False(t, sent)
	assert.NotNil(t, user)

	// user and code are committed even though the email never left
	assert.Contains(t, users.users, "alice@example.com")
	require.NotNil(t, codes.latest())
	assert.False(t, codes.latest().Used)
}

func TestVerifyEmail_FlipsUserAndConsumesCode(t *testing.T) {
	svc, users, _, codes, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerReq("alice@example.com"))
	require.NoError(t, err)
	code := codes.latest().Code

	require.NoError(t, svc.VerifyEmail(ctx, "alice@example.com", code))
	assert.True(t, users.users["alice@example.com"].IsVerified)
	assert.True(t, codes.latest().Used)
}

func TestVerifyEmail_WrongCode(t *testing.T) {
	svc, users, _, codes, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerReq("alice@example.com"))
	require.NoError(t, err)

	wrong := "00000"
	if codes.latest().Code == wrong {
		wrong = "00001"
	}
	err = svc.VerifyEmail(ctx, "alice@example.com", wrong)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
	assert.False(t, users.users["alice@example.com"].IsVerified)
}

func TestVerifyEmail_ConsumeIsExactlyOnce(t *testing.T) {
	svc, _, _, codes, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerReq("alice@example.com"))
	require.NoError(t, err)
	code := codes.latest().Code

	require.NoError(t, svc.VerifyEmail(ctx, "alice@example.com", code))
	err = svc.VerifyEmail(ctx, "alice@example.com", code)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
}

func TestVerifyEmail_ExpiredCode(t *testing.T) {
	svc, _, _, codes, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerReq("alice@example.com"))
	require.NoError(t, err)

	codes.latest().ExpiresAt = time.Now().Add(-time.Minute)

	err = svc.VerifyEmail(ctx, "alice@example.com", codes.latest().Code)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
}

func TestResendVerification_SupersedesOlderCode(t *testing.T) {
	svc, _, _, codes, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerReq("alice@example.com"))
	require.NoError(t, err)
	firstCode := codes.latest().Code

	sent, err := svc.ResendVerification(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, sent)
	secondCode := codes.latest().Code

	// the first code is superseded even though it never expired
	if firstCode != secondCode {
		err = svc.VerifyEmail(ctx, "alice@example.com", firstCode)
		assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
	}

	require.NoError(t, svc.VerifyEmail(ctx, "alice@example.com", secondCode))
}

func TestResendVerification_UnknownOrVerified(t *testing.T) {
	svc, _, _, codes, _ := newTestService()
	ctx := context.Background()

	_, err := svc.ResendVerification(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFoundOrVerified)

	_, _, err = svc.Register(ctx, registerReq("alice@example.com"))
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(ctx, "alice@example.com", codes.latest().Code))

	_, err = svc.ResendVerification(ctx, "alice@example.com")
	assert.ErrorIs(t, err, ErrNotFoundOrVerified)
}

func TestLogin_UnverifiedUserFailsRegardlessOfPassword(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerReq("alice@example.com"))
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrEmailNotVerified)

	_, err = svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrEmailNotVerified)
}

func TestLogin_EndToEnd(t *testing.T) {
	svc, _, _, codes, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerReq("alice@example.com"))
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(ctx, "alice@example.com", codes.latest().Code))

	_, err = svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	result, err := svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotNil(t, result.User)
	assert.NotEmpty(t, result.Token)
	assert.Empty(t, result.User.PasswordHash)

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLogin_ArtistStates(t *testing.T) {
	svc, _, artists, _, _ := newTestService()
	ctx := context.Background()
	req := LoginRequest{Email: "bob@example.com", Password: "secret123", AccountType: "artist"}

	_, err := svc.Login(ctx, req)
	assert.ErrorIs(t, err, ErrNotFound)

	artists.artists["bob@example.com"] = &domain.Artist{ID: "artist-1", Email: "bob@example.com"}
	_, err = svc.Login(ctx, req)
	assert.ErrorIs(t, err, ErrArtistNotApproved)

	artists.artists["bob@example.com"].IsApproved = true
	_, err = svc.Login(ctx, req)
	assert.ErrorIs(t, err, ErrArtistNotActivated)

	hash, hashErr := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, hashErr)
	artists.artists["bob@example.com"].PasswordHash = string(hash)

	result, err := svc.Login(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, result.Artist)
	assert.Equal(t, "token-artist-1", result.Token)

	_, err = svc.Login(ctx, LoginRequest{Email: "bob@example.com", Password: "wrong", AccountType: "artist"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
