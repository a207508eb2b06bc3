package admin

import (
	"context"
	"fmt"
	"testing"

	"sonata/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeArtistRepo struct {
	artists map[string]*domain.Artist
}

func newFakeArtistRepo(seed ...*domain.Artist) *fakeArtistRepo {
	f := &fakeArtistRepo{artists: map[string]*domain.Artist{}}
	for _, a := range seed {
		stored := *a
		f.artists[a.Email] = &stored
	}
	return f
}

func (f *fakeArtistRepo) GetByEmail(_ context.Context, email string) (*domain.Artist, error) {
	a, ok := f.artists[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeArtistRepo) Approve(_ context.Context, email, passwordHash string) (bool, error) {
	a, ok := f.artists[email]
	if !ok || a.IsApproved || a.IsRejected {
		return false, nil
	}
	a.IsApproved = true
	a.PasswordHash = passwordHash
	return true, nil
}

func (f *fakeArtistRepo) Reject(_ context.Context, email, reason string) (bool, error) {
	a, ok := f.artists[email]
	if !ok || a.IsApproved || a.IsRejected {
		return false, nil
	}
	a.IsRejected = true
	a.RejectionReason = reason
	return true, nil
}

type fakeMailer struct {
	fail          bool
	approvedPass  string
	rejectedInfos []string
}

func (f *fakeMailer) SendVerificationCode(_ context.Context, to, code string) error { return nil }

func (f *fakeMailer) SendArtistApplication(_ context.Context, to string, a *domain.Artist, approveURL, rejectURL string) error {
	return nil
}

func (f *fakeMailer) SendArtistApproved(_ context.Context, to, tempPassword string) error {
	if f.fail {
		return fmt.Errorf("smtp unavailable")
	}
	f.approvedPass = tempPassword
	return nil
}

func (f *fakeMailer) SendArtistRejected(_ context.Context, to, reason string) error {
	if f.fail {
		return fmt.Errorf("smtp unavailable")
	}
	f.rejectedInfos = append(f.rejectedInfos, reason)
	return nil
}

func pendingArtist(email string) *domain.Artist {
	return &domain.Artist{ID: "artist-1", ArtistName: "Nova", Email: email}
}

func TestApproveArtist_IssuesCredentialAndMailsIt(t *testing.T) {
	repo := newFakeArtistRepo(pendingArtist("nova@example.com"))
	m := &fakeMailer{}
	svc := NewService(repo, m)

	result, err := svc.ApproveArtist(context.Background(), "nova@example.com")
	require.NoError(t, err)
	assert.False(t, result.AlreadyApproved)
	assert.True(t, result.EmailSent)
	assert.Empty(t, result.TempPassword)
	assert.True(t, result.Artist.IsApproved)

	// the plaintext sent to the artist matches the stored hash
	require.Len(t, m.approvedPass, 5)
	stored := repo.artists["nova@example.com"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(m.approvedPass)))
}

func TestApproveArtist_Idempotent(t *testing.T) {
	repo := newFakeArtistRepo(pendingArtist("nova@example.com"))
	m := &fakeMailer{}
	svc := NewService(repo, m)
	ctx := context.Background()

	_, err := svc.ApproveArtist(ctx, "nova@example.com")
	require.NoError(t, err)
	firstHash := repo.artists["nova@example.com"].PasswordHash
	firstPass := m.approvedPass

	result, err := svc.ApproveArtist(ctx, "nova@example.com")
	require.NoError(t, err)
	assert.True(t, result.AlreadyApproved)

	// no second credential, no second email
	assert.Equal(t, firstHash, repo.artists["nova@example.com"].PasswordHash)
	assert.Equal(t, firstPass, m.approvedPass)
}

func TestApproveArtist_AfterRejection(t *testing.T) {
	a := pendingArtist("nova@example.com")
	a.IsRejected = true
	a.RejectionReason = "incomplete profile"
	svc := NewService(newFakeArtistRepo(a), &fakeMailer{})

	_, err := svc.ApproveArtist(context.Background(), "nova@example.com")
	assert.ErrorIs(t, err, ErrAlreadyRejectedCannotApprove)
}

func TestApproveArtist_NotFound(t *testing.T) {
	svc := NewService(newFakeArtistRepo(), &fakeMailer{})

	_, err := svc.ApproveArtist(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestApproveArtist_MailFailureSurfacesPassword(t *testing.T) {
	repo := newFakeArtistRepo(pendingArtist("nova@example.com"))
	svc := NewService(repo, &fakeMailer{fail: true})

	result, err := svc.ApproveArtist(context.Background(), "nova@example.com")
	require.NoError(t, err)
	assert.False(t, result.EmailSent)
	require.Len(t, result.TempPassword, 5)

	// approval is kept and the surfaced password still works
	stored := repo.artists["nova@example.com"]
	assert.True(t, stored.IsApproved)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(result.TempPassword)))
}

func TestPrepareRejection_Guards(t *testing.T) {
	pending := pendingArtist("nova@example.com")
	approved := pendingArtist("vega@example.com")
	approved.ID = "artist-2"
	approved.IsApproved = true
	rejected := pendingArtist("lyra@example.com")
	rejected.ID = "artist-3"
	rejected.IsRejected = true

	svc := NewService(newFakeArtistRepo(pending, approved, rejected), &fakeMailer{})
	ctx := context.Background()

	artist, err := svc.PrepareRejection(ctx, "nova@example.com")
	require.NoError(t, err)
	assert.Equal(t, "nova@example.com", artist.Email)

	_, err = svc.PrepareRejection(ctx, "vega@example.com")
	assert.ErrorIs(t, err, ErrAlreadyApprovedCannotReject)

	_, err = svc.PrepareRejection(ctx, "lyra@example.com")
	assert.ErrorIs(t, err, ErrAlreadyRejected)

	_, err = svc.PrepareRejection(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestConfirmRejection_RecordsReasonAndNotifies(t *testing.T) {
	repo := newFakeArtistRepo(pendingArtist("nova@example.com"))
	m := &fakeMailer{}
	svc := NewService(repo, m)

	result, err := svc.ConfirmRejection(context.Background(), "nova@example.com", "portfolio too thin")
	require.NoError(t, err)
	assert.True(t, result.EmailSent)
	assert.Equal(t, "portfolio too thin", result.Reason)
	assert.True(t, result.Artist.IsRejected)

	assert.Equal(t, []string{"portfolio too thin"}, m.rejectedInfos)
	assert.Equal(t, "portfolio too thin", repo.artists["nova@example.com"].RejectionReason)
}

func TestConfirmRejection_Terminal(t *testing.T) {
	repo := newFakeArtistRepo(pendingArtist("nova@example.com"))
	svc := NewService(repo, &fakeMailer{})
	ctx := context.Background()

	_, err := svc.ConfirmRejection(ctx, "nova@example.com", "first reason")
	require.NoError(t, err)

	_, err = svc.ConfirmRejection(ctx, "nova@example.com", "second reason")
	assert.ErrorIs(t, err, ErrAlreadyRejected)
	assert.Equal(t, "first reason", repo.artists["nova@example.com"].RejectionReason)
}

func TestConfirmRejection_AfterApproval(t *testing.T) {
	a := pendingArtist("nova@example.com")
	a.IsApproved = true
	svc := NewService(newFakeArtistRepo(a), &fakeMailer{})

	_, err := svc.ConfirmRejection(context.Background(), "nova@example.com", "too late")
	assert.ErrorIs(t, err, ErrAlreadyApprovedCannotReject)
}

func TestConfirmRejection_MailFailureKeepsTransition(t *testing.T) {
	repo := newFakeArtistRepo(pendingArtist("nova@example.com"))
	svc := NewService(repo, &fakeMailer{fail: true})

	result, err := svc.ConfirmRejection(context.Background(), "nova@example.com", "incomplete profile")
	require.NoError(t, err)
	assert.False(t, result.EmailSent)
	assert.True(t, repo.artists["nova@example.com"].IsRejected)
}
