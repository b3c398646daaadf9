package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kruthislayscoding/hardzy-app/internal/domain"
)

func setupService(t *testing.T) *Service {
	return NewService(time.Millisecond, nil)
}

func signedInUser(t *testing.T, sut *Service) *domain.User {
	require.NoError(t, sut.SignIn(context.Background(), "+91 9876543210"))
	user, err := sut.VerifyOTP(context.Background(), "000000")
	require.NoError(t, err)
	return user
}

func fullProfile() domain.ProfileUpdate {
	name := "Kruthi"
	email := "kruthi@example.com"
	return domain.ProfileUpdate{
		Name:  &name,
		Email: &email,
		Address: &domain.Address{
			Street:  "12 MG Road",
			City:    "Bengaluru",
			Pincode: "560001",
		},
	}
}

func TestSignIn_TransitionsToPendingVerification(t *testing.T) {
	sut := setupService(t)

	require.NoError(t, sut.SignIn(context.Background(), "+91 9876543210"))
	assert.Equal(t, StatePendingVerification, sut.State())
	assert.False(t, sut.IsAuthenticated())
}

func TestSignIn_EmptyPhoneRejected(t *testing.T) {
	sut := setupService(t)

	err := sut.SignIn(context.Background(), "")
	require.ErrorIs(t, err, ErrEmptyPhone)
	assert.Equal(t, StateSignedOut, sut.State())
}

func TestSignIn_ContextCancelled(t *testing.T) {
	sut := NewService(time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sut.SignIn(ctx, "+91 9876543210")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateSignedOut, sut.State())
}

func TestVerifyOTP_AlwaysSucceedsFromPending(t *testing.T) {
	sut := setupService(t)
	require.NoError(t, sut.SignIn(context.Background(), "+91 9876543210"))

	user, err := sut.VerifyOTP(context.Background(), "000000")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "+91 9876543210", user.Phone)
	assert.False(t, user.ProfileComplete)
	assert.Empty(t, user.Name)
	assert.Equal(t, StateSignedInIncomplete, sut.State())
	assert.True(t, sut.IsAuthenticated())
}

func TestVerifyOTP_RequiresPendingVerification(t *testing.T) {
	sut := setupService(t)

	_, err := sut.VerifyOTP(context.Background(), "000000")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestSignIn_RejectedWhileSignedIn(t *testing.T) {
	sut := setupService(t)
	signedInUser(t, sut)

	err := sut.SignIn(context.Background(), "+91 1111111111")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestUpdateProfile_FullFieldsCompleteProfile(t *testing.T) {
	sut := setupService(t)
	signedInUser(t, sut)

	user, err := sut.UpdateProfile(fullProfile())
	require.NoError(t, err)

	assert.True(t, user.ProfileComplete)
	assert.Equal(t, "Kruthi", user.Name)
	assert.Equal(t, "560001", user.Address.Pincode)
	assert.Equal(t, StateSignedInComplete, sut.State())
}

func TestUpdateProfile_PartialFieldsStayIncomplete(t *testing.T) {
	sut := setupService(t)
	signedInUser(t, sut)

	name := "Kruthi"
	user, err := sut.UpdateProfile(domain.ProfileUpdate{Name: &name})
	require.NoError(t, err)

	assert.False(t, user.ProfileComplete)
	assert.Equal(t, StateSignedInIncomplete, sut.State())
}

func TestUpdateProfile_MergePreservesUnsetFields(t *testing.T) {
	sut := setupService(t)
	signedInUser(t, sut)

	_, err := sut.UpdateProfile(fullProfile())
	require.NoError(t, err)

	dob := "1995-04-12"
	user, err := sut.UpdateProfile(domain.ProfileUpdate{DateOfBirth: &dob})
	require.NoError(t, err)

	assert.Equal(t, "Kruthi", user.Name) // untouched
	assert.Equal(t, "1995-04-12", user.DateOfBirth)
	assert.True(t, user.ProfileComplete)
}

func TestUpdateProfile_RequiresSignedInUser(t *testing.T) {
	sut := setupService(t)

	_, err := sut.UpdateProfile(fullProfile())
	require.ErrorIs(t, err, ErrNotSignedIn)
}

func TestSignOut_DiscardsUser(t *testing.T) {
	sut := setupService(t)
	signedInUser(t, sut)
	_, err := sut.UpdateProfile(fullProfile())
	require.NoError(t, err)

	sut.SignOut()

	assert.Equal(t, StateSignedOut, sut.State())
	assert.False(t, sut.IsAuthenticated())
	_, err = sut.User()
	assert.ErrorIs(t, err, ErrNotSignedIn)

	// a fresh sign-in starts a new cycle
	require.NoError(t, sut.SignIn(context.Background(), "+91 2222222222"))
	assert.Equal(t, StatePendingVerification, sut.State())
}

func TestUser_ReturnsCopy(t *testing.T) {
	sut := setupService(t)
	signedInUser(t, sut)

	user, err := sut.User()
	require.NoError(t, err)
	user.Name = "mutated"

	fresh, err := sut.User()
	require.NoError(t, err)
	assert.Empty(t, fresh.Name)
}
