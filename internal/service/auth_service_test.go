package service

import (
	"context"
	"testing"
	"time"

	"study_planner/internal/model"
	"study_planner/internal/utils"

	"github.com/stretchr/testify/assert"
)

type fakeUserRepo struct {
	users       []*model.User
	created     *model.User
	updatedID   int64
	updatedHash string
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = int64(len(f.users) + 1)
	f.users = append(f.users, user)
	f.created = user
	return nil
}

func (f *fakeUserRepo) FindByLogin(_ context.Context, login string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == login || u.Email == login || u.Phone == login {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByContact(_ context.Context, contact string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == contact || u.Phone == contact {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CountConflicts(_ context.Context, username, email, phone string) (int64, error) {
	var count int64
	for _, u := range f.users {
		if u.Username == username || u.Email == email || u.Phone == phone {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	f.updatedID = id
	f.updatedHash = passwordHash
	for _, u := range f.users {
		if u.ID == id {
			u.PasswordHash = passwordHash
		}
	}
	return nil
}

func newTestAuthService(repo *fakeUserRepo) AuthService {
	return NewAuthService(repo, utils.NewResetTokenUtil("testsecret", 15*time.Minute))
}

func seededUser(t *testing.T, repo *fakeUserRepo, password string) *model.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	assert.NoError(t, err)
	user := &model.User{ID: 1, Username: "budi", Email: "budi@example.com", Phone: "0811", PasswordHash: hash}
	repo.users = append(repo.users, user)
	return user
}

func TestAuthService_Register(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "budi", Email: "budi@example.com", Phone: "0811", Password: "rahasia1",
	})

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.NotEqual(t, "rahasia1", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("rahasia1", user.PasswordHash))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	seededUser(t, repo, "rahasia1")
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "siti", Email: "budi@example.com", Phone: "0822", Password: "rahasia2",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Nil(t, user)
	assert.Nil(t, repo.created) // No second row created
}

func TestAuthService_Login_ByPhone(t *testing.T) {
	repo := &fakeUserRepo{}
	seededUser(t, repo, "rahasia1")
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), "0811", "rahasia1")

	assert.NoError(t, err)
	assert.Equal(t, "budi", user.Username)
}

func TestAuthService_Login_PhoneMatchWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	seededUser(t, repo, "rahasia1")
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), "0811", "salah")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newTestAuthService(&fakeUserRepo{})

	user, err := svc.Login(context.Background(), "nobody", "rahasia1")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestAuthService_ForgotPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	seededUser(t, repo, "rahasia1")
	svc := newTestAuthService(repo)

	token, err := svc.ForgotPassword(context.Background(), "budi@example.com")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.NewResetTokenUtil("testsecret", 15*time.Minute).ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
}

func TestAuthService_ForgotPassword_UnknownContact(t *testing.T) {
	svc := newTestAuthService(&fakeUserRepo{})

	token, err := svc.ForgotPassword(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, token)
}

func TestAuthService_ResetPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	seededUser(t, repo, "rahasia1")
	svc := newTestAuthService(repo)

	token, err := svc.ForgotPassword(context.Background(), "0811")
	assert.NoError(t, err)

	err = svc.ResetPassword(context.Background(), token, "barurahasia")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), repo.updatedID)
	assert.True(t, utils.CheckPasswordHash("barurahasia", repo.updatedHash))
}

func TestAuthService_ResetPassword_TokenFromDifferentSecret(t *testing.T) {
	repo := &fakeUserRepo{}
	seededUser(t, repo, "rahasia1")
	svc := newTestAuthService(repo)

	foreign, err := utils.NewResetTokenUtil("othersecret", 15*time.Minute).GenerateToken(1)
	assert.NoError(t, err)

	err = svc.ResetPassword(context.Background(), foreign, "barurahasia")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
	assert.Empty(t, repo.updatedHash)
}
