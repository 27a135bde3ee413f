package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

type fakePasswordService struct{}

func (fakePasswordService) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokenService struct{}

func (fakeTokenService) Generate(user *entity.User) (string, error) {
	return "token-" + user.Username, nil
}

func (fakeTokenService) Validate(string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func newLoginUseCase(users ...*entity.User) *LoginUseCase {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.Username] = u
	}
	return NewLoginUseCase(repo, fakePasswordService{}, fakeTokenService{})
}

func TestLoginIssuesToken(t *testing.T) {
	user := entity.NewUser("أحمد", "ahmed", "hashed:secret", entity.UserRoleAdmin)
	uc := newLoginUseCase(user)

	output, err := uc.Execute(context.Background(), LoginInput{Username: "ahmed", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Token != "token-ahmed" {
		t.Errorf("expected token-ahmed, got %q", output.Token)
	}
	if output.User.Role != entity.UserRoleAdmin {
		t.Errorf("expected admin role, got %s", output.User.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	user := entity.NewUser("أحمد", "ahmed", "hashed:secret", entity.UserRoleTreasurer)
	uc := newLoginUseCase(user)

	_, err := uc.Execute(context.Background(), LoginInput{Username: "ahmed", Password: "wrong"})
	if !errors.Is(err, domainerror.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUserGetsSameError(t *testing.T) {
	uc := newLoginUseCase()

	_, err := uc.Execute(context.Background(), LoginInput{Username: "ghost", Password: "whatever"})
	if !errors.Is(err, domainerror.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
