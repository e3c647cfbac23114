package user

import (
	"testing"

	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUserRepo struct {
	users map[string]models.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]models.User)}
}

func (m *memoryUserRepo) Upsert(email string, u *models.User) error {
	u.Email = email
	m.users[email] = *u
	return nil
}

func (m *memoryUserRepo) GetByEmail(email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memoryUserRepo) GetAll() ([]models.User, error) {
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memoryUserRepo) SetRole(email, role string) error {
	u, ok := m.users[email]
	if !ok {
		return assert.AnError
	}
	u.Role = role
	m.users[email] = u
	return nil
}

func TestUpsert_StoresAccountAndIssuesToken(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := &DefaultUserService{Repo: repo}

	token, err := svc.Upsert("a@x.com", models.User{Name: "Ada"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := utils.ExtractEmailFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)

	stored, err := repo.GetByEmail("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Ada", stored.Name)
}

func TestIsAdmin(t *testing.T) {
	repo := newMemoryUserRepo()
	repo.users["admin@x.com"] = models.User{Email: "admin@x.com", Role: "admin"}
	repo.users["a@x.com"] = models.User{Email: "a@x.com"}
	svc := &DefaultUserService{Repo: repo}

	isAdmin, err := svc.IsAdmin("admin@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin("a@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	// Unknown accounts are not admins.
	isAdmin, err = svc.IsAdmin("nobody@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestMakeAdmin_RequiresAdminRequester(t *testing.T) {
	repo := newMemoryUserRepo()
	repo.users["admin@x.com"] = models.User{Email: "admin@x.com", Role: "admin"}
	repo.users["a@x.com"] = models.User{Email: "a@x.com"}
	repo.users["b@x.com"] = models.User{Email: "b@x.com"}
	svc := &DefaultUserService{Repo: repo}

	err := svc.MakeAdmin("a@x.com", "b@x.com")
	assert.ErrorIs(t, err, ErrNotAdmin)
	assert.Empty(t, repo.users["b@x.com"].Role)

	require.NoError(t, svc.MakeAdmin("admin@x.com", "b@x.com"))
	assert.Equal(t, "admin", repo.users["b@x.com"].Role)
}
