package identity

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/apetrei/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository implements Repository for testing.
type mockRepository struct {
	accounts      map[string]*domain.Account
	nextID        int64
	createErr     error
	getByEmailErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		accounts: make(map[string]*domain.Account),
		nextID:   1,
	}
}

func (m *mockRepository) CreateAccount(_ context.Context, account *domain.Account) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.accounts[account.Email]; ok {
		return ErrEmailExists
	}
	account.ID = m.nextID
	m.nextID++
	m.accounts[account.Email] = account
	return nil
}

func (m *mockRepository) GetAccountByEmail(_ context.Context, email string) (*domain.Account, error) {
	if m.getByEmailErr != nil {
		return nil, m.getByEmailErr
	}
	if a, ok := m.accounts[email]; ok {
		return a, nil
	}
	return nil, ErrAccountNotFound
}

func (m *mockRepository) GetAccountByID(_ context.Context, id int64) (*domain.Account, error) {
	for _, a := range m.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, ErrAccountNotFound
}

// fakeHasher is a cheap PasswordHasher for tests; the real derivation is
// covered in the hash package.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) ([]byte, []byte, error) {
	return []byte("hash:" + password), []byte("salt"), nil
}

func (fakeHasher) Verify(password string, storedHash, _ []byte) bool {
	return bytes.Equal([]byte("hash:"+password), storedHash)
}

// mockAuthenticator implements Authenticator for testing.
type mockAuthenticator struct {
	createErr error
}

func (m *mockAuthenticator) CreateToken(_ *domain.Account) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	return "token", nil
}

func (m *mockAuthenticator) ValidateToken(_ context.Context, _ string) (int64, string, domain.Role, error) {
	return 0, "", "", ErrInvalidToken
}

// mockVerifier implements EmailVerifier for testing.
type mockVerifier struct {
	valid bool
	err   error
}

func (m *mockVerifier) VerifyEmail(_ context.Context, _ string) (bool, error) {
	return m.valid, m.err
}

func newTestService(repo Repository, verifier EmailVerifier) *Service {
	return NewService(repo, fakeHasher{}, &mockAuthenticator{}, verifier)
}

func TestRegister_Success(t *testing.T) {
	repo := newMockRepository()
	service := newTestService(repo, &mockVerifier{valid: true})

	account, err := service.Register(context.Background(), RegisterInput{
		Email:     "test@test.com",
		Password:  "password123",
		FirstName: "Ana",
		LastName:  "Pop",
	})

	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "test@test.com", account.Email)
	assert.Equal(t, domain.RoleUser, account.Role, "new accounts get the lowest privilege")
	assert.NotZero(t, account.ID)

	stored := repo.accounts["test@test.com"]
	require.NotNil(t, stored)
	assert.Equal(t, []byte("hash:password123"), stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordSalt)
}

func TestRegister_NormalizesEmail(t *testing.T) {
	repo := newMockRepository()
	service := newTestService(repo, nil)

	account, err := service.Register(context.Background(), RegisterInput{
		Email:    "  Test@Example.COM ",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", account.Email)
	assert.Contains(t, repo.accounts, "test@example.com")
}

func TestRegister_EmailAlreadyExists(t *testing.T) {
	repo := newMockRepository()
	repo.accounts["taken@test.com"] = &domain.Account{ID: 1, Email: "taken@test.com"}
	service := newTestService(repo, &mockVerifier{valid: true})

	account, err := service.Register(context.Background(), RegisterInput{
		Email:    "taken@test.com",
		Password: "password123",
	})

	assert.Nil(t, account)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRegister_StoreConstraintSettlesRace(t *testing.T) {
	// Simulates two concurrent registrations: the pre-check saw no account,
	// but by insert time the store's unique constraint rejects the write.
	repo := newMockRepository()
	repo.createErr = ErrEmailExists
	service := newTestService(repo, &mockVerifier{valid: true})

	account, err := service.Register(context.Background(), RegisterInput{
		Email:    "raced@test.com",
		Password: "password123",
	})

	assert.Nil(t, account)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRegister_RejectsUndeliverableEmail(t *testing.T) {
	repo := newMockRepository()
	service := newTestService(repo, &mockVerifier{valid: false})

	account, err := service.Register(context.Background(), RegisterInput{
		Email:    "nobody@invalid.test",
		Password: "password123",
	})

	assert.Nil(t, account)
	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.Empty(t, repo.accounts)
}

func TestRegister_VerifierOutageDoesNotBlock(t *testing.T) {
	repo := newMockRepository()
	service := newTestService(repo, &mockVerifier{err: errors.New("connection refused")})

	account, err := service.Register(context.Background(), RegisterInput{
		Email:    "test@test.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotNil(t, account)
}

func registerTestAccount(t *testing.T, service *Service, email, password string) *domain.AccountProjection {
	t.Helper()
	account, err := service.Register(context.Background(), RegisterInput{
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return account
}

func TestLogin_Success(t *testing.T) {
	repo := newMockRepository()
	service := newTestService(repo, nil)
	registerTestAccount(t, service, "test@test.com", "test-password")

	token, account, err := service.Login(context.Background(), LoginInput{
		Email:    "test@test.com",
		Password: "test-password",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, account)
	assert.Equal(t, "test@test.com", account.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockRepository()
	service := newTestService(repo, nil)
	registerTestAccount(t, service, "test@test.com", "test-password")

	token, account, err := service.Login(context.Background(), LoginInput{
		Email:    "test@test.com",
		Password: "wrong",
	})

	assert.Empty(t, token)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailIndistinguishable(t *testing.T) {
	repo := newMockRepository()
	service := newTestService(repo, nil)
	registerTestAccount(t, service, "test@test.com", "test-password")

	_, _, wrongPassErr := service.Login(context.Background(), LoginInput{
		Email:    "test@test.com",
		Password: "wrong",
	})
	_, _, unknownErr := service.Login(context.Background(), LoginInput{
		Email:    "nobody@test.com",
		Password: "whatever",
	})

	// Both failures map to the same error so responses cannot be used to
	// enumerate registered emails.
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr, unknownErr)
}

func TestGetAccountByID(t *testing.T) {
	repo := newMockRepository()
	service := newTestService(repo, nil)
	created := registerTestAccount(t, service, "test@test.com", "test-password")

	account, err := service.GetAccountByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, account.Email)

	_, err = service.GetAccountByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
