//go:build integration

package integration

import (
	"net/http"
	"testing"
	"time"

	"github.com/apetrei/storefront/internal/testutil"
	"github.com/stretchr/testify/require"
)

// accountBody is the account shape returned inside the data envelope.
type accountBody struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// productBody is the product shape returned inside the data envelope.
type productBody struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Uses      string    `json:"uses"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// registerAccount registers an account with the shared test password
// and returns its projection.
func registerAccount(t *testing.T, client *testutil.Client, email string) accountBody {
	t.Helper()

	resp, err := client.POST("/api/v1/auth/register", map[string]string{
		"email":      email,
		"password":   testPassword,
		"first_name": "Test",
		"last_name":  "User",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		Data accountBody `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &result)
	return result.Data
}

// registerAndLogin registers a fresh account and authenticates the client as
// it. Returns the account projection.
func registerAndLogin(t *testing.T, client *testutil.Client) accountBody {
	t.Helper()

	account := registerAccount(t, client, testutil.RandomEmail())
	client.LoginAs(t, account.Email, testPassword)
	return account
}

// loginAsAdmin authenticates the client as the bootstrapped admin.
func loginAsAdmin(t *testing.T, client *testutil.Client) {
	t.Helper()
	client.LoginAs(t, adminEmail, adminPassword)
}

// createTestProduct creates a product owned by the client's account.
func createTestProduct(t *testing.T, client *testutil.Client, name, uses string) productBody {
	t.Helper()

	resp, err := client.POST("/api/v1/products", map[string]string{
		"name": name,
		"uses": uses,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		Data productBody `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &result)
	return result.Data
}

// errorMessage decodes the error envelope and returns the message.
func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()

	var result struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	testutil.DecodeJSON(t, resp, &result)
	return result.Error.Message
}
