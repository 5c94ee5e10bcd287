package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/sellhub/account-market/api"
	"github.com/sellhub/account-market/core/account"
	"github.com/sellhub/account-market/core/cart"
	"github.com/sellhub/account-market/core/order"
	"github.com/sellhub/account-market/core/user"
	"github.com/sellhub/account-market/random"
	"github.com/sirupsen/logrus"
)

// TestEnv runs the full API mux over httptest with fresh stores and a
// cookie-aware client, so tests exercise the same middleware chain as
// production.
type TestEnv struct {
	Server *httptest.Server
	URL    string

	Accounts *account.Store
	Carts    *cart.Store
	Users    *user.Store
	Orders   *order.Store

	UserName string
	UserPass string

	client *http.Client
}

func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	accounts := account.NewStore()
	carts := cart.NewStore(accounts)
	users := user.NewStore()
	orders := order.NewStore()

	session := scs.New()
	session.Lifetime = time.Hour

	mux := api.APIMux(api.APIConfig{
		Log:      logger,
		Session:  session,
		Accounts: accounts,
		Carts:    carts,
		Users:    users,
		Orders:   orders,
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("building cookie jar: %v", err)
	}
	client := srv.Client()
	client.Jar = jar

	env := &TestEnv{
		Server:   srv,
		URL:      srv.URL,
		Accounts: accounts,
		Carts:    carts,
		Users:    users,
		Orders:   orders,
		UserName: "user_" + random.String(8),
		UserPass: random.String(16),
		client:   client,
	}

	if _, err := users.Create(user.UserNew{
		Username: env.UserName,
		Email:    env.UserName + "@example.com",
		Password: env.UserPass,
	}); err != nil {
		t.Fatalf("creating test user: %v", err)
	}

	return env
}

func (e *TestEnv) Client() *http.Client { return e.client }

func (e *TestEnv) Login(t *testing.T) {
	t.Helper()

	body := map[string]string{"username": e.UserName, "password": e.UserPass}
	w := e.postJSON(t, "/api/auth/login", body)
	defer w.Body.Close()

	if w.StatusCode != http.StatusOK {
		t.Fatalf("can't login: status code %s", w.Status)
	}
}

func (e *TestEnv) Logout(t *testing.T) {
	t.Helper()

	w := e.postJSON(t, "/api/auth/logout", nil)
	defer w.Body.Close()

	if w.StatusCode != http.StatusNoContent {
		t.Fatalf("can't logout: status code %s", w.Status)
	}
}

func (e *TestEnv) postJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}

	r, err := http.NewRequest(http.MethodPost, e.URL+path, &buf)
	if err != nil {
		t.Fatal(err)
	}
	r.Header.Set("Content-Type", "application/json")

	w, err := e.client.Do(r)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func jsonBody(b []byte) io.Reader {
	return bytes.NewReader(b)
}

func (e *TestEnv) do(t *testing.T, method, path string) *http.Response {
	t.Helper()

	r, err := http.NewRequest(method, e.URL+path, nil)
	if err != nil {
		t.Fatal(err)
	}

	w, err := e.client.Do(r)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

// newAccountBody builds a valid create payload with a unique handle.
func newAccountBody(platform string, followers int, price float64) map[string]any {
	return map[string]any{
		"sellerId":      1,
		"platform":      platform,
		"accountHandle": "@" + random.String(10),
		"followers":     followers,
		"price":         price,
		"category":      "lifestyle",
		"sellerName":    "Test Seller",
	}
}

func (e *TestEnv) createAccountOK(t *testing.T, body map[string]any) account.Account {
	t.Helper()

	w := e.postJSON(t, "/api/accounts", body)
	defer w.Body.Close()

	if w.StatusCode != http.StatusCreated {
		t.Fatalf("can't create account: status code %s", w.Status)
	}

	var a account.Account
	if err := json.NewDecoder(w.Body).Decode(&a); err != nil {
		t.Fatalf("cannot unmarshal created account: %v", err)
	}
	return a
}

func (e *TestEnv) addToCartOK(t *testing.T, userID, accountID int) cart.Item {
	t.Helper()

	w := e.postJSON(t, "/api/cart", map[string]int{"userId": userID, "accountId": accountID})
	defer w.Body.Close()

	if w.StatusCode != http.StatusCreated {
		t.Fatalf("can't add to cart: status code %s", w.Status)
	}

	var it cart.Item
	if err := json.NewDecoder(w.Body).Decode(&it); err != nil {
		t.Fatalf("cannot unmarshal cart item: %v", err)
	}
	return it
}

func (e *TestEnv) listCartOK(t *testing.T, userID int) []cart.JoinedItem {
	t.Helper()

	w := e.do(t, http.MethodGet, fmt.Sprintf("/api/cart/%d", userID))
	defer w.Body.Close()

	if w.StatusCode != http.StatusOK {
		t.Fatalf("can't list cart: status code %s", w.Status)
	}

	var items []cart.JoinedItem
	if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
		t.Fatalf("cannot unmarshal cart items: %v", err)
	}
	return items
}
