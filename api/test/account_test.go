package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sellhub/account-market/core/account"
)

func TestAccountLifecycle(t *testing.T) {
	env := NewTestEnv(t)

	body := newAccountBody("twitter", 5000, 0)
	// The storefront sends decimal columns as strings.
	body["price"] = "100.00"
	body["engagement"] = "3.2"
	created := env.createAccountOK(t, body)

	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("expected server-assigned id and timestamp, got %+v", created)
	}
	if created.Platform != "twitter" || created.Followers != 5000 || created.Price != 100.00 {
		t.Fatalf("created account does not echo the payload: %+v", created)
	}
	if created.Engagement == nil || *created.Engagement != 3.2 {
		t.Fatalf("string engagement not decoded: %+v", created.Engagement)
	}
	if created.Status != account.Available {
		t.Fatalf("expected default status %q, got %q", account.Available, created.Status)
	}

	w := env.do(t, http.MethodGet, fmt.Sprintf("/api/accounts/%d", created.ID))
	defer w.Body.Close()
	if w.StatusCode != http.StatusOK {
		t.Fatalf("can't fetch account: status code %s", w.Status)
	}

	var fetched account.Account
	if err := json.NewDecoder(w.Body).Decode(&fetched); err != nil {
		t.Fatalf("cannot unmarshal account: %v", err)
	}
	if diff := cmp.Diff(created, fetched); diff != "" {
		t.Fatalf("GET returned a different record (-created +fetched):\n%s", diff)
	}

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/accounts/%d", created.ID))
	w.Body.Close()
	if w.StatusCode != http.StatusNoContent {
		t.Fatalf("can't delete account: status code %s", w.Status)
	}

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/accounts/%d", created.ID))
	w.Body.Close()
	if w.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %s", w.Status)
	}

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/accounts/%d", created.ID))
	w.Body.Close()
	if w.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %s", w.Status)
	}
}

func TestAccountValidation(t *testing.T) {
	env := NewTestEnv(t)

	// Missing nearly everything.
	w := env.postJSON(t, "/api/accounts", map[string]any{"platform": "twitter"})
	defer w.Body.Close()

	if w.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload, got %s", w.Status)
	}

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("cannot unmarshal validation response: %v", err)
	}
	for _, f := range []string{"accountHandle", "followers", "price", "category", "sellerName"} {
		if _, ok := resp.Fields[f]; !ok {
			t.Errorf("missing validation message for %q: %v", f, resp.Fields)
		}
	}

	// A negative price fails the range check.
	body := newAccountBody("twitter", 100, 100)
	body["price"] = -5.0
	w2 := env.postJSON(t, "/api/accounts", body)
	w2.Body.Close()
	if w2.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative price, got %s", w2.Status)
	}
}

func TestAccountUpdate(t *testing.T) {
	env := NewTestEnv(t)
	created := env.createAccountOK(t, newAccountBody("instagram", 1000, 50))

	// Server-owned fields in the body are tolerated and ignored; the
	// string form of decimal columns is accepted.
	up := map[string]any{
		"id":        created.ID + 100,
		"createdAt": "2020-05-01T00:00:00Z",
		"price":     "75.5",
	}
	b, err := json.Marshal(up)
	if err != nil {
		t.Fatal(err)
	}
	r, err := http.NewRequest(http.MethodPut, env.URL+fmt.Sprintf("/api/accounts/%d", created.ID), jsonBody(b))
	if err != nil {
		t.Fatal(err)
	}
	r.Header.Set("Content-Type", "application/json")
	w, err := env.Client().Do(r)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Body.Close()

	if w.StatusCode != http.StatusOK {
		t.Fatalf("can't update account: status code %s", w.Status)
	}

	var updated account.Account
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("cannot unmarshal account: %v", err)
	}

	want := created
	want.Price = 75.5
	if diff := cmp.Diff(want, updated); diff != "" {
		t.Fatalf("update changed more than price (-want +got):\n%s", diff)
	}

	// Updating an unknown id is a 404.
	r, err = http.NewRequest(http.MethodPut, env.URL+"/api/accounts/999999", jsonBody(b))
	if err != nil {
		t.Fatal(err)
	}
	w2, err := env.Client().Do(r)
	if err != nil {
		t.Fatal(err)
	}
	w2.Body.Close()
	if w2.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %s", w2.Status)
	}
}

func TestAccountListFilters(t *testing.T) {
	env := NewTestEnv(t)

	ig := env.createAccountOK(t, newAccountBody("instagram", 9000, 100))
	env.createAccountOK(t, newAccountBody("twitter", 9000, 100))
	soldBody := newAccountBody("instagram", 9000, 100)
	soldBody["status"] = "sold"
	env.createAccountOK(t, soldBody)

	w := env.do(t, http.MethodGet, "/api/accounts?platform=instagram")
	defer w.Body.Close()
	if w.StatusCode != http.StatusOK {
		t.Fatalf("can't list accounts: status code %s", w.Status)
	}

	var got []account.Account
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("cannot unmarshal accounts: %v", err)
	}
	if len(got) != 1 || got[0].ID != ig.ID {
		t.Fatalf("expected only the available instagram account, got %+v", got)
	}
}

func TestAccountListSort(t *testing.T) {
	env := NewTestEnv(t)

	env.createAccountOK(t, newAccountBody("instagram", 1000, 300))
	env.createAccountOK(t, newAccountBody("instagram", 1000, 100))
	env.createAccountOK(t, newAccountBody("instagram", 1000, 200))

	w := env.do(t, http.MethodGet, "/api/accounts?sortBy=price&sortOrder=desc")
	defer w.Body.Close()
	if w.StatusCode != http.StatusOK {
		t.Fatalf("can't list accounts: status code %s", w.Status)
	}

	var got []account.Account
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("cannot unmarshal accounts: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Price > got[i-1].Price {
			t.Fatalf("descending price order violated: %+v", got)
		}
	}

	// Sort keys are a closed set.
	w2 := env.do(t, http.MethodGet, "/api/accounts?sortBy=sellerName")
	w2.Body.Close()
	if w2.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown sort key, got %s", w2.Status)
	}
}
