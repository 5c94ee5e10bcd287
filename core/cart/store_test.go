package cart

import (
	"testing"

	"github.com/sellhub/account-market/core/account"
)

func seedAccount(t *testing.T, accounts *account.Store) account.Account {
	t.Helper()
	followers := 1000
	return accounts.Create(account.AccountNew{
		SellerID:      1,
		Platform:      "instagram",
		AccountHandle: "@cart_test",
		Followers:     &followers,
		Price:         100,
		Category:      "lifestyle",
		SellerName:    "Test Seller",
	})
}

func TestAddIsIdempotent(t *testing.T) {
	accounts := account.NewStore()
	s := NewStore(accounts)
	a := seedAccount(t, accounts)

	first := s.Add(1, a.ID)
	second := s.Add(1, a.ID)
	if first.ID != second.ID {
		t.Fatalf("expected the same cart item, got ids %d and %d", first.ID, second.ID)
	}
	if second.Quantity != 1 {
		t.Fatalf("quantity must stay 1, got %d", second.Quantity)
	}

	items := s.ListForUser(1)
	if len(items) != 1 || items[0].AccountID != a.ID {
		t.Fatalf("expected exactly one item for account[%d], got %+v", a.ID, items)
	}
}

func TestRemove(t *testing.T) {
	accounts := account.NewStore()
	s := NewStore(accounts)
	a := seedAccount(t, accounts)

	s.Add(1, a.ID)
	if !s.Remove(1, a.ID) {
		t.Fatal("expected remove to report true")
	}
	if len(s.ListForUser(1)) != 0 {
		t.Fatal("item still present after remove")
	}
	if s.Remove(1, a.ID) {
		t.Fatal("expected second remove to report false")
	}
}

func TestClearLeavesOtherUsersAlone(t *testing.T) {
	accounts := account.NewStore()
	s := NewStore(accounts)
	a := seedAccount(t, accounts)
	b := seedAccount(t, accounts)

	s.Add(1, a.ID)
	s.Add(1, b.ID)
	s.Add(2, a.ID)

	if !s.Clear(1) {
		t.Fatal("clear must always report success")
	}
	if len(s.ListForUser(1)) != 0 {
		t.Fatal("user 1 cart not emptied")
	}
	if len(s.ListForUser(2)) != 1 {
		t.Fatal("user 2 cart was touched")
	}

	// Clearing an already empty cart still succeeds.
	if !s.Clear(1) {
		t.Fatal("clear on empty cart must report success")
	}
}

func TestListDropsDanglingItems(t *testing.T) {
	accounts := account.NewStore()
	s := NewStore(accounts)
	a := seedAccount(t, accounts)
	b := seedAccount(t, accounts)

	s.Add(1, a.ID)
	s.Add(1, b.ID)

	accounts.Delete(a.ID)

	items := s.ListForUser(1)
	if len(items) != 1 || items[0].AccountID != b.ID {
		t.Fatalf("expected the dangling item to be dropped, got %+v", items)
	}
}
