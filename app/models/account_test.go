package models

import "testing"

func TestAccountValidate(t *testing.T) {
	account := &Account{Name: "Ada", Email: "ada@example.com"}
	if err := account.Validate(); err != nil {
		t.Fatalf("expected valid account, got %v", err)
	}

	invalid := []Account{
		{Name: "", Email: "ada@example.com"},
		{Name: "Ada", Email: "not-an-email"},
		{Name: "Ada", Email: ""},
	}
	for _, a := range invalid {
		if err := a.Validate(); err == nil {
			t.Fatalf("expected validation error for %+v", a)
		}
	}
}

func TestAccountQuotaMB(t *testing.T) {
	account := &Account{}
	if got := account.QuotaMB(); got != 0 {
		t.Fatalf("expected NULL quota to read as 0, got %d", got)
	}

	quota := int64(512)
	account.StorageQuotaMB = &quota
	if got := account.QuotaMB(); got != 512 {
		t.Fatalf("expected quota 512, got %d", got)
	}
}
