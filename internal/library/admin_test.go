// ABOUTME: Tests for admin service calls and the concurrent dashboard load

package library

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/client"
)

// fakeAdmin answers admin requests from canned handlers keyed by endpoint
type fakeAdmin struct {
	mu            sync.Mutex
	authenticated bool
	get           map[string]func(out any) error
	calls         []string
}

func (f *fakeAdmin) IsAuthenticated() bool { return f.authenticated }

func (f *fakeAdmin) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAdmin) AdminGet(_ context.Context, endpoint string, out any) error {
	f.record("GET " + endpoint)
	if h, ok := f.get[endpoint]; ok {
		return h(out)
	}
	return nil
}

func (f *fakeAdmin) AdminPut(_ context.Context, endpoint string, in, _ any) error {
	body := in.(map[string]string)
	f.record("PUT " + endpoint + " " + body["role"])
	return nil
}

func (f *fakeAdmin) AdminDelete(_ context.Context, endpoint string) error {
	f.record("DELETE " + endpoint)
	return nil
}

func TestLoadDashboard_AllSections(t *testing.T) {
	admin := &fakeAdmin{
		authenticated: true,
		get: map[string]func(out any) error{
			"stats": func(out any) error {
				*out.(*Stats) = Stats{TotalUsers: 2, TotalBooks: 3, TotalQuotes: 4}
				return nil
			},
			"users": func(out any) error {
				*out.(*[]User) = []User{{ID: 1, Username: "root", Role: "admin"}}
				return nil
			},
			"books": func(out any) error {
				*out.(*[]Book) = []Book{{ID: 1}, {ID: 2}}
				return nil
			},
			"quotes": func(out any) error {
				*out.(*[]Quote) = []Quote{{ID: 5}}
				return nil
			},
		},
	}

	d, err := NewAdminService(admin).LoadDashboard(context.Background())
	if err != nil {
		t.Fatalf("LoadDashboard error: %v", err)
	}
	if d.Err() != nil {
		t.Errorf("expected no section errors, got %v", d.Err())
	}
	if d.Stats.TotalQuotes != 4 || len(d.Users) != 1 || len(d.Books) != 2 || len(d.Quotes) != 1 {
		t.Errorf("unexpected dashboard %+v", d)
	}
	if len(admin.calls) != 4 {
		t.Errorf("expected four requests, got %v", admin.calls)
	}
}

func TestLoadDashboard_PartialFailure(t *testing.T) {
	usersErr := errors.New("users endpoint down")
	admin := &fakeAdmin{
		authenticated: true,
		get: map[string]func(out any) error{
			"stats": func(out any) error {
				*out.(*Stats) = Stats{TotalBooks: 7}
				return nil
			},
			"users": func(out any) error { return usersErr },
			"quotes": func(out any) error {
				return &client.APIError{StatusCode: 500}
			},
		},
	}

	d, err := NewAdminService(admin).LoadDashboard(context.Background())
	if err != nil {
		t.Fatalf("LoadDashboard error: %v", err)
	}
	if d.Stats.TotalBooks != 7 {
		t.Errorf("expected stats to load despite other failures, got %+v", d.Stats)
	}
	if d.Users == nil || len(d.Users) != 0 {
		t.Errorf("expected empty users, got %v", d.Users)
	}
	if d.Quotes == nil || len(d.Quotes) != 0 {
		t.Errorf("expected empty quotes, got %v", d.Quotes)
	}
	if !errors.Is(d.Errors[SectionUsers], usersErr) {
		t.Errorf("expected users error recorded, got %v", d.Errors[SectionUsers])
	}
	if !errors.Is(d.Err(), client.ErrServer) {
		t.Errorf("expected joined error to include server error, got %v", d.Err())
	}
	if _, ok := d.Errors[SectionBooks]; ok {
		t.Error("books section should not have failed")
	}
}

func TestLoadDashboard_RequiresSession(t *testing.T) {
	admin := &fakeAdmin{}
	if _, err := NewAdminService(admin).LoadDashboard(context.Background()); !errors.Is(err, client.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if len(admin.calls) != 0 {
		t.Errorf("expected no requests, got %v", admin.calls)
	}
}

func TestAdminService_Mutations(t *testing.T) {
	admin := &fakeAdmin{authenticated: true}
	svc := NewAdminService(admin)
	ctx := context.Background()

	if err := svc.UpdateUserRole(ctx, 3, "Admin"); err != nil {
		t.Fatalf("UpdateUserRole error: %v", err)
	}
	if err := svc.UpdateUserRole(ctx, 3, "superuser"); !errors.Is(err, client.ErrValidation) {
		t.Errorf("expected ErrValidation for unknown role, got %v", err)
	}
	if err := svc.DeleteUser(ctx, 3); err != nil {
		t.Fatalf("DeleteUser error: %v", err)
	}
	if err := svc.DeleteBook(ctx, 4); err != nil {
		t.Fatalf("DeleteBook error: %v", err)
	}
	if err := svc.DeleteQuote(ctx, 5); err != nil {
		t.Fatalf("DeleteQuote error: %v", err)
	}

	want := "PUT users/3/role admin|DELETE users/3|DELETE books/4|DELETE quotes/5"
	if got := strings.Join(admin.calls, "|"); got != want {
		t.Errorf("calls = %q, want %q", got, want)
	}
}
