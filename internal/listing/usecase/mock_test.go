package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"property-listings/internal/listing"
	"property-listings/internal/listing/query"
	repo "property-listings/internal/listing/repository"
	"property-listings/internal/listing/repository/memory"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// countingRepo wraps a real repository and counts full-collection loads.
type countingRepo struct {
	repo.Repository
	fullLoads int
	listErr   error
}

func (r *countingRepo) ListListings(ctx context.Context, opt repo.ListListingsOptions) ([]listing.Listing, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	if opt.UserID == "" && opt.Limit == 0 {
		r.fullLoads++
	}
	return r.Repository.ListListings(ctx, opt)
}

var errStore = errors.New("store unavailable")

func newTestUseCase(t *testing.T, cacheSize int) (*implUseCase, *countingRepo) {
	t.Helper()
	inner, err := memory.New(&mockLogger{}, nil)
	if err != nil {
		t.Fatalf("memory.New: %v", err)
	}
	engine, err := query.NewEngine(cacheSize)
	if err != nil {
		t.Fatalf("query.NewEngine: %v", err)
	}
	r := &countingRepo{Repository: inner}
	return New(r, engine, 0, &mockLogger{}).(*implUseCase), r
}

func mustCreate(t *testing.T, uc *implUseCase, owner, title string, price float64, status string) listing.Listing {
	t.Helper()
	out, err := uc.Create(context.Background(), scopeOf(owner), listing.CreateListingInput{
		Title:    title,
		Location: fmt.Sprintf("%s street", title),
		Price:    price,
		Status:   status,
	})
	if err != nil {
		t.Fatalf("Create(%q): %v", title, err)
	}
	return out.Listing
}
