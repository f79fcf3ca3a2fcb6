package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/errs"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/service"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/cache"
)

func TestAuthorCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo := newFakeRepo(testNow)
	repo.st.authors[1] = model.Author{ID: 1, Name: "Frank Herbert"}
	svc := newTestService(repo, service.WithCache(cache.NewRedis(client, time.Minute, "bookstore:")))
	ctx := context.Background()

	a, err := svc.GetAuthor(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Frank Herbert", a.Name)
	require.True(t, mr.Exists("bookstore:authors:1"))

	// served from the cache while the row changes underneath
	repo.mu.Lock()
	repo.st.authors[1] = model.Author{ID: 1, Name: "F. Herbert"}
	repo.mu.Unlock()
	a, err = svc.GetAuthor(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Frank Herbert", a.Name)

	_, err = svc.UpdateAuthor(ctx, 1, model.AuthorRequest{Name: "Frank Patrick Herbert"})
	require.NoError(t, err)
	require.False(t, mr.Exists("bookstore:authors:1"))

	a, err = svc.GetAuthor(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Frank Patrick Herbert", a.Name)

	_, err = svc.GetAuthor(ctx, 2)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.False(t, mr.Exists("bookstore:authors:2"))
}

func TestAuthorCacheDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo := newFakeRepo(testNow)
	repo.st.authors[1] = model.Author{ID: 1, Name: "Frank Herbert"}
	svc := newTestService(repo, service.WithCache(cache.NewRedis(client, time.Minute, "bookstore:")))
	mr.Close()

	a, err := svc.GetAuthor(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Frank Herbert", a.Name)
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	f := newRentalFixture(2)
	f.repo.addSellBook(model.BookToSell{Title: "Emma", Price: 7.5, Stock: 1})
	f.repo.addReservation(model.BookReservation{UserID: f.user.ID, BookID: f.book.ID, Status: model.ReservationWaiting, CreatedAt: testNow})
	f.repo.mu.Lock()
	f.repo.st.overdues[100] = model.Overdue{ID: 100, PenaltyAmount: 15}
	f.repo.st.overdues[101] = model.Overdue{ID: 101, PenaltyAmount: 10, IsPaid: true}
	f.repo.mu.Unlock()
	svc := newTestService(f.repo)

	d, err := svc.Dashboard(asAdmin())
	require.NoError(t, err)
	require.Equal(t, 1, d.BooksToRent)
	require.Equal(t, 1, d.BooksToSell)
	require.Equal(t, 1, d.Users)
	require.Equal(t, 1, d.WaitingReservations)
	require.Equal(t, 15.0, d.UnpaidPenalties)
}
