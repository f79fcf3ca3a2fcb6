package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/errs"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
)

func TestRegisterLoginLogout(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo(testNow)
	svc := newTestService(repo)
	ctx := context.Background()

	reg, err := svc.Register(ctx, model.RegisterRequest{
		Name:     "Amina",
		Email:    "Amina@Example.com",
		CIN:      "AB123",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.Equal(t, "Bearer", reg.TokenType)
	require.Len(t, reg.Token, 64)
	require.Equal(t, "amina@example.com", reg.User.Email)
	require.Equal(t, model.RoleCustomer, reg.User.Role)
	require.NotEqual(t, "secret123", reg.User.PasswordHash)

	u, err := svc.Authenticate(ctx, reg.Token)
	require.NoError(t, err)
	require.Equal(t, reg.User.ID, u.ID)

	_, err = svc.Login(ctx, model.LoginRequest{Email: "amina@example.com", Password: "wrong"})
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	_, err = svc.Login(ctx, model.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)

	login, err := svc.Login(ctx, model.LoginRequest{Email: "AMINA@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotEqual(t, reg.Token, login.Token)

	require.NoError(t, svc.Logout(asCustomer(u.ID)))
	_, err = svc.Authenticate(ctx, reg.Token)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	_, err = svc.Authenticate(ctx, login.Token)
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	require.ErrorIs(t, svc.Logout(ctx), errs.ErrUnauthorized)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo(testNow)
	svc := newTestService(repo)
	req := model.RegisterRequest{Name: "Amina", Email: "amina@example.com", CIN: "AB123", Password: "secret123"}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	req.CIN = "ZZ999"
	_, err = svc.Register(context.Background(), req)
	var fe errs.FieldErrors
	require.ErrorAs(t, err, &fe)
	require.Contains(t, fe, "email")
	require.Len(t, repo.snapshot().tokens, 1)
}

func TestEnsureAdmin(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo(testNow)
	svc := newTestService(repo)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "Admin", "admin@library.local", "changeme"))
	require.NoError(t, svc.EnsureAdmin(ctx, "Admin", "admin@library.local", "changeme"))
	require.NoError(t, svc.EnsureAdmin(ctx, "Admin", "", ""))

	users := repo.snapshot().users
	require.Len(t, users, 1)
	for _, u := range users {
		require.Equal(t, model.RoleAdmin, u.Role)
	}

	resp, err := svc.Login(ctx, model.LoginRequest{Email: "admin@library.local", Password: "changeme"})
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, resp.User.Role)
}

func TestMembershipCards(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo(testNow)
	user := repo.addUser(model.User{Name: "Amina", Email: "amina@example.com", CIN: "AB123", Role: model.RoleCustomer})
	svc := newTestService(repo)

	_, err := svc.CreateMembershipCard(asAdmin(), model.MembershipCardRequest{
		UserID:     user.ID,
		ValidFrom:  &model.Date{Time: testNow},
		ValidUntil: model.Date{Time: testNow.AddDate(0, 0, -1)},
	})
	var fe errs.FieldErrors
	require.ErrorAs(t, err, &fe)
	require.Contains(t, fe, "valid_until")

	card, err := svc.CreateMembershipCard(asAdmin(), model.MembershipCardRequest{
		UserID:     user.ID,
		ValidUntil: model.Date{Time: testNow.AddDate(0, 0, 10)},
	})
	require.NoError(t, err)
	require.Regexp(t, `^MC-[0-9A-F]{12}$`, card.CardNumber)
	require.Equal(t, testNow, card.ValidFrom)
	require.True(t, repo.snapshot().users[user.ID].IsMember)

	n, err := svc.CheckExpiredMemberships(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)

	repo.now = testNow.AddDate(0, 0, 11)
	n, err = svc.CheckExpiredMemberships(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	require.False(t, repo.snapshot().users[user.ID].IsMember)
}

func TestUpdateMembershipCard(t *testing.T) {
	t.Parallel()

	validFrom := testNow.AddDate(0, -1, 0)
	tests := []struct {
		name         string
		id           func(card model.MembershipCard) int64
		req          func(userID int64) model.MembershipCardRequest
		wantNumber   string
		wantFrom     time.Time
		wantUntil    time.Time
		wantMember   bool
		wantErr      error
		wantFieldErr string
	}{
		{
			name: "only valid_until keeps number and start",
			req: func(userID int64) model.MembershipCardRequest {
				return model.MembershipCardRequest{UserID: userID, ValidUntil: model.Date{Time: testNow.AddDate(1, 0, 0)}}
			},
			wantNumber: "MC-EE1D8A0007A5",
			wantFrom:   validFrom,
			wantUntil:  testNow.AddDate(1, 0, 0),
			wantMember: true,
		},
		{
			name: "explicit number and start",
			req: func(userID int64) model.MembershipCardRequest {
				return model.MembershipCardRequest{
					UserID:     userID,
					CardNumber: "MC-RENEWED",
					ValidFrom:  &model.Date{Time: testNow},
					ValidUntil: model.Date{Time: testNow.AddDate(0, 6, 0)},
				}
			},
			wantNumber: "MC-RENEWED",
			wantFrom:   testNow,
			wantUntil:  testNow.AddDate(0, 6, 0),
			wantMember: true,
		},
		{
			name: "lapsed validity clears membership",
			req: func(userID int64) model.MembershipCardRequest {
				return model.MembershipCardRequest{UserID: userID, ValidUntil: model.Date{Time: testNow.AddDate(0, 0, -1)}}
			},
			wantNumber: "MC-EE1D8A0007A5",
			wantFrom:   validFrom,
			wantUntil:  testNow.AddDate(0, 0, -1),
			wantMember: false,
		},
		{
			name: "valid_until before stored start",
			req: func(userID int64) model.MembershipCardRequest {
				return model.MembershipCardRequest{UserID: userID, ValidUntil: model.Date{Time: validFrom.AddDate(0, 0, -1)}}
			},
			wantFieldErr: "valid_until",
		},
		{
			name: "unknown card",
			id:   func(card model.MembershipCard) int64 { return card.ID + 100 },
			req: func(userID int64) model.MembershipCardRequest {
				return model.MembershipCardRequest{UserID: userID, ValidUntil: model.Date{Time: testNow.AddDate(1, 0, 0)}}
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := newFakeRepo(testNow)
			user := repo.addUser(model.User{Name: "Amina", Email: "amina@example.com", CIN: "AB123", Role: model.RoleCustomer, IsMember: true})
			card := repo.addCard(model.MembershipCard{
				UserID:     user.ID,
				CardNumber: "MC-EE1D8A0007A5",
				ValidFrom:  validFrom,
				ValidUntil: testNow.AddDate(0, 0, 5),
			})
			svc := newTestService(repo)

			id := card.ID
			if tt.id != nil {
				id = tt.id(card)
			}
			got, err := svc.UpdateMembershipCard(asAdmin(), id, tt.req(user.ID))
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				require.Equal(t, card, repo.snapshot().cards[card.ID])
				return
			case tt.wantFieldErr != "":
				var fe errs.FieldErrors
				require.ErrorAs(t, err, &fe)
				require.Contains(t, fe, tt.wantFieldErr)
				require.Equal(t, card, repo.snapshot().cards[card.ID])
				return
			}
			require.NoError(t, err)
			require.Equal(t, card.ID, got.ID)
			require.Equal(t, tt.wantNumber, got.CardNumber)
			require.Equal(t, tt.wantFrom, got.ValidFrom)
			require.Equal(t, tt.wantUntil, got.ValidUntil)
			require.Equal(t, got, repo.snapshot().cards[card.ID])
			require.Equal(t, tt.wantMember, repo.snapshot().users[user.ID].IsMember)

			// the stored number still reserves
			byNumber, err := repo.GetMembershipCardByNumber(context.Background(), tt.wantNumber)
			require.NoError(t, err)
			require.Equal(t, card.ID, byNumber.ID)
		})
	}
}
