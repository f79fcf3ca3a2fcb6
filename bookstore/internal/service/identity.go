package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/errs"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/repository"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/auth"
)

const tokenBytes = 32

func newToken() (plain, hash string, err error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}
	plain = hex.EncodeToString(b)
	return plain, hashToken(plain), nil
}

func hashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

func hashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	hash, err := hashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}
	var resp model.AuthResponse
	err = s.repo.InTx(ctx, func(repo repository.Repository) error {
		u, err := repo.CreateUser(ctx, model.User{
			Name:         req.Name,
			Email:        strings.ToLower(req.Email),
			CIN:          req.CIN,
			Phone:        req.Phone,
			Address:      req.Address,
			Role:         model.RoleCustomer,
			PasswordHash: hash,
		})
		if err != nil {
			return err
		}
		token, err := issueToken(ctx, repo, u.ID)
		if err != nil {
			return err
		}
		resp = model.AuthResponse{Token: token, TokenType: "Bearer", User: u}
		return nil
	})
	return resp, err
}

func issueToken(ctx context.Context, repo repository.Repository, userID int64) (string, error) {
	plain, hash, err := newToken()
	if err != nil {
		return "", err
	}
	if err := repo.CreateToken(ctx, userID, hash); err != nil {
		return "", err
	}
	return plain, nil
}

func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	u, err := s.repo.GetUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthResponse{}, errs.ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return model.AuthResponse{}, errs.ErrInvalidCredentials
	}
	token, err := issueToken(ctx, s.repo, u.ID)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{Token: token, TokenType: "Bearer", User: u}, nil
}

// Authenticate resolves a bearer token to its user.
func (s *Service) Authenticate(ctx context.Context, token string) (model.User, error) {
	if token == "" {
		return model.User{}, errs.ErrUnauthorized
	}
	var notBefore time.Time
	if s.policy.TokenTTL > 0 {
		notBefore = s.now().Add(-s.policy.TokenTTL)
	}
	return s.repo.UserByToken(ctx, hashToken(token), notBefore)
}

// Logout revokes every token of the current user.
func (s *Service) Logout(ctx context.Context) error {
	p, err := auth.GetPrincipal(ctx)
	if err != nil {
		return errs.ErrUnauthorized
	}
	n, err := s.repo.DeleteTokens(ctx, p.UserID)
	if err != nil {
		return err
	}
	s.log.Debug("logout", zap.Int64("user_id", p.UserID), zap.Int64("revoked", n))
	return nil
}

// Me aggregates the caller's profile.
func (s *Service) Me(ctx context.Context) (model.Profile, error) {
	p, err := auth.GetPrincipal(ctx)
	if err != nil {
		return model.Profile{}, errs.ErrUnauthorized
	}
	var profile model.Profile
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		profile.User, err = s.repo.GetUser(gctx, p.UserID)
		return err
	})
	g.Go(func() error {
		card, err := s.repo.GetMembershipCardByUser(gctx, p.UserID)
		if errors.Is(err, errs.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		profile.MembershipCard = &card
		return nil
	})
	g.Go(func() error {
		rentals, err := s.repo.ListActiveRentals(gctx, model.RentalFilter{UserID: p.UserID})
		if err != nil {
			return err
		}
		for _, ar := range rentals {
			if ar.Status != model.RentalReturned {
				profile.ActiveRentals++
			}
		}
		return nil
	})
	g.Go(func() error {
		cart, err := s.repo.GetCartByUser(gctx, p.UserID)
		if errors.Is(err, errs.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		items, err := s.repo.ListCartItems(gctx, cart.ID)
		profile.CartItems = len(items)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Profile{}, err
	}
	return profile, nil
}

// EnsureAdmin creates the bootstrap admin account when it does not exist yet.
func (s *Service) EnsureAdmin(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	_, err := s.repo.GetUserByEmail(ctx, strings.ToLower(email))
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.repo.CreateUser(ctx, model.User{
		Name:         name,
		Email:        strings.ToLower(email),
		CIN:          "ADMIN-" + strings.ToUpper(uuid.NewString()[:8]),
		Role:         model.RoleAdmin,
		PasswordHash: hash,
	})
	if err == nil {
		s.log.Info("bootstrap admin created", zap.String("email", email))
	}
	return err
}

func (s *Service) ListUsers(ctx context.Context, page, size int) (model.List[model.User], error) {
	page, size, _ = model.NormalizePage(page, size)
	items, err := s.repo.ListUsers(ctx, page, size)
	if err != nil {
		return model.List[model.User]{}, err
	}
	return model.NewList(items, page, size), nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (model.User, error) {
	if err := authorize(ctx, id); err != nil {
		return model.User{}, err
	}
	return s.repo.GetUser(ctx, id)
}

func (s *Service) CreateUser(ctx context.Context, req model.UserRequest) (model.User, error) {
	if req.Password == "" {
		return model.User{}, errs.Field("password", "is required")
	}
	hash, err := hashPassword(req.Password)
	if err != nil {
		return model.User{}, err
	}
	role := req.Role
	if role == "" {
		role = model.RoleCustomer
	}
	return s.repo.CreateUser(ctx, model.User{
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		CIN:          req.CIN,
		Phone:        req.Phone,
		Address:      req.Address,
		Role:         role,
		PasswordHash: hash,
	})
}

func (s *Service) UpdateUser(ctx context.Context, id int64, req model.UserRequest) (model.User, error) {
	current, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	u := model.User{
		Name:    req.Name,
		Email:   strings.ToLower(req.Email),
		CIN:     req.CIN,
		Phone:   req.Phone,
		Address: req.Address,
		Role:    req.Role,
	}
	if u.Role == "" {
		u.Role = current.Role
	}
	if req.Password != "" {
		if u.PasswordHash, err = hashPassword(req.Password); err != nil {
			return model.User{}, err
		}
	}
	return s.repo.UpdateUser(ctx, id, u)
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return s.repo.DeleteUser(ctx, id)
}

func (s *Service) ListMembershipCards(ctx context.Context, page, size int) (model.List[model.MembershipCard], error) {
	page, size, _ = model.NormalizePage(page, size)
	items, err := s.repo.ListMembershipCards(ctx, page, size)
	if err != nil {
		return model.List[model.MembershipCard]{}, err
	}
	return model.NewList(items, page, size), nil
}

func (s *Service) GetMembershipCard(ctx context.Context, id int64) (model.MembershipCard, error) {
	card, err := s.repo.GetMembershipCard(ctx, id)
	if err != nil {
		return model.MembershipCard{}, err
	}
	if err := authorize(ctx, card.UserID); err != nil {
		return model.MembershipCard{}, err
	}
	return card, nil
}

func newCardNumber() string {
	return "MC-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

// newCard builds a card for issue, numbering it when the request has no number.
func (s *Service) newCard(req model.MembershipCardRequest) model.MembershipCard {
	c := model.MembershipCard{
		UserID:     req.UserID,
		CardNumber: req.CardNumber,
		ValidFrom:  s.now().UTC(),
		ValidUntil: req.ValidUntil.Time,
	}
	if from := req.ValidFrom.Ptr(); from != nil {
		c.ValidFrom = *from
	}
	if c.CardNumber == "" {
		c.CardNumber = newCardNumber()
	}
	return c
}

// CreateMembershipCard issues a card and sets the owner's member flag from its validity.
func (s *Service) CreateMembershipCard(ctx context.Context, req model.MembershipCardRequest) (model.MembershipCard, error) {
	c := s.newCard(req)
	if c.ValidUntil.Before(c.ValidFrom) {
		return model.MembershipCard{}, errs.Field("valid_until", "must not be before valid_from")
	}
	var card model.MembershipCard
	err := s.repo.InTx(ctx, func(repo repository.Repository) (err error) {
		if card, err = repo.CreateMembershipCard(ctx, c); err != nil {
			return err
		}
		return repo.SetMembership(ctx, card.UserID, !card.Expired(s.now()))
	})
	return card, err
}

// UpdateMembershipCard changes a card's validity. The card number and start
// date are kept when the request leaves them empty.
func (s *Service) UpdateMembershipCard(ctx context.Context, id int64, req model.MembershipCardRequest) (model.MembershipCard, error) {
	var card model.MembershipCard
	err := s.repo.InTx(ctx, func(repo repository.Repository) error {
		c, err := repo.GetMembershipCard(ctx, id)
		if err != nil {
			return err
		}
		if req.CardNumber != "" {
			c.CardNumber = req.CardNumber
		}
		if from := req.ValidFrom.Ptr(); from != nil {
			c.ValidFrom = *from
		}
		c.ValidUntil = req.ValidUntil.Time
		if c.ValidUntil.Before(c.ValidFrom) {
			return errs.Field("valid_until", "must not be before valid_from")
		}
		if card, err = repo.UpdateMembershipCard(ctx, id, c); err != nil {
			return err
		}
		return repo.SetMembership(ctx, card.UserID, !card.Expired(s.now()))
	})
	return card, err
}

func (s *Service) DeleteMembershipCard(ctx context.Context, id int64) error {
	return s.repo.InTx(ctx, func(repo repository.Repository) error {
		card, err := repo.GetMembershipCard(ctx, id)
		if err != nil {
			return err
		}
		if err := repo.DeleteMembershipCard(ctx, id); err != nil {
			return err
		}
		return repo.SetMembership(ctx, card.UserID, false)
	})
}

// CheckExpiredMemberships clears the member flag of every owner whose card lapsed.
func (s *Service) CheckExpiredMemberships(ctx context.Context) (int64, error) {
	n, err := s.repo.ExpireMemberships(ctx, s.now())
	if err != nil {
		return 0, err
	}
	s.log.Info("memberships expired", zap.Int64("count", n))
	return n, nil
}
