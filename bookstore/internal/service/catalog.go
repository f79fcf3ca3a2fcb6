package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/cache"
)

const (
	authorsCachePrefix    = "authors:"
	categoriesCachePrefix = "categories:"
)

// cached serves key from the cache, filling it from load on a miss.
func cached[T any](ctx context.Context, s *Service, key string, load func() (T, error)) (T, error) {
	var v T
	if err := s.cache.Get(ctx, key, &v); err == nil {
		return v, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.log.Warn("cache get", zap.String("key", key), zap.Error(err))
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	if err := s.cache.Set(ctx, key, v); err != nil {
		s.log.Warn("cache set", zap.String("key", key), zap.Error(err))
	}
	return v, nil
}

func (s *Service) invalidate(ctx context.Context, prefix string) {
	if err := s.cache.DeletePrefix(ctx, prefix); err != nil {
		s.log.Warn("cache invalidate", zap.String("prefix", prefix), zap.Error(err))
	}
}

func (s *Service) ListAuthors(ctx context.Context, page, size int) (model.List[model.Author], error) {
	page, size, _ = model.NormalizePage(page, size)
	key := fmt.Sprintf("%slist:%d:%d", authorsCachePrefix, page, size)
	items, err := cached(ctx, s, key, func() ([]model.Author, error) {
		return s.repo.ListAuthors(ctx, page, size)
	})
	if err != nil {
		return model.List[model.Author]{}, err
	}
	return model.NewList(items, page, size), nil
}

func (s *Service) GetAuthor(ctx context.Context, id int64) (model.Author, error) {
	return cached(ctx, s, fmt.Sprintf("%s%d", authorsCachePrefix, id), func() (model.Author, error) {
		return s.repo.GetAuthor(ctx, id)
	})
}

func (s *Service) CreateAuthor(ctx context.Context, req model.AuthorRequest) (model.Author, error) {
	a, err := s.repo.CreateAuthor(ctx, req.Author())
	if err != nil {
		return model.Author{}, err
	}
	s.invalidate(ctx, authorsCachePrefix)
	return a, nil
}

func (s *Service) UpdateAuthor(ctx context.Context, id int64, req model.AuthorRequest) (model.Author, error) {
	a, err := s.repo.UpdateAuthor(ctx, id, req.Author())
	if err != nil {
		return model.Author{}, err
	}
	s.invalidate(ctx, authorsCachePrefix)
	return a, nil
}

func (s *Service) DeleteAuthor(ctx context.Context, id int64) error {
	if err := s.repo.DeleteAuthor(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, authorsCachePrefix)
	return nil
}

func (s *Service) ListCategories(ctx context.Context, page, size int) (model.List[model.Category], error) {
	page, size, _ = model.NormalizePage(page, size)
	key := fmt.Sprintf("%slist:%d:%d", categoriesCachePrefix, page, size)
	items, err := cached(ctx, s, key, func() ([]model.Category, error) {
		return s.repo.ListCategories(ctx, page, size)
	})
	if err != nil {
		return model.List[model.Category]{}, err
	}
	return model.NewList(items, page, size), nil
}

func (s *Service) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	return cached(ctx, s, fmt.Sprintf("%s%d", categoriesCachePrefix, id), func() (model.Category, error) {
		return s.repo.GetCategory(ctx, id)
	})
}

func (s *Service) CreateCategory(ctx context.Context, req model.CategoryRequest) (model.Category, error) {
	c, err := s.repo.CreateCategory(ctx, model.Category{Name: req.Name, Description: req.Description})
	if err != nil {
		return model.Category{}, err
	}
	s.invalidate(ctx, categoriesCachePrefix)
	return c, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, req model.CategoryRequest) (model.Category, error) {
	c, err := s.repo.UpdateCategory(ctx, id, model.Category{Name: req.Name, Description: req.Description})
	if err != nil {
		return model.Category{}, err
	}
	s.invalidate(ctx, categoriesCachePrefix)
	return c, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, categoriesCachePrefix)
	return nil
}

func (s *Service) ListBooksToRent(ctx context.Context, f model.CatalogFilter) (model.List[model.BookToRent], error) {
	f.Page, f.Size, _ = model.NormalizePage(f.Page, f.Size)
	items, err := s.repo.ListBooksToRent(ctx, f)
	if err != nil {
		return model.List[model.BookToRent]{}, err
	}
	return model.NewList(items, f.Page, f.Size), nil
}

func (s *Service) GetBookToRent(ctx context.Context, id int64) (model.BookToRent, error) {
	return s.repo.GetBookToRent(ctx, id)
}

func (s *Service) CreateBookToRent(ctx context.Context, req model.BookToRentRequest) (model.BookToRent, error) {
	return s.repo.CreateBookToRent(ctx, req.Book())
}

func (s *Service) UpdateBookToRent(ctx context.Context, id int64, req model.BookToRentRequest) (model.BookToRent, error) {
	return s.repo.UpdateBookToRent(ctx, id, req.Book())
}

func (s *Service) DeleteBookToRent(ctx context.Context, id int64) error {
	return s.repo.DeleteBookToRent(ctx, id)
}

func (s *Service) ListBooksToSell(ctx context.Context, f model.CatalogFilter) (model.List[model.BookToSell], error) {
	f.Page, f.Size, _ = model.NormalizePage(f.Page, f.Size)
	items, err := s.repo.ListBooksToSell(ctx, f)
	if err != nil {
		return model.List[model.BookToSell]{}, err
	}
	return model.NewList(items, f.Page, f.Size), nil
}

func (s *Service) GetBookToSell(ctx context.Context, id int64) (model.BookToSell, error) {
	return s.repo.GetBookToSell(ctx, id)
}

func (s *Service) CreateBookToSell(ctx context.Context, req model.BookToSellRequest) (model.BookToSell, error) {
	return s.repo.CreateBookToSell(ctx, req.Book())
}

func (s *Service) UpdateBookToSell(ctx context.Context, id int64, req model.BookToSellRequest) (model.BookToSell, error) {
	return s.repo.UpdateBookToSell(ctx, id, req.Book())
}

func (s *Service) DeleteBookToSell(ctx context.Context, id int64) error {
	return s.repo.DeleteBookToSell(ctx, id)
}

// booksBy lists both catalogs for one author or category concurrently.
func (s *Service) booksBy(ctx context.Context, f model.CatalogFilter) (model.BooksByOwner, error) {
	var out model.BooksByOwner
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.BooksToRent, err = s.repo.ListBooksToRent(gctx, f)
		return err
	})
	g.Go(func() (err error) {
		out.BooksToSell, err = s.repo.ListBooksToSell(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.BooksByOwner{}, err
	}
	if out.BooksToRent == nil {
		out.BooksToRent = []model.BookToRent{}
	}
	if out.BooksToSell == nil {
		out.BooksToSell = []model.BookToSell{}
	}
	return out, nil
}

func (s *Service) AuthorBooks(ctx context.Context, authorID int64) (model.BooksByOwner, error) {
	if _, err := s.GetAuthor(ctx, authorID); err != nil {
		return model.BooksByOwner{}, err
	}
	return s.booksBy(ctx, model.CatalogFilter{AuthorID: authorID})
}

func (s *Service) CategoryBooks(ctx context.Context, categoryID int64) (model.BooksByOwner, error) {
	if _, err := s.GetCategory(ctx, categoryID); err != nil {
		return model.BooksByOwner{}, err
	}
	return s.booksBy(ctx, model.CatalogFilter{CategoryID: categoryID})
}
