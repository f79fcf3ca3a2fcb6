package model

import "time"

type Author struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Biography   string     `json:"biography" db:"biography"`
	Nationality string     `json:"nationality" db:"nationality"`
	BirthDate   *time.Time `json:"birth_date,omitempty" db:"birth_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

type AuthorRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Biography   string `json:"biography"`
	Nationality string `json:"nationality" validate:"max=100"`
	BirthDate   *Date  `json:"birth_date"`
}

func (r AuthorRequest) Author() Author {
	return Author{
		Name:        r.Name,
		Biography:   r.Biography,
		Nationality: r.Nationality,
		BirthDate:   r.BirthDate.Ptr(),
	}
}

type Category struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

type BookToRent struct {
	ID                 int64              `json:"id" db:"id"`
	Title              string             `json:"title" db:"title"`
	AuthorID           int64              `json:"author_id" db:"author_id"`
	CategoryID         int64              `json:"category_id" db:"category_id"`
	ISBN               string             `json:"isbn" db:"isbn"`
	Description        string             `json:"description" db:"description"`
	RentalPrice        float64            `json:"rental_price" db:"rental_price"`
	Stock              int                `json:"stock" db:"stock"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status" db:"availability_status"`
	Condition          Condition          `json:"condition" db:"condition"`
	PublishedYear      *int               `json:"published_year,omitempty" db:"published_year"`
	CreatedAt          time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" db:"updated_at"`
}

type BookToRentRequest struct {
	Title              string             `json:"title" validate:"required,max=255"`
	AuthorID           int64              `json:"author_id" validate:"required,gt=0"`
	CategoryID         int64              `json:"category_id" validate:"required,gt=0"`
	ISBN               string             `json:"isbn" validate:"max=20"`
	Description        string             `json:"description"`
	RentalPrice        float64            `json:"rental_price" validate:"gte=0"`
	Stock              int                `json:"stock" validate:"gte=0"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status" validate:"omitempty,oneof=available rented reserved"`
	Condition          Condition          `json:"condition" validate:"omitempty,oneof=new good worn damaged"`
	PublishedYear      *int               `json:"published_year" validate:"omitempty,gte=0,lte=9999"`
}

// Book applies the write-time invariant: a rent book with no stock is never available.
func (r BookToRentRequest) Book() BookToRent {
	b := BookToRent{
		Title:              r.Title,
		AuthorID:           r.AuthorID,
		CategoryID:         r.CategoryID,
		ISBN:               r.ISBN,
		Description:        r.Description,
		RentalPrice:        r.RentalPrice,
		Stock:              r.Stock,
		AvailabilityStatus: r.AvailabilityStatus,
		Condition:          r.Condition,
		PublishedYear:      r.PublishedYear,
	}
	if b.AvailabilityStatus == "" {
		b.AvailabilityStatus = Available
	}
	if b.Condition == "" {
		b.Condition = ConditionGood
	}
	if b.Stock == 0 && b.AvailabilityStatus == Available {
		b.AvailabilityStatus = Rented
	}
	return b
}

type BookToSell struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	AuthorID      int64     `json:"author_id" db:"author_id"`
	CategoryID    int64     `json:"category_id" db:"category_id"`
	ISBN          string    `json:"isbn" db:"isbn"`
	Description   string    `json:"description" db:"description"`
	Price         float64   `json:"price" db:"price"`
	Stock         int       `json:"stock" db:"stock"`
	PublishedYear *int      `json:"published_year,omitempty" db:"published_year"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

type BookToSellRequest struct {
	Title         string  `json:"title" validate:"required,max=255"`
	AuthorID      int64   `json:"author_id" validate:"required,gt=0"`
	CategoryID    int64   `json:"category_id" validate:"required,gt=0"`
	ISBN          string  `json:"isbn" validate:"max=20"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"gte=0"`
	Stock         int     `json:"stock" validate:"gte=0"`
	PublishedYear *int    `json:"published_year" validate:"omitempty,gte=0,lte=9999"`
}

func (r BookToSellRequest) Book() BookToSell {
	return BookToSell{
		Title:         r.Title,
		AuthorID:      r.AuthorID,
		CategoryID:    r.CategoryID,
		ISBN:          r.ISBN,
		Description:   r.Description,
		Price:         r.Price,
		Stock:         r.Stock,
		PublishedYear: r.PublishedYear,
	}
}

type CatalogFilter struct {
	Q          string
	AuthorID   int64
	CategoryID int64
	Status     AvailabilityStatus
	Page       int
	Size       int
}

// BooksByOwner is the nested listing for an author or a category.
type BooksByOwner struct {
	BooksToRent []BookToRent `json:"books_to_rent"`
	BooksToSell []BookToSell `json:"books_to_sell"`
}
