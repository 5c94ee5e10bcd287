package account

import "time"

type Status string

const (
	Available Status = "available"
	Pending   Status = "pending"
	Sold      Status = "sold"
)

// Account is one social media account listed for sale.
type Account struct {
	ID            int       `json:"id"`
	SellerID      int       `json:"sellerId"`
	Platform      string    `json:"platform"`
	AccountHandle string    `json:"accountHandle"`
	Followers     int       `json:"followers"`
	Engagement    *float64  `json:"engagement,omitempty"`
	Price         float64   `json:"price"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	Verified      bool      `json:"verified"`
	Age           *int      `json:"age,omitempty"`
	Status        Status    `json:"status"`
	SellerName    string    `json:"sellerName"`
	SellerRating  *float64  `json:"sellerRating,omitempty"`
	SellerReviews int       `json:"sellerReviews"`
	CreatedAt     time.Time `json:"createdAt"`
}

type AccountNew struct {
	SellerID      int      `json:"sellerId" validate:"required"`
	Platform      string   `json:"platform" validate:"required"`
	AccountHandle string   `json:"accountHandle" validate:"required"`
	Followers     *int     `json:"followers" validate:"required,gte=0"`
	Engagement    *Decimal `json:"engagement" validate:"omitempty,gte=0"`
	Price         Decimal  `json:"price" validate:"required,gt=0"`
	Description   string   `json:"description"`
	Category      string   `json:"category" validate:"required"`
	Verified      *bool    `json:"verified"`
	Age           *int     `json:"age" validate:"omitempty,gte=0"`
	Status        Status   `json:"status" validate:"omitempty,oneof=available pending sold"`
	SellerName    string   `json:"sellerName" validate:"required"`
	SellerRating  *Decimal `json:"sellerRating" validate:"omitempty,gte=0,lte=5"`
	SellerReviews *int     `json:"sellerReviews" validate:"omitempty,gte=0"`
}

// AccountUp carries a partial update. ID and CreatedAt are server-owned:
// they are tolerated on the wire but never applied.
type AccountUp struct {
	ID            *int       `json:"id"`
	CreatedAt     *time.Time `json:"createdAt"`
	SellerID      *int       `json:"sellerId"`
	Platform      *string    `json:"platform"`
	AccountHandle *string    `json:"accountHandle"`
	Followers     *int       `json:"followers" validate:"omitempty,gte=0"`
	Engagement    *Decimal   `json:"engagement" validate:"omitempty,gte=0"`
	Price         *Decimal   `json:"price" validate:"omitempty,gt=0"`
	Description   *string    `json:"description"`
	Category      *string    `json:"category"`
	Verified      *bool      `json:"verified"`
	Age           *int       `json:"age" validate:"omitempty,gte=0"`
	Status        *Status    `json:"status" validate:"omitempty,oneof=available pending sold"`
	SellerName    *string    `json:"sellerName"`
	SellerRating  *Decimal   `json:"sellerRating" validate:"omitempty,gte=0,lte=5"`
	SellerReviews *int       `json:"sellerReviews" validate:"omitempty,gte=0"`
}
