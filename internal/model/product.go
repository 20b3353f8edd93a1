package model

type ProductStatus string

const (
	ProductPromo   ProductStatus = "promo"
	ProductBaru    ProductStatus = "baru"
	ProductRegular ProductStatus = "regular"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductPromo, ProductBaru, ProductRegular:
		return true
	}
	return false
}

// Product is the cooperative's read-only catalog; it is not scoped to a member.
type Product struct {
	BaseModel
	Name        string        `gorm:"type:text;not null" json:"name"`
	Price       Amount        `gorm:"type:numeric(15,2);not null" json:"price"`
	Status      ProductStatus `gorm:"type:varchar(10);not null;default:'regular';check:chk_products_status,status IN ('promo','baru','regular')" json:"status"`
	ImageURL    *string       `gorm:"type:text" json:"image_url"`
	Description *string       `gorm:"type:text" json:"description"`
}

func (Product) TableName() string {
	return "products"
}
