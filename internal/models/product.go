package models

// Product represents a product shown in the storefront catalogue.
// Products are seeded out of band and only listed by the API.
type Product struct {
	ID          string `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;type:varchar(36)"`
	Name        string `json:"name" bson:"name" gorm:"not null" validate:"required"`
	Description string `json:"description" bson:"description" gorm:"not null" validate:"required"`
	Benefits    string `json:"benefits" bson:"benefits" gorm:"not null" validate:"required"`
}

// TableName pins the collection name for SQL stores.
func (Product) TableName() string { return ProductCollection }

// ProductCollection is the collection (or table) products live in.
const ProductCollection = "products"
