package model

// The remaining offering kinds share the shape of BeautyCenterModel: a
// concrete row keyed by the root services row plus kind-specific children.

// HallModel extends a services row with event-hall data.
type HallModel struct {
	ServiceID uint          `gorm:"primaryKey"`
	Service   *ServiceModel `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	Capacity  int           `gorm:"not null;default:0"`

	Pictures []HallPictureModel `gorm:"foreignKey:HallID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (HallModel) TableName() string {
	return "halls"
}

// HallPictureModel stores one bucket key of a hall's gallery.
type HallPictureModel struct {
	ID     uint   `gorm:"primaryKey"`
	HallID uint   `gorm:"not null;index"`
	Path   string `gorm:"type:varchar(512);not null"`
}

// TableName explicitly sets the table name for GORM.
func (HallPictureModel) TableName() string {
	return "hall_pictures"
}

// PhotographyModel extends a services row with photography-studio data.
type PhotographyModel struct {
	ServiceID uint          `gorm:"primaryKey"`
	Service   *ServiceModel `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`

	Portfolio []PortfolioImageModel `gorm:"foreignKey:PhotographyID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PhotographyModel) TableName() string {
	return "photographies"
}

// PortfolioImageModel stores one bucket key of a studio's portfolio.
type PortfolioImageModel struct {
	ID            uint   `gorm:"primaryKey"`
	PhotographyID uint   `gorm:"not null;index"`
	Path          string `gorm:"type:varchar(512);not null"`
}

// TableName explicitly sets the table name for GORM.
func (PortfolioImageModel) TableName() string {
	return "portfolio_images"
}

// CarModel extends a services row with rental-car data.
type CarModel struct {
	ServiceID   uint          `gorm:"primaryKey"`
	Service     *ServiceModel `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	PricePerDay float64       `gorm:"not null;default:0"`

	Pictures []CarPictureModel `gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CarModel) TableName() string {
	return "cars"
}

// CarPictureModel stores one bucket key of a car's gallery.
type CarPictureModel struct {
	ID    uint   `gorm:"primaryKey"`
	CarID uint   `gorm:"not null;index"`
	Path  string `gorm:"type:varchar(512);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CarPictureModel) TableName() string {
	return "car_pictures"
}

// ShopDressesModel extends a services row with dress-shop data.
type ShopDressesModel struct {
	ServiceID uint          `gorm:"primaryKey"`
	Service   *ServiceModel `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`

	Dresses []DressModel `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ShopDressesModel) TableName() string {
	return "shop_dresses"
}

// DressModel is a single dress listed by a shop.
type DressModel struct {
	ID          uint    `gorm:"primaryKey"`
	ShopID      uint    `gorm:"not null;index"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"not null"`
	Path        string  `gorm:"type:varchar(512)"`
}

// TableName explicitly sets the table name for GORM.
func (DressModel) TableName() string {
	return "dresses"
}
