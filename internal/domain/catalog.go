package domain

// Category is a TraderX trade category. CategoryID has the form
// "cat_<slug>_<counter>" where the counter is zero-padded to three digits
// and scoped per slug of the category name.
type Category struct {
	CategoryID       string   `json:"categoryId" validate:"required"`
	CategoryName     string   `json:"categoryName" validate:"required"`
	Icon             string   `json:"icon"`
	IsVisible        bool     `json:"isVisible"`
	LicensesRequired []string `json:"licensesRequired"`
	ProductIDs       []string `json:"productIds"`
}

// Product is a TraderX tradeable item. ProductID mirrors the category ID
// format with the "prod" prefix, scoped per class-name slug.
//
// MaxStock -1 means unlimited stock; BuyPrice/SellPrice -1 mean the product
// is not buyable/sellable. TradeQuantity is the packed bitfield produced by
// the tradequantity package.
type Product struct {
	ProductID     string   `json:"productId" validate:"required"`
	ClassName     string   `json:"className" validate:"required"`
	Coefficient   float64  `json:"coefficient" validate:"min=0"`
	MaxStock      int      `json:"maxStock" validate:"min=-1"`
	TradeQuantity int      `json:"tradeQuantity" validate:"min=0"`
	BuyPrice      int      `json:"buyPrice" validate:"min=-1"`
	SellPrice     int      `json:"sellPrice" validate:"min=-1"`
	StockSettings int      `json:"stockSettings"`
	Attachments   []string `json:"attachments"`
	Variants      []string `json:"variants"`
}
