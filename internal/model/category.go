package model

// Ledger categories used by automatic postings. Manual entries may use any
// free-text category.
const (
	CategoryInventoryPurchases = "Inventory Purchases"
	CategoryBackbarSupplies    = "Backbar Supplies"
	CategoryRetailSales        = "Retail Sales"
)
