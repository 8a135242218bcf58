// Code generated by ogen, DO NOT EDIT.

package oas

// OperationName is the ogen operation name
type OperationName = string

const (
	CalculateCartOperation            OperationName = "CalculateCart"
	CreateDiscountOperation           OperationName = "CreateDiscount"
	CreateOrderOperation              OperationName = "CreateOrder"
	CreateProductOperation            OperationName = "CreateProduct"
	DeleteDiscountOperation           OperationName = "DeleteDiscount"
	DeleteProductOperation            OperationName = "DeleteProduct"
	GetCompletedOrderCountOperation   OperationName = "GetCompletedOrderCount"
	GetCompletedOrderRevenueOperation OperationName = "GetCompletedOrderRevenue"
	GetDiscountOperation              OperationName = "GetDiscount"
	GetDiscountByCodeOperation        OperationName = "GetDiscountByCode"
	GetOrderOperation                 OperationName = "GetOrder"
	GetProductOperation               OperationName = "GetProduct"
	GetProductBySlugOperation         OperationName = "GetProductBySlug"
	ListBrandsOperation               OperationName = "ListBrands"
	ListCategoriesOperation           OperationName = "ListCategories"
	ListDiscountsOperation            OperationName = "ListDiscounts"
	ListOrdersOperation               OperationName = "ListOrders"
	RateProductOperation              OperationName = "RateProduct"
	UpdateDiscountOperation           OperationName = "UpdateDiscount"
	UpdateOrderStatusOperation        OperationName = "UpdateOrderStatus"
	UpdateProductOperation            OperationName = "UpdateProduct"
)
