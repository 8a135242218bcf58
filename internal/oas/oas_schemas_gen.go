// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"fmt"
	"time"

	"github.com/go-faster/errors"
)

func (s *ErrorStatusCode) Error() string {
	return fmt.Sprintf("code %d: %+v", s.StatusCode, s.Response)
}

type APIKey struct {
	APIKey string
	Roles  []string
}

// GetAPIKey returns the value of APIKey.
func (s *APIKey) GetAPIKey() string {
	return s.APIKey
}

// GetRoles returns the value of Roles.
func (s *APIKey) GetRoles() []string {
	return s.Roles
}

// SetAPIKey sets the value of APIKey.
func (s *APIKey) SetAPIKey(val string) {
	s.APIKey = val
}

// SetRoles sets the value of Roles.
func (s *APIKey) SetRoles(val []string) {
	s.Roles = val
}

// Ref: #/components/schemas/Counter
type Counter struct {
	Title        string `json:"title"`
	ProductCount int    `json:"productCount"`
}

// GetTitle returns the value of Title.
func (s *Counter) GetTitle() string {
	return s.Title
}

// GetProductCount returns the value of ProductCount.
func (s *Counter) GetProductCount() int {
	return s.ProductCount
}

// SetTitle sets the value of Title.
func (s *Counter) SetTitle(val string) {
	s.Title = val
}

// SetProductCount sets the value of ProductCount.
func (s *Counter) SetProductCount(val int) {
	s.ProductCount = val
}

// DeleteDiscountNoContent is response for DeleteDiscount operation.
type DeleteDiscountNoContent struct{}

// DeleteProductNoContent is response for DeleteProduct operation.
type DeleteProductNoContent struct{}

// Ref: #/components/schemas/Discount
type Discount struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	DiscountValue float64   `json:"discountValue"`
	UsageCount    int       `json:"usageCount"`
	UsageLimit    int       `json:"usageLimit"`
	CreatedAt     time.Time `json:"createdAt"`
}

// GetID returns the value of ID.
func (s *Discount) GetID() string {
	return s.ID
}

// GetCode returns the value of Code.
func (s *Discount) GetCode() string {
	return s.Code
}

// GetDiscountValue returns the value of DiscountValue.
func (s *Discount) GetDiscountValue() float64 {
	return s.DiscountValue
}

// GetUsageCount returns the value of UsageCount.
func (s *Discount) GetUsageCount() int {
	return s.UsageCount
}

// GetUsageLimit returns the value of UsageLimit.
func (s *Discount) GetUsageLimit() int {
	return s.UsageLimit
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Discount) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// SetID sets the value of ID.
func (s *Discount) SetID(val string) {
	s.ID = val
}

// SetCode sets the value of Code.
func (s *Discount) SetCode(val string) {
	s.Code = val
}

// SetDiscountValue sets the value of DiscountValue.
func (s *Discount) SetDiscountValue(val float64) {
	s.DiscountValue = val
}

// SetUsageCount sets the value of UsageCount.
func (s *Discount) SetUsageCount(val int) {
	s.UsageCount = val
}

// SetUsageLimit sets the value of UsageLimit.
func (s *Discount) SetUsageLimit(val int) {
	s.UsageLimit = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Discount) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// Ref: #/components/schemas/DiscountInput
type DiscountInput struct {
	Code          string  `json:"code"`
	DiscountValue float64 `json:"discountValue"`
	UsageLimit    int     `json:"usageLimit"`
}

// GetCode returns the value of Code.
func (s *DiscountInput) GetCode() string {
	return s.Code
}

// GetDiscountValue returns the value of DiscountValue.
func (s *DiscountInput) GetDiscountValue() float64 {
	return s.DiscountValue
}

// GetUsageLimit returns the value of UsageLimit.
func (s *DiscountInput) GetUsageLimit() int {
	return s.UsageLimit
}

// SetCode sets the value of Code.
func (s *DiscountInput) SetCode(val string) {
	s.Code = val
}

// SetDiscountValue sets the value of DiscountValue.
func (s *DiscountInput) SetDiscountValue(val float64) {
	s.DiscountValue = val
}

// SetUsageLimit sets the value of UsageLimit.
func (s *DiscountInput) SetUsageLimit(val int) {
	s.UsageLimit = val
}

// Absent fields are left untouched.
// Ref: #/components/schemas/DiscountUpdate
type DiscountUpdate struct {
	Code          OptString  `json:"code"`
	DiscountValue OptFloat64 `json:"discountValue"`
	UsageLimit    OptInt     `json:"usageLimit"`
}

// GetCode returns the value of Code.
func (s *DiscountUpdate) GetCode() OptString {
	return s.Code
}

// GetDiscountValue returns the value of DiscountValue.
func (s *DiscountUpdate) GetDiscountValue() OptFloat64 {
	return s.DiscountValue
}

// GetUsageLimit returns the value of UsageLimit.
func (s *DiscountUpdate) GetUsageLimit() OptInt {
	return s.UsageLimit
}

// SetCode sets the value of Code.
func (s *DiscountUpdate) SetCode(val OptString) {
	s.Code = val
}

// SetDiscountValue sets the value of DiscountValue.
func (s *DiscountUpdate) SetDiscountValue(val OptFloat64) {
	s.DiscountValue = val
}

// SetUsageLimit sets the value of UsageLimit.
func (s *DiscountUpdate) SetUsageLimit(val OptInt) {
	s.UsageLimit = val
}

// Ref: #/components/schemas/Error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GetCode returns the value of Code.
func (s *Error) GetCode() int {
	return s.Code
}

// GetMessage returns the value of Message.
func (s *Error) GetMessage() string {
	return s.Message
}

// SetCode sets the value of Code.
func (s *Error) SetCode(val int) {
	s.Code = val
}

// SetMessage sets the value of Message.
func (s *Error) SetMessage(val string) {
	s.Message = val
}

// ErrorStatusCode wraps Error with StatusCode.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

// GetStatusCode returns the value of StatusCode.
func (s *ErrorStatusCode) GetStatusCode() int {
	return s.StatusCode
}

// GetResponse returns the value of Response.
func (s *ErrorStatusCode) GetResponse() Error {
	return s.Response
}

// SetStatusCode sets the value of StatusCode.
func (s *ErrorStatusCode) SetStatusCode(val int) {
	s.StatusCode = val
}

// SetResponse sets the value of Response.
func (s *ErrorStatusCode) SetResponse(val Error) {
	s.Response = val
}

// NewOptFloat64 returns new OptFloat64 with value set to v.
func NewOptFloat64(v float64) OptFloat64 {
	return OptFloat64{
		Value: v,
		Set:   true,
	}
}

// OptFloat64 is optional float64.
type OptFloat64 struct {
	Value float64
	Set   bool
}

// IsSet returns true if OptFloat64 was set.
func (o OptFloat64) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptFloat64) Reset() {
	var v float64
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptFloat64) SetTo(v float64) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptFloat64) Get() (v float64, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptFloat64) Or(d float64) float64 {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptInt returns new OptInt with value set to v.
func NewOptInt(v int) OptInt {
	return OptInt{
		Value: v,
		Set:   true,
	}
}

// OptInt is optional int.
type OptInt struct {
	Value int
	Set   bool
}

// IsSet returns true if OptInt was set.
func (o OptInt) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptInt) Reset() {
	var v int
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptInt) SetTo(v int) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptInt) Get() (v int, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptInt) Or(d int) int {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{
		Value: v,
		Set:   true,
	}
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptString) Reset() {
	var v string
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptString) Get() (v string, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// Ref: #/components/schemas/Order
type Order struct {
	ID           string      `json:"id"`
	UserId       OptString   `json:"userId"`
	FullName     string      `json:"fullName"`
	Email        string      `json:"email"`
	PhoneNum     string      `json:"phoneNum"`
	DiscountCode OptString   `json:"discountCode"`
	TotalPrice   float64     `json:"totalPrice"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	Lines        []OrderLine `json:"lines"`
}

// GetID returns the value of ID.
func (s *Order) GetID() string {
	return s.ID
}

// GetUserId returns the value of UserId.
func (s *Order) GetUserId() OptString {
	return s.UserId
}

// GetFullName returns the value of FullName.
func (s *Order) GetFullName() string {
	return s.FullName
}

// GetEmail returns the value of Email.
func (s *Order) GetEmail() string {
	return s.Email
}

// GetPhoneNum returns the value of PhoneNum.
func (s *Order) GetPhoneNum() string {
	return s.PhoneNum
}

// GetDiscountCode returns the value of DiscountCode.
func (s *Order) GetDiscountCode() OptString {
	return s.DiscountCode
}

// GetTotalPrice returns the value of TotalPrice.
func (s *Order) GetTotalPrice() float64 {
	return s.TotalPrice
}

// GetStatus returns the value of Status.
func (s *Order) GetStatus() OrderStatus {
	return s.Status
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Order) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// GetLines returns the value of Lines.
func (s *Order) GetLines() []OrderLine {
	return s.Lines
}

// SetID sets the value of ID.
func (s *Order) SetID(val string) {
	s.ID = val
}

// SetUserId sets the value of UserId.
func (s *Order) SetUserId(val OptString) {
	s.UserId = val
}

// SetFullName sets the value of FullName.
func (s *Order) SetFullName(val string) {
	s.FullName = val
}

// SetEmail sets the value of Email.
func (s *Order) SetEmail(val string) {
	s.Email = val
}

// SetPhoneNum sets the value of PhoneNum.
func (s *Order) SetPhoneNum(val string) {
	s.PhoneNum = val
}

// SetDiscountCode sets the value of DiscountCode.
func (s *Order) SetDiscountCode(val OptString) {
	s.DiscountCode = val
}

// SetTotalPrice sets the value of TotalPrice.
func (s *Order) SetTotalPrice(val float64) {
	s.TotalPrice = val
}

// SetStatus sets the value of Status.
func (s *Order) SetStatus(val OrderStatus) {
	s.Status = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Order) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// SetLines sets the value of Lines.
func (s *Order) SetLines(val []OrderLine) {
	s.Lines = val
}

// Ref: #/components/schemas/OrderItem
type OrderItem struct {
	VariantId string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

// GetVariantId returns the value of VariantId.
func (s *OrderItem) GetVariantId() string {
	return s.VariantId
}

// GetQuantity returns the value of Quantity.
func (s *OrderItem) GetQuantity() int {
	return s.Quantity
}

// SetVariantId sets the value of VariantId.
func (s *OrderItem) SetVariantId(val string) {
	s.VariantId = val
}

// SetQuantity sets the value of Quantity.
func (s *OrderItem) SetQuantity(val int) {
	s.Quantity = val
}

// Ref: #/components/schemas/OrderLine
type OrderLine struct {
	ProductId   string  `json:"productId"`
	VariantId   string  `json:"variantId"`
	DisplayName string  `json:"displayName"`
	ImgUrl      string  `json:"imgUrl"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// GetProductId returns the value of ProductId.
func (s *OrderLine) GetProductId() string {
	return s.ProductId
}

// GetVariantId returns the value of VariantId.
func (s *OrderLine) GetVariantId() string {
	return s.VariantId
}

// GetDisplayName returns the value of DisplayName.
func (s *OrderLine) GetDisplayName() string {
	return s.DisplayName
}

// GetImgUrl returns the value of ImgUrl.
func (s *OrderLine) GetImgUrl() string {
	return s.ImgUrl
}

// GetQuantity returns the value of Quantity.
func (s *OrderLine) GetQuantity() int {
	return s.Quantity
}

// GetPrice returns the value of Price.
func (s *OrderLine) GetPrice() float64 {
	return s.Price
}

// SetProductId sets the value of ProductId.
func (s *OrderLine) SetProductId(val string) {
	s.ProductId = val
}

// SetVariantId sets the value of VariantId.
func (s *OrderLine) SetVariantId(val string) {
	s.VariantId = val
}

// SetDisplayName sets the value of DisplayName.
func (s *OrderLine) SetDisplayName(val string) {
	s.DisplayName = val
}

// SetImgUrl sets the value of ImgUrl.
func (s *OrderLine) SetImgUrl(val string) {
	s.ImgUrl = val
}

// SetQuantity sets the value of Quantity.
func (s *OrderLine) SetQuantity(val int) {
	s.Quantity = val
}

// SetPrice sets the value of Price.
func (s *OrderLine) SetPrice(val float64) {
	s.Price = val
}

// Checkout body shared by preview and commit.
// Ref: #/components/schemas/OrderRequest
type OrderRequest struct {
	UserId       OptString   `json:"userId"`
	FullName     OptString   `json:"fullName"`
	Email        OptString   `json:"email"`
	PhoneNum     OptString   `json:"phoneNum"`
	DiscountCode OptString   `json:"discountCode"`
	Items        []OrderItem `json:"items"`
}

// GetUserId returns the value of UserId.
func (s *OrderRequest) GetUserId() OptString {
	return s.UserId
}

// GetFullName returns the value of FullName.
func (s *OrderRequest) GetFullName() OptString {
	return s.FullName
}

// GetEmail returns the value of Email.
func (s *OrderRequest) GetEmail() OptString {
	return s.Email
}

// GetPhoneNum returns the value of PhoneNum.
func (s *OrderRequest) GetPhoneNum() OptString {
	return s.PhoneNum
}

// GetDiscountCode returns the value of DiscountCode.
func (s *OrderRequest) GetDiscountCode() OptString {
	return s.DiscountCode
}

// GetItems returns the value of Items.
func (s *OrderRequest) GetItems() []OrderItem {
	return s.Items
}

// SetUserId sets the value of UserId.
func (s *OrderRequest) SetUserId(val OptString) {
	s.UserId = val
}

// SetFullName sets the value of FullName.
func (s *OrderRequest) SetFullName(val OptString) {
	s.FullName = val
}

// SetEmail sets the value of Email.
func (s *OrderRequest) SetEmail(val OptString) {
	s.Email = val
}

// SetPhoneNum sets the value of PhoneNum.
func (s *OrderRequest) SetPhoneNum(val OptString) {
	s.PhoneNum = val
}

// SetDiscountCode sets the value of DiscountCode.
func (s *OrderRequest) SetDiscountCode(val OptString) {
	s.DiscountCode = val
}

// SetItems sets the value of Items.
func (s *OrderRequest) SetItems(val []OrderItem) {
	s.Items = val
}

// Ref: #/components/schemas/OrderStatus
type OrderStatus string

const (
	OrderStatusCART      OrderStatus = "CART"
	OrderStatusPENDING   OrderStatus = "PENDING"
	OrderStatusSHIPPING  OrderStatus = "SHIPPING"
	OrderStatusCOMPLETED OrderStatus = "COMPLETED"
	OrderStatusCANCELLED OrderStatus = "CANCELLED"
)

// AllValues returns all OrderStatus values.
func (OrderStatus) AllValues() []OrderStatus {
	return []OrderStatus{
		OrderStatusCART,
		OrderStatusPENDING,
		OrderStatusSHIPPING,
		OrderStatusCOMPLETED,
		OrderStatusCANCELLED,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s OrderStatus) MarshalText() ([]byte, error) {
	switch s {
	case OrderStatusCART:
		return []byte(s), nil
	case OrderStatusPENDING:
		return []byte(s), nil
	case OrderStatusSHIPPING:
		return []byte(s), nil
	case OrderStatusCOMPLETED:
		return []byte(s), nil
	case OrderStatusCANCELLED:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *OrderStatus) UnmarshalText(data []byte) error {
	switch OrderStatus(data) {
	case OrderStatusCART:
		*s = OrderStatusCART
		return nil
	case OrderStatusPENDING:
		*s = OrderStatusPENDING
		return nil
	case OrderStatusSHIPPING:
		*s = OrderStatusSHIPPING
		return nil
	case OrderStatusCOMPLETED:
		*s = OrderStatusCOMPLETED
		return nil
	case OrderStatusCANCELLED:
		*s = OrderStatusCANCELLED
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/OrderStatusUpdate
type OrderStatusUpdate struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// GetID returns the value of ID.
func (s *OrderStatusUpdate) GetID() string {
	return s.ID
}

// GetStatus returns the value of Status.
func (s *OrderStatusUpdate) GetStatus() string {
	return s.Status
}

// SetID sets the value of ID.
func (s *OrderStatusUpdate) SetID(val string) {
	s.ID = val
}

// SetStatus sets the value of Status.
func (s *OrderStatusUpdate) SetStatus(val string) {
	s.Status = val
}

// Ref: #/components/schemas/Product
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand"`
	ImgUrls     []string  `json:"imgUrls"`
	Variants    []Variant `json:"variants"`
	Ratings     []Rating  `json:"ratings"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GetID returns the value of ID.
func (s *Product) GetID() string {
	return s.ID
}

// GetTitle returns the value of Title.
func (s *Product) GetTitle() string {
	return s.Title
}

// GetSlug returns the value of Slug.
func (s *Product) GetSlug() string {
	return s.Slug
}

// GetDescription returns the value of Description.
func (s *Product) GetDescription() string {
	return s.Description
}

// GetCategory returns the value of Category.
func (s *Product) GetCategory() string {
	return s.Category
}

// GetBrand returns the value of Brand.
func (s *Product) GetBrand() string {
	return s.Brand
}

// GetImgUrls returns the value of ImgUrls.
func (s *Product) GetImgUrls() []string {
	return s.ImgUrls
}

// GetVariants returns the value of Variants.
func (s *Product) GetVariants() []Variant {
	return s.Variants
}

// GetRatings returns the value of Ratings.
func (s *Product) GetRatings() []Rating {
	return s.Ratings
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Product) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// SetID sets the value of ID.
func (s *Product) SetID(val string) {
	s.ID = val
}

// SetTitle sets the value of Title.
func (s *Product) SetTitle(val string) {
	s.Title = val
}

// SetSlug sets the value of Slug.
func (s *Product) SetSlug(val string) {
	s.Slug = val
}

// SetDescription sets the value of Description.
func (s *Product) SetDescription(val string) {
	s.Description = val
}

// SetCategory sets the value of Category.
func (s *Product) SetCategory(val string) {
	s.Category = val
}

// SetBrand sets the value of Brand.
func (s *Product) SetBrand(val string) {
	s.Brand = val
}

// SetImgUrls sets the value of ImgUrls.
func (s *Product) SetImgUrls(val []string) {
	s.ImgUrls = val
}

// SetVariants sets the value of Variants.
func (s *Product) SetVariants(val []Variant) {
	s.Variants = val
}

// SetRatings sets the value of Ratings.
func (s *Product) SetRatings(val []Rating) {
	s.Ratings = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Product) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// Ref: #/components/schemas/ProductInput
type ProductInput struct {
	Title       string         `json:"title"`
	Description OptString      `json:"description"`
	Category    OptString      `json:"category"`
	Brand       OptString      `json:"brand"`
	ImgUrls     []string       `json:"imgUrls"`
	Variants    []VariantInput `json:"variants"`
}

// GetTitle returns the value of Title.
func (s *ProductInput) GetTitle() string {
	return s.Title
}

// GetDescription returns the value of Description.
func (s *ProductInput) GetDescription() OptString {
	return s.Description
}

// GetCategory returns the value of Category.
func (s *ProductInput) GetCategory() OptString {
	return s.Category
}

// GetBrand returns the value of Brand.
func (s *ProductInput) GetBrand() OptString {
	return s.Brand
}

// GetImgUrls returns the value of ImgUrls.
func (s *ProductInput) GetImgUrls() []string {
	return s.ImgUrls
}

// GetVariants returns the value of Variants.
func (s *ProductInput) GetVariants() []VariantInput {
	return s.Variants
}

// SetTitle sets the value of Title.
func (s *ProductInput) SetTitle(val string) {
	s.Title = val
}

// SetDescription sets the value of Description.
func (s *ProductInput) SetDescription(val OptString) {
	s.Description = val
}

// SetCategory sets the value of Category.
func (s *ProductInput) SetCategory(val OptString) {
	s.Category = val
}

// SetBrand sets the value of Brand.
func (s *ProductInput) SetBrand(val OptString) {
	s.Brand = val
}

// SetImgUrls sets the value of ImgUrls.
func (s *ProductInput) SetImgUrls(val []string) {
	s.ImgUrls = val
}

// SetVariants sets the value of Variants.
func (s *ProductInput) SetVariants(val []VariantInput) {
	s.Variants = val
}

// Absent fields are left untouched. Variants replace the variant set.
// Ref: #/components/schemas/ProductUpdate
type ProductUpdate struct {
	Title       OptString      `json:"title"`
	Description OptString      `json:"description"`
	Category    OptString      `json:"category"`
	Brand       OptString      `json:"brand"`
	ImgUrls     []string       `json:"imgUrls"`
	Variants    []VariantInput `json:"variants"`
}

// GetTitle returns the value of Title.
func (s *ProductUpdate) GetTitle() OptString {
	return s.Title
}

// GetDescription returns the value of Description.
func (s *ProductUpdate) GetDescription() OptString {
	return s.Description
}

// GetCategory returns the value of Category.
func (s *ProductUpdate) GetCategory() OptString {
	return s.Category
}

// GetBrand returns the value of Brand.
func (s *ProductUpdate) GetBrand() OptString {
	return s.Brand
}

// GetImgUrls returns the value of ImgUrls.
func (s *ProductUpdate) GetImgUrls() []string {
	return s.ImgUrls
}

// GetVariants returns the value of Variants.
func (s *ProductUpdate) GetVariants() []VariantInput {
	return s.Variants
}

// SetTitle sets the value of Title.
func (s *ProductUpdate) SetTitle(val OptString) {
	s.Title = val
}

// SetDescription sets the value of Description.
func (s *ProductUpdate) SetDescription(val OptString) {
	s.Description = val
}

// SetCategory sets the value of Category.
func (s *ProductUpdate) SetCategory(val OptString) {
	s.Category = val
}

// SetBrand sets the value of Brand.
func (s *ProductUpdate) SetBrand(val OptString) {
	s.Brand = val
}

// SetImgUrls sets the value of ImgUrls.
func (s *ProductUpdate) SetImgUrls(val []string) {
	s.ImgUrls = val
}

// SetVariants sets the value of Variants.
func (s *ProductUpdate) SetVariants(val []VariantInput) {
	s.Variants = val
}

// Ref: #/components/schemas/Rating
type Rating struct {
	ID        string    `json:"id"`
	UserId    OptString `json:"userId"`
	UserName  string    `json:"userName"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// GetID returns the value of ID.
func (s *Rating) GetID() string {
	return s.ID
}

// GetUserId returns the value of UserId.
func (s *Rating) GetUserId() OptString {
	return s.UserId
}

// GetUserName returns the value of UserName.
func (s *Rating) GetUserName() string {
	return s.UserName
}

// GetScore returns the value of Score.
func (s *Rating) GetScore() int {
	return s.Score
}

// GetComment returns the value of Comment.
func (s *Rating) GetComment() string {
	return s.Comment
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Rating) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// SetID sets the value of ID.
func (s *Rating) SetID(val string) {
	s.ID = val
}

// SetUserId sets the value of UserId.
func (s *Rating) SetUserId(val OptString) {
	s.UserId = val
}

// SetUserName sets the value of UserName.
func (s *Rating) SetUserName(val string) {
	s.UserName = val
}

// SetScore sets the value of Score.
func (s *Rating) SetScore(val int) {
	s.Score = val
}

// SetComment sets the value of Comment.
func (s *Rating) SetComment(val string) {
	s.Comment = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Rating) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// Ref: #/components/schemas/RatingInput
type RatingInput struct {
	UserId   OptString `json:"userId"`
	UserName OptString `json:"userName"`
	Score    int       `json:"score"`
	Comment  OptString `json:"comment"`
}

// GetUserId returns the value of UserId.
func (s *RatingInput) GetUserId() OptString {
	return s.UserId
}

// GetUserName returns the value of UserName.
func (s *RatingInput) GetUserName() OptString {
	return s.UserName
}

// GetScore returns the value of Score.
func (s *RatingInput) GetScore() int {
	return s.Score
}

// GetComment returns the value of Comment.
func (s *RatingInput) GetComment() OptString {
	return s.Comment
}

// SetUserId sets the value of UserId.
func (s *RatingInput) SetUserId(val OptString) {
	s.UserId = val
}

// SetUserName sets the value of UserName.
func (s *RatingInput) SetUserName(val OptString) {
	s.UserName = val
}

// SetScore sets the value of Score.
func (s *RatingInput) SetScore(val int) {
	s.Score = val
}

// SetComment sets the value of Comment.
func (s *RatingInput) SetComment(val OptString) {
	s.Comment = val
}

// Ref: #/components/schemas/Variant
type Variant struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
	Sold  int     `json:"sold"`
}

// GetID returns the value of ID.
func (s *Variant) GetID() string {
	return s.ID
}

// GetName returns the value of Name.
func (s *Variant) GetName() string {
	return s.Name
}

// GetPrice returns the value of Price.
func (s *Variant) GetPrice() float64 {
	return s.Price
}

// GetStock returns the value of Stock.
func (s *Variant) GetStock() int {
	return s.Stock
}

// GetSold returns the value of Sold.
func (s *Variant) GetSold() int {
	return s.Sold
}

// SetID sets the value of ID.
func (s *Variant) SetID(val string) {
	s.ID = val
}

// SetName sets the value of Name.
func (s *Variant) SetName(val string) {
	s.Name = val
}

// SetPrice sets the value of Price.
func (s *Variant) SetPrice(val float64) {
	s.Price = val
}

// SetStock sets the value of Stock.
func (s *Variant) SetStock(val int) {
	s.Stock = val
}

// SetSold sets the value of Sold.
func (s *Variant) SetSold(val int) {
	s.Sold = val
}

// A variant with an id is updated in place, one without is created.
// Ref: #/components/schemas/VariantInput
type VariantInput struct {
	ID    OptString `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
	Stock int       `json:"stock"`
}

// GetID returns the value of ID.
func (s *VariantInput) GetID() OptString {
	return s.ID
}

// GetName returns the value of Name.
func (s *VariantInput) GetName() string {
	return s.Name
}

// GetPrice returns the value of Price.
func (s *VariantInput) GetPrice() float64 {
	return s.Price
}

// GetStock returns the value of Stock.
func (s *VariantInput) GetStock() int {
	return s.Stock
}

// SetID sets the value of ID.
func (s *VariantInput) SetID(val OptString) {
	s.ID = val
}

// SetName sets the value of Name.
func (s *VariantInput) SetName(val string) {
	s.Name = val
}

// SetPrice sets the value of Price.
func (s *VariantInput) SetPrice(val float64) {
	s.Price = val
}

// SetStock sets the value of Stock.
func (s *VariantInput) SetStock(val int) {
	s.Stock = val
}
