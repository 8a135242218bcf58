package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/discount"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/oas"
)

// optString renders an empty string as an absent field.
func optString(s string) oas.OptString {
	if s == "" {
		return oas.OptString{}
	}
	return oas.NewOptString(s)
}

func stringPtr(o oas.OptString) *string {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}

func orderRequest(req *oas.OrderRequest) order.Request {
	items := make([]order.Item, len(req.Items))
	for i, it := range req.Items {
		items[i] = order.Item{VariantID: it.VariantId, Quantity: it.Quantity}
	}
	return order.Request{
		UserID: req.UserId.Or(""),
		Contact: order.Contact{
			FullName: req.FullName.Or(""),
			Email:    req.Email.Or(""),
			Phone:    req.PhoneNum.Or(""),
		},
		DiscountCode: req.DiscountCode.Or(""),
		Items:        items,
	}
}

// orderView is the wire shape shared by orders and previews.
type orderView struct {
	ID           string
	UserID       string
	Contact      order.Contact
	DiscountCode string
	Cart         order.Cart
	Status       order.Status
	CreatedAt    time.Time
}

func viewOf(o *order.Order) orderView {
	return orderView{
		ID:           o.ID,
		UserID:       o.UserID,
		Contact:      o.Contact,
		DiscountCode: o.DiscountCode,
		Cart:         o.Cart,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
	}
}

func previewView(p *order.Preview) orderView {
	return orderView{
		ID:           order.PreviewID,
		UserID:       p.UserID,
		Contact:      p.Contact,
		DiscountCode: p.DiscountCode,
		Cart:         p.Cart,
		Status:       order.StatusCart,
		CreatedAt:    p.CreatedAt,
	}
}

func (h *Handler) orderToOAS(v orderView) oas.Order {
	lines := make([]oas.OrderLine, len(v.Cart.Lines))
	for i, l := range v.Cart.Lines {
		lines[i] = oas.OrderLine{
			ProductId:   l.ProductID,
			VariantId:   l.VariantID,
			DisplayName: l.DisplayName,
			ImgUrl:      h.resolveImageURL(l.ImageURL),
			Quantity:    l.Quantity,
			Price:       l.Price.InexactFloat64(),
		}
	}
	return oas.Order{
		ID:           v.ID,
		UserId:       optString(v.UserID),
		FullName:     v.Contact.FullName,
		Email:        v.Contact.Email,
		PhoneNum:     v.Contact.Phone,
		DiscountCode: optString(v.DiscountCode),
		TotalPrice:   v.Cart.Total.InexactFloat64(),
		Status:       oas.OrderStatus(v.Status),
		CreatedAt:    v.CreatedAt.UTC(),
		Lines:        lines,
	}
}

// productToOAS converts a domain product into the ogen response type.
// Image paths are resolved against the configured base URL.
func (h *Handler) productToOAS(p *product.Product) oas.Product {
	images := make([]string, len(p.ImageURLs))
	for i, u := range p.ImageURLs {
		images[i] = h.resolveImageURL(u)
	}
	variants := make([]oas.Variant, len(p.Variants))
	for i, v := range p.Variants {
		variants[i] = oas.Variant{
			ID:    v.ID,
			Name:  v.Name,
			Price: v.Price.InexactFloat64(),
			Stock: v.Stock,
			Sold:  v.Sold,
		}
	}
	ratings := make([]oas.Rating, len(p.Ratings))
	for i, r := range p.Ratings {
		ratings[i] = oas.Rating{
			ID:        r.ID,
			UserId:    optString(r.UserID),
			UserName:  r.UserName,
			Score:     r.Score,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt.UTC(),
		}
	}
	return oas.Product{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Category:    p.Category,
		Brand:       p.Brand,
		ImgUrls:     images,
		Variants:    variants,
		Ratings:     ratings,
		CreatedAt:   p.CreatedAt.UTC(),
	}
}

// variantInputs keeps nil for an absent list so updates leave variants alone.
func variantInputs(vs []oas.VariantInput) []product.VariantInput {
	if vs == nil {
		return nil
	}
	out := make([]product.VariantInput, len(vs))
	for i, v := range vs {
		out[i] = product.VariantInput{
			ID:    v.ID.Or(""),
			Name:  v.Name,
			Price: decimal.NewFromFloat(v.Price),
			Stock: v.Stock,
		}
	}
	return out
}

func productCreateRequest(req *oas.ProductInput) product.CreateRequest {
	return product.CreateRequest{
		Title:       req.Title,
		Description: req.Description.Or(""),
		Category:    req.Category.Or(""),
		Brand:       req.Brand.Or(""),
		ImageURLs:   req.ImgUrls,
		Variants:    variantInputs(req.Variants),
	}
}

func productUpdateRequest(req *oas.ProductUpdate) product.UpdateRequest {
	return product.UpdateRequest{
		Title:       stringPtr(req.Title),
		Description: stringPtr(req.Description),
		Category:    stringPtr(req.Category),
		Brand:       stringPtr(req.Brand),
		ImageURLs:   req.ImgUrls,
		Variants:    variantInputs(req.Variants),
	}
}

func ratingRequest(req *oas.RatingInput) product.RatingRequest {
	return product.RatingRequest{
		UserID:   req.UserId.Or(""),
		UserName: req.UserName.Or(""),
		Score:    req.Score,
		Comment:  req.Comment.Or(""),
	}
}

func countersToOAS(cs []product.Counter) []oas.Counter {
	out := make([]oas.Counter, len(cs))
	for i, c := range cs {
		out[i] = oas.Counter{Title: c.Title, ProductCount: c.ProductCount}
	}
	return out
}

func discountToOAS(d *discount.Discount) oas.Discount {
	return oas.Discount{
		ID:            d.ID,
		Code:          d.Code,
		DiscountValue: d.Value.InexactFloat64(),
		UsageCount:    d.UsageCount,
		UsageLimit:    d.UsageLimit,
		CreatedAt:     d.CreatedAt.UTC(),
	}
}

func discountCreateRequest(req *oas.DiscountInput) discount.CreateRequest {
	return discount.CreateRequest{
		Code:       req.Code,
		Value:      decimal.NewFromFloat(req.DiscountValue),
		UsageLimit: req.UsageLimit,
	}
}

func discountUpdateRequest(req *oas.DiscountUpdate) discount.UpdateRequest {
	var upd discount.UpdateRequest
	upd.Code = stringPtr(req.Code)
	if v, ok := req.DiscountValue.Get(); ok {
		value := decimal.NewFromFloat(v)
		upd.Value = &value
	}
	if n, ok := req.UsageLimit.Get(); ok {
		upd.UsageLimit = &n
	}
	return upd
}
