// internal/domain/pricing/pricing.go
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Monetary amounts enter as whole Pakistani rupees. The 17% GST is the only
// fractional quantity, so totals are carried as decimals and rounding is left
// to the presentation layer.

const (
	// FreeShippingThreshold is the subtotal above which the cart estimate
	// waives the shipping fee.
	FreeShippingThreshold int64 = 14000
	// FlatShippingFee is the cart estimate's fee below the free threshold.
	FlatShippingFee int64 = 2500
	// StandardShippingFee and ExpressShippingFee apply when the buyer picks
	// an explicit method at checkout. Explicit methods have no free
	// threshold.
	StandardShippingFee int64 = 1500
	ExpressShippingFee  int64 = 4500
)

// TaxRate is the flat GST rate applied to the subtotal only; shipping is not
// taxed.
var TaxRate = decimal.RequireFromString("0.17")

// ShippingMethod names a shipping strategy. The two call sites of the
// storefront never shared one policy, so both are preserved as distinct
// strategies rather than unified.
type ShippingMethod string

const (
	// MethodCartEstimate is the cart page's simplified policy: free above
	// the threshold, flat fee below it.
	MethodCartEstimate ShippingMethod = ""
	MethodStandard     ShippingMethod = "standard"
	MethodExpress      ShippingMethod = "express"
)

// ParseShippingMethod validates a method name from the wire.
func ParseShippingMethod(value string) (ShippingMethod, error) {
	switch ShippingMethod(value) {
	case MethodCartEstimate, MethodStandard, MethodExpress:
		return ShippingMethod(value), nil
	}
	return "", fmt.Errorf("unknown shipping method %q", value)
}

// Line is a priced cart or order line.
type Line struct {
	Price    int64
	Quantity int
}

// Totals is the computed price breakdown for a set of lines.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ShippingFee returns the fee the given method charges for a subtotal.
func ShippingFee(method ShippingMethod, subtotal int64) int64 {
	switch method {
	case MethodStandard:
		return StandardShippingFee
	case MethodExpress:
		return ExpressShippingFee
	default:
		if subtotal > FreeShippingThreshold {
			return 0
		}
		return FlatShippingFee
	}
}

// Subtotal sums price times quantity over the lines.
func Subtotal(lines []Line) int64 {
	var sum int64
	for _, line := range lines {
		sum += line.Price * int64(line.Quantity)
	}
	return sum
}

// ComputeTotals calculates subtotal, shipping, tax and grand total for the
// lines under the given shipping strategy. An empty line list yields all-zero
// totals, the empty-cart case charges no shipping.
func ComputeTotals(lines []Line, method ShippingMethod) Totals {
	if len(lines) == 0 {
		return Totals{
			Subtotal: decimal.Zero,
			Shipping: decimal.Zero,
			Tax:      decimal.Zero,
			Total:    decimal.Zero,
		}
	}

	subtotal := Subtotal(lines)
	shipping := ShippingFee(method, subtotal)

	subtotalDec := decimal.NewFromInt(subtotal)
	shippingDec := decimal.NewFromInt(shipping)
	tax := subtotalDec.Mul(TaxRate)

	return Totals{
		Subtotal: subtotalDec,
		Shipping: shippingDec,
		Tax:      tax,
		Total:    subtotalDec.Add(shippingDec).Add(tax),
	}
}
