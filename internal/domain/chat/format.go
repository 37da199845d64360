package chat

import (
	"fmt"
	"strings"

	"autocart-server/store-api/internal/domain/catalog"
)

// Canonical assistant copy. Handlers reply with these verbatim so tests and
// clients can rely on exact strings.
const (
	WelcomeMessage = "👋 Welcome to AutoCart! I'm your personal shopping assistant. What can I help you find today?"

	msgBanned        = "Please ask about available products."
	msgNotFound      = "No, we don’t have this product currently. Let me know if you need anything else."
	msgNoMore        = "No more products found for your query."
	msgNoSelection   = "No product was selected previously."
	msgCantIdentify  = "Sorry, I couldn't identify which product you meant."
	msgNoOffers      = "Sorry, there are no special offers today."
	msgNoCategories  = "Sorry, no product categories found."
	msgDeclined      = "No problem! Let me know if you want to see more products or need help with something else."
	msgWalletMissing = "❌ Please connect your wallet first to make purchases. Connect your Payman wallet and try again."
	msgPickFirst     = "Please select a product first before purchasing. You can search for products or browse our categories."
)

// Strikethrough decorates every character with a combining long stroke,
// rendering the original price as crossed out in plain text.
func Strikethrough(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteRune(r)
		b.WriteRune('̶')
	}
	return b.String()
}

func formatPrice(p *catalog.Product) string {
	if p.HasOffer() && p.OfferPrice.LessThan(p.Price) {
		struck := Strikethrough("$" + p.Price.String())
		return fmt.Sprintf("%s (Offer for today: $%s)", struck, p.OfferPrice.String())
	}
	return "$" + p.Price.String()
}

// ProductList renders up to n products as numbered blocks separated by
// blank lines. Discounted items show the struck-through list price with the
// offer price appended.
func ProductList(products []*catalog.Product, n int) string {
	if n > len(products) {
		n = len(products)
	}

	blocks := make([]string, 0, n)
	for i, p := range products[:n] {
		blocks = append(blocks, fmt.Sprintf("%d. %s - %s\nQty: %d\nCategory: %s\nSeller: %s\nRating: %g",
			i+1, p.Name, formatPrice(p), p.Quantity, p.Category, p.Seller, p.Rating))
	}
	return strings.Join(blocks, "\n\n")
}

// ProductCard renders a single product pitch ending with the purchase
// question.
func ProductCard(p *catalog.Product) string {
	price := "$" + p.Price.String()
	if p.HasOffer() {
		price += fmt.Sprintf(" (Offer: $%s)", p.OfferPrice.String())
	}
	return fmt.Sprintf("Product: %s\nPrice: %s\nAvailable: %d\nCategory: %s\nSeller: %s\nRating: %g\nWould you like to proceed with the purchase?",
		p.Name, price, p.Quantity, p.Category, p.Seller, p.Rating)
}

func greetingReply(name string) string {
	return fmt.Sprintf("Hello %s! How can I help you today?", name)
}

func askNameReply(name string) string {
	return fmt.Sprintf("Your name is %s.", name)
}

func setNameReply(name string) string {
	return fmt.Sprintf("Nice to meet you, %s! How can I help you today?", name)
}

func offerCategoriesReply(categories []string) string {
	return fmt.Sprintf("We have special offers in these categories today: %s. Which category are you interested in?", strings.Join(categories, ", "))
}

func categoriesReply(categories []string) string {
	if len(categories) == 0 {
		return msgNoCategories
	}
	return fmt.Sprintf("We offer products in these categories: %s.", strings.Join(categories, ", "))
}

func processingReply(p *catalog.Product) string {
	return fmt.Sprintf("💳 Processing your purchase for: %s for $%s.\nPlease confirm the payment in your wallet...", p.Name, p.EffectivePrice().String())
}

func confirmPurchaseReply(p *catalog.Product) string {
	return fmt.Sprintf("Great choice! You're about to purchase: %s for $%s. Please proceed with payment.", p.Name, p.EffectivePrice().String())
}

func noMatchReply(query string) string {
	return fmt.Sprintf("Sorry, I couldn't find any products matching %q. Please try searching for something else or browse our categories.", query)
}

func paymentSuccessReply(orderRef string) string {
	return fmt.Sprintf("🎉 Payment successful! Your order tracking ID is: %s\nYou will receive updates about your order via email.", orderRef)
}
