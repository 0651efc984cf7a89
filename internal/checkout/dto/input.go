package dto

type ShippingInput struct {
	FirstName  string
	LastName   string
	Address    string
	City       string
	PostalCode string
	Country    string
}

type PaymentInput struct {
	Method     string // model.PaymentMethodCard, ...UPI or ...COD
	CardNumber string // digits, embedded spaces allowed
	ExpiryDate string // MM/YY
	CVV        string
	CardName   string
	UPIID      string
}
