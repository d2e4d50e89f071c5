package gateway

// Response is the generic Paystack envelope
type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type PaystackCustomer struct {
	ID           int64  `json:"id"`
	CustomerCode string `json:"customer_code"`
	Email        string `json:"email"`
}

type CreateCustomerRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type CreateDedicatedAccountRequest struct {
	Customer      string `json:"customer"`
	PreferredBank string `json:"preferred_bank"`
}

type DedicatedAccount struct {
	Bank struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
		ID   int64  `json:"id"`
	} `json:"bank"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	Active        bool   `json:"active"`
	Currency      string `json:"currency"`
}
