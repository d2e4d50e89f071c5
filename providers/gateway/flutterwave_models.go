package gateway

type FlutterwaveResponse[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type CreateVirtualAccountNumberRequest struct {
	Email       string `json:"email"`
	IsPermanent bool   `json:"is_permanent"`
	TxRef       string `json:"tx_ref"`
	Phonenumber string `json:"phonenumber,omitempty"`
	FirstName   string `json:"firstname,omitempty"`
	LastName    string `json:"lastname,omitempty"`
	Narration   string `json:"narration,omitempty"`
}

type VirtualAccountNumber struct {
	ResponseCode    string `json:"response_code"`
	ResponseMessage string `json:"response_message"`
	OrderRef        string `json:"order_ref"`
	AccountNumber   string `json:"account_number"`
	BankName        string `json:"bank_name"`
	AccountStatus   string `json:"account_status"`
}
