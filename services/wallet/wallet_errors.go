package wallet

import "fmt"

var (
	ErrWalletNotFound    = fmt.Errorf("wallet not found")
	ErrWalletNotPossible = fmt.Errorf("could not create wallet")
	ErrInsufficientFunds = fmt.Errorf("insufficient funds")
)

type WalletError struct {
	ErrorObj error
	UserID   int64
	Other    []error
}

func (w *WalletError) Error() string {
	return w.ErrorObj.Error()
}

func (w *WalletError) ErrorOut() string {
	return fmt.Sprintf("%v: user %v", w.ErrorObj.Error(), w.UserID)
}

func NewWalletError(err error, userID int64, e ...error) *WalletError {
	return &WalletError{
		ErrorObj: err,
		UserID:   userID,
		Other:    e,
	}
}
