package apistrings

const (
	/// Basic User Related Strings
	UserNotFound = "user or account does not exist"

	/// Core Functionality Error
	ServerError = "a server error occurred, please try again later"

	/// Verification Related Strings
	InvalidVerificationInput = "check 'kind' and 'value' keys, invalid request"
	InvalidKindInput         = "verification kind must be one of nin, vnin, bvn, phone"

	/// Wallet Related Strings
	UserNoWallet      = "user does not have a wallet created"
	InvalidFundInput  = "check 'amount' key, invalid request"
	InvalidFundAmount = "amount must be greater than zero"
	InsufficientFunds = "insufficient wallet balance"
)
